package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// config holds the optional TOML config file read once at startup.
// Flags override it field by field.
type config struct {
	Strategy string `toml:"strategy"`
	MaxSteps int    `toml:"max_steps"`
	Prompt   string `toml:"prompt"`
}

func loadConfig(path string) (config, error) {
	cfg := config{Strategy: "lazy", Prompt: "λ> "}
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}
