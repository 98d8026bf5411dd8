package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/GabeGiancarlo/CPSC-354/pkg/lambda"
	"github.com/GabeGiancarlo/CPSC-354/pkg/parser"
)

const historyFile = ".lci_history"

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "interactive read-eval-print loop",
		Args:  cobra.NoArgs,
		RunE:  runRepl,
	}
}

func runRepl(cmd *cobra.Command, _ []string) error {
	cfg, strategy, maxSteps, err := settings(cmd)
	if err != nil {
		return err
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintln(cmd.OutOrStdout(), "lci repl. Ctrl+D or :quit exits.")
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			// Ctrl+D or a closed terminal.
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" || line == ":q" {
			return nil
		}
		t, err := parser.Parse(line)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			continue
		}
		u, err := evalTerm(t, strategy, maxSteps)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), lambda.ResultString(u))
		ln.AppendHistory(line)
	}
}
