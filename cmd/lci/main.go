// Command lci evaluates lambda-calculus expressions to normal form.
//
// The default command parses one expression under the extended grammar
// (lambda calculus with arithmetic), reduces it lazily (call-by-name,
// no reduction under a binder) and prints the linearized normal form.
// --strategy normal switches to full normal-order reduction; --pure
// drops the arithmetic productions and prints in the plain convention.
// A divergent term loops forever unless --max-steps bounds it.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/GabeGiancarlo/CPSC-354/pkg/calc"
	"github.com/GabeGiancarlo/CPSC-354/pkg/lambda"
	"github.com/GabeGiancarlo/CPSC-354/pkg/parser"
)

var (
	flagConfig   string
	flagVerbose  bool
	flagStrategy string
	flagMaxSteps int
	flagPure     bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lci expression",
		Short: "lci reduces lambda-calculus expressions to normal form",
		Long: `lci is a lambda-calculus interpreter with an arithmetic extension.

It evaluates one expression to normal form using capture-avoiding
substitution, lazily by default (call-by-name, no reduction under a
binder), and prints the result. Note that a term with no normal form,
such as (\x.x x) (\x.x x), evaluates forever; use --max-steps to bound
it.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args[0])
		},
	}
	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a TOML config file")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log every reduction step")
	cmd.PersistentFlags().StringVar(&flagStrategy, "strategy", "", `reduction strategy: "lazy" or "normal"`)
	cmd.PersistentFlags().IntVar(&flagMaxSteps, "max-steps", 0, "abort after this many beta-reductions (0 = unbounded)")
	cmd.Flags().BoolVar(&flagPure, "pure", false, "plain lambda calculus: no arithmetic, normal-order reduction")
	cmd.PersistentPreRun = func(*cobra.Command, []string) {
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	}
	cmd.AddCommand(newCalcCmd(), newReplCmd())
	return cmd
}

// settings resolves the effective strategy and step budget: config
// file first, then explicit flags on top.
func settings(cmd *cobra.Command) (config, lambda.Strategy, int, error) {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return cfg, 0, 0, err
	}
	name := cfg.Strategy
	if cmd.Flags().Changed("strategy") {
		name = flagStrategy
	}
	strategy, err := lambda.ParseStrategy(name)
	if err != nil {
		return cfg, 0, 0, err
	}
	maxSteps := cfg.MaxSteps
	if cmd.Flags().Changed("max-steps") {
		maxSteps = flagMaxSteps
	}
	return cfg, strategy, maxSteps, nil
}

func runEval(cmd *cobra.Command, expr string) error {
	_, strategy, maxSteps, err := settings(cmd)
	if err != nil {
		return err
	}
	if flagPure {
		t, err := parser.ParsePure(expr)
		if err != nil {
			return err
		}
		t, err = evalTerm(t, lambda.NormalOrder, maxSteps)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), lambda.PureString(t))
		return nil
	}
	t, err := parser.Parse(expr)
	if err != nil {
		return err
	}
	t, err = evalTerm(t, strategy, maxSteps)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), lambda.ResultString(t))
	return nil
}

func evalTerm(t lambda.Term, s lambda.Strategy, maxSteps int) (lambda.Term, error) {
	var trace lambda.TraceFunc
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithFields(logrus.Fields{
			"strategy": s.String(),
			"free":     lambda.FreeVarNames(t),
		}).Debug("evaluating")
		trace = func(step int, u lambda.Term) {
			logrus.WithField("step", step).Debug(lambda.ResultString(u))
		}
	}
	return lambda.EvalSteps(t, s, maxSteps, trace)
}

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc expression",
		Short: "evaluate a plain arithmetic expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := calc.Eval(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), calc.Format(v))
			return nil
		},
	}
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
