// Package cli wires the engine and the prompt to the command line.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/computor/pkg/engine"
)

// ErrFailed is returned when at least one equation could not be solved.
// The failure has already been reported on stdout.
var ErrFailed = errors.New("one or more equations failed")

var (
	cfgFile   string
	format    string
	precision int
	verbose   bool
	noSteps   bool
	noColor   bool
	maxDepth  int
)

var rootCmd = &cobra.Command{
	Use:   "computor [equation...]",
	Short: "Solve polynomial equations of degree two or less",
	Long: `computor reduces an equation in one variable to a polynomial and
solves it when the degree is at most two.

Each argument is one equation and is solved on its own:

  computor "x^2 + 2*x + 1 = 0" "2x = 4"

An equation starting with '-' must follow "--" so it is not read as a flag.
With no arguments an interactive prompt starts.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runREPL(cmd, args)
		}
		return runSolve(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	defaults := engine.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.StringVarP(&format, "format", "f", defaults.Format, "output format ("+strings.Join(engine.WriterNames(), ", ")+")")
	flags.IntVarP(&precision, "precision", "p", defaults.Precision, "significant digits for roots (0 = shortest)")
	flags.BoolVarP(&verbose, "verbose", "v", defaults.Verbose, "log pipeline milestones to stderr")
	flags.BoolVar(&noSteps, "no-steps", !defaults.Steps, "hide the rewrite steps")
	flags.BoolVar(&noColor, "no-color", !defaults.Color, "disable styled output")
	flags.IntVar(&maxDepth, "max-depth", defaults.MaxDepth, "maximum nesting depth accepted by the parser")
}

// loadConfig reads the config file, if any, then applies flags the user set
// explicitly.
func loadConfig(cmd *cobra.Command) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if cfgFile != "" {
		var err error
		if cfg, err = engine.LoadConfig(cfgFile); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("precision") {
		cfg.Precision = precision
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("no-steps") {
		cfg.Steps = !noSteps
	}
	if flags.Changed("no-color") {
		cfg.Color = !noColor
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = maxDepth
	}
	return cfg, cfg.Validate()
}

// newEngine builds an engine that logs to the command's stderr.
func newEngine(cmd *cobra.Command) (*engine.Engine, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	e, err := engine.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}
	return e, nil
}
