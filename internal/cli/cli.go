package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/crucible/internal/config"
)

// ExitError is an error that carries the exit code the process should use.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the effective
// configuration, a boolean reporting that the program should exit cleanly
// (help or usage was printed), or an *ExitError.
//
// Precedence, lowest first: built-in defaults, -config file, flags.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("crucible", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
crucible - minimal heat-loss routes for clumsy and ultra crucibles.

Usage:
  crucible [options] [GRID_PATH]

Arguments:
  GRID_PATH
    Path to the digit grid. Use "-" to read from stdin.

Options:
`)
		flagSet.PrintDefaults()
	}

	gridFlag := flagSet.String("grid", "", "Path to the grid file.")
	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	sequentialFlag := flagSet.Bool("sequential", false, "Solve profiles one after another instead of concurrently.")
	pathFlag := flagSet.Bool("path", false, "Print the optimal route below each answer.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *gridFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		slog.Debug("No grid path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag, cfg)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	cfg.GridPath = path
	if *logLevelFlag != "" {
		cfg.LogLevel = strings.ToLower(*logLevelFlag)
	}
	if *logFormatFlag != "" {
		cfg.LogFormat = strings.ToLower(*logFormatFlag)
	}
	if *sequentialFlag {
		cfg.Parallel = false
	}
	if *pathFlag {
		cfg.ShowPath = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}
