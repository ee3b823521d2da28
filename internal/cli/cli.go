package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vk/branchsim/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("branchsim", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
BranchSim - a declarative branching-scenario simulation engine.

Usage:
  branchsim [options] [SCENARIO_PATH]

Arguments:
  SCENARIO_PATH
    Path to a single scenario file (.hcl, .yaml, .yml) or a directory
    containing scenario files of one format.

Options:
`)
		flagSet.PrintDefaults()
	}

	scenarioFlag := flagSet.String("scenario", "", "Path to the scenario file or directory.")
	sFlag := flagSet.String("s", "", "Path to the scenario file or directory (shorthand).")
	evalFlag := flagSet.String("eval", "depth", "Evaluation strategy. Options: 'depth' or 'chain'.")
	checkCyclesFlag := flagSet.Bool("check-cycles", false, "Validate that the built graph is acyclic before evaluating.")
	initialFlag := flagSet.String("initial", "", "Override the scenario's initial state with this number.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *scenarioFlag != "" {
		path = *scenarioFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Scenario path determined.", "path", path)

	if path == "" {
		slog.Debug("No scenario path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	var initialState *float64
	if *initialFlag != "" {
		v, err := strconv.ParseFloat(*initialFlag, 64)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: "invalid initial: must be a number"}
		}
		initialState = &v
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ScenarioPath: path,
		Evaluator:    strings.ToLower(*evalFlag),
		CheckCycles:  *checkCyclesFlag,
		InitialState: initialState,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
