package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/branchsim/internal/app"
	"github.com/vk/branchsim/internal/cli"
	"github.com/vk/branchsim/internal/config"
	"github.com/vk/branchsim/internal/hcl"
	"github.com/vk/branchsim/internal/yaml"
)

// main is the entrypoint for the branchsim application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (unreadable scenario,
	// unresolvable names), so we recover here to return a clean error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	// Pick the concrete loader matching the scenario file format.
	loader := loaderForPath(appConfig.ScenarioPath)
	branchsimApp := app.NewApp(outW, appConfig, loader)

	return branchsimApp.Run(context.Background(), appConfig)
}

// loaderForPath selects the scenario loader by file extension. Directories
// default to HCL.
func loaderForPath(path string) config.Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.NewLoader()
	default:
		return hcl.NewLoader()
	}
}
