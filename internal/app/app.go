package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/branchsim/internal/config"
	"github.com/vk/branchsim/internal/ctxlog"
	"github.com/vk/branchsim/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	reg    *registry.Registry[float64]
	model  *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Critical startup errors (unreadable scenario, unresolvable names) panic;
// the entrypoint recovers and reports them.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module[float64]) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the scenario into the format-agnostic model first.
	model, err := loader.Load(ctx, appConfig.ScenarioPath)
	if err != nil {
		// A failure to load the scenario is a fatal startup error.
		panic(fmt.Errorf("failed to load scenario: %w", err))
	}
	logger.Debug("Scenario loaded and translated into unified model.")

	// Create and populate the registry with Go operation handlers.
	reg := registry.New[float64]()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All operation modules registered.", "count", len(modules))

	// Every name the scenario references must resolve before we build.
	if err := reg.Validate(ctx, model); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:   outW,
		logger: logger,
		reg:    reg,
		model:  model,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry[float64] {
	return a.reg
}

// Model returns the loaded scenario model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
