package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/branchsim/internal/config"
	"github.com/vk/branchsim/internal/ctxlog"
	"github.com/vk/branchsim/internal/fsutil"
	"github.com/vk/branchsim/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL scenario loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under the given paths and merges all discovered
// blocks into a single scenario model. Operation blocks may be spread across
// files, but only one scenario block is allowed in the whole input.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := config.NewModel()

	files, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl scenario files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.FileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, op := range root.Operations {
			cfg, err := translateOperation(op)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			model.Operations[cfg.Name] = cfg
		}
		if root.Scenario != nil {
			if model.Scenario != nil {
				return nil, fmt.Errorf("duplicate scenario block in %s", file)
			}
			scenario, err := translateScenario(root.Scenario)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", file, err)
			}
			model.Scenario = scenario
		}
	}

	if model.Scenario == nil {
		return nil, fmt.Errorf("no scenario block found in %v", paths)
	}

	logger.Debug("HCL loading complete.",
		"operations", len(model.Operations),
		"steps", len(model.Scenario.Steps))
	return model, nil
}
