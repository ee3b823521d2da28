// Package yaml is the YAML-specific implementation of the config.Loader
// interface, mirroring the hcl package for teams that keep scenarios in
// .yaml files.
package yaml

import (
	"bytes"
	"context"
	"fmt"
	"os"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/vk/branchsim/internal/config"
	"github.com/vk/branchsim/internal/ctxlog"
	"github.com/vk/branchsim/internal/fsutil"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML scenario loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the YAML document shape of a scenario file.
type fileRoot struct {
	Operations map[string]map[string]string `yaml:"operations"`
	Scenario   *scenarioDoc                 `yaml:"scenario"`
}

type scenarioDoc struct {
	InitialState float64    `yaml:"initial_state"`
	Steps        []*stepDoc `yaml:"steps"`
}

type stepDoc struct {
	Generator  string   `yaml:"generator"`
	Operations []string `yaml:"operations"`
}

// Load parses every .yaml/.yml file under the given paths and merges the
// documents into a single scenario model. Operation maps may be spread across
// files, but only one scenario section is allowed in the whole input.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	model := config.NewModel()

	files, err := fsutil.FindFilesByExtension(paths, ".yaml", ".yml")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .yaml scenario files found in %v", paths)
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", file, err)
		}

		var root fileRoot
		dec := yamlv3.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&root); err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}

		for name, params := range root.Operations {
			if params == nil {
				params = make(map[string]string)
			}
			model.Operations[name] = &config.OperationConfig{Name: name, Params: params}
		}
		if root.Scenario != nil {
			if model.Scenario != nil {
				return nil, fmt.Errorf("duplicate scenario section in %s", file)
			}
			scenario := &config.Scenario{InitialState: root.Scenario.InitialState}
			for _, step := range root.Scenario.Steps {
				scenario.Steps = append(scenario.Steps, &config.Step{
					Generator:  step.Generator,
					Operations: step.Operations,
				})
			}
			model.Scenario = scenario
		}
	}

	if model.Scenario == nil {
		return nil, fmt.Errorf("no scenario section found in %v", paths)
	}

	logger.Debug("YAML loading complete.",
		"operations", len(model.Operations),
		"steps", len(model.Scenario.Steps))
	return model, nil
}
