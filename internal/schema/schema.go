// Package schema holds the HCL tag structs that scenario files decode into.
// The hcl loader translates these into the format-agnostic config model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Operation is an `operation "name"` block: the parameter set bound into the
// named operation wherever a scenario step references it.
type Operation struct {
	Name   string     `hcl:"name,label"`
	Params *cty.Value `hcl:"params,optional"`
}

// Step is a `step "generator"` block inside a scenario. The label selects a
// registered generator; operations name the events it attaches, in order.
type Step struct {
	Generator  string   `hcl:"generator,label"`
	Operations []string `hcl:"operations"`
}

// Scenario is the `scenario` block: the initial state value plus the ordered
// generator steps that grow the event graph.
type Scenario struct {
	InitialState *cty.Value `hcl:"initial_state,optional"`
	Steps        []*Step    `hcl:"step,block"`
}

// FileRoot decodes all recognized top-level blocks from one scenario file.
type FileRoot struct {
	Operations []*Operation `hcl:"operation,block"`
	Scenario   *Scenario    `hcl:"scenario,block"`
	Remain     hcl.Body     `hcl:",remain"`
}
