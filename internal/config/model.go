package config

// Model is the unified, format-agnostic representation of a scenario file
// set: the parameter sets for named operations and the scenario itself.
type Model struct {
	Operations map[string]*OperationConfig
	Scenario   *Scenario
}

// OperationConfig carries the parameter set bound into one named operation
// wherever a scenario step references it.
type OperationConfig struct {
	Name   string
	Params map[string]string
}

// Scenario is the declarative build plan for an event graph: an initial
// state value and an ordered list of generator steps.
type Scenario struct {
	InitialState float64
	Steps        []*Step
}

// Step is one (generator, operations) declaration. The named generator
// extends the current frontier with the named operations, in order.
type Step struct {
	Generator  string
	Operations []string
}

// NewModel returns an empty model ready for loaders to populate.
func NewModel() *Model {
	return &Model{Operations: make(map[string]*OperationConfig)}
}
