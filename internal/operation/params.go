package operation

import (
	"fmt"
	"strconv"
)

// Params is the parameter set fixed into an operation at bind time. Keys and
// values are strings, exactly as they arrive from scenario configuration;
// typed accessors perform the parsing.
type Params map[string]string

// Clone returns an independent copy of p. An empty or nil receiver yields an
// empty, non-nil Params.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Get returns the raw value of the named parameter.
func (p Params) Get(name string) (string, error) {
	raw, ok := p[name]
	if !ok {
		return "", fmt.Errorf("missing parameter %q", name)
	}
	return raw, nil
}

// Float parses the named parameter as a float64.
func (p Params) Float(name string) (float64, error) {
	raw, err := p.Get(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %q is not a number: %w", name, err)
	}
	return v, nil
}

// Int parses the named parameter as an int.
func (p Params) Int(name string) (int, error) {
	raw, err := p.Get(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %q is not an integer: %w", name, err)
	}
	return v, nil
}
