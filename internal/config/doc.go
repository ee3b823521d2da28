// Package config defines the format-agnostic scenario model for the
// application, along with the Loader interface for reading it from various
// sources.
//
// The config.Model is the single source of truth for the builder: it carries
// the parameter sets of every named operation plus the ordered generator
// steps of the scenario. Concrete Loader implementations, such as for HCL and
// YAML, are provided in separate packages.
package config
