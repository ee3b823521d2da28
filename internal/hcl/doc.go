// Package hcl is the HCL-specific implementation of the config.Loader
// interface. It discovers .hcl scenario files, decodes them through the
// schema structs, and translates the result into the format-agnostic model.
package hcl
