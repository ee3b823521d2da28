// Package registry maps the names used in scenario files to the Go functions
// that implement them: generator names to graph-construction strategies and
// operation names to parameterized state transitions. A registry is built
// once at startup, populated by operation modules, and validated against the
// loaded scenario before any graph is constructed.
package registry
