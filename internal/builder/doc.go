// Package builder turns a loaded scenario model into an event graph. It is
// the driver loop between configuration and the core: for each declarative
// step it resolves the generator through the registry, binds the step's named
// operations with their configured parameter sets, and threads the frontier
// from one generator call to the next.
package builder
