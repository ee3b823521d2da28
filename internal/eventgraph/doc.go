// Package eventgraph implements the branching event graph at the core of a
// simulation scenario. Every node holds one state-transition operation and
// the set of events that may follow it; branching happens wherever a node has
// more than one follower. The package provides graph construction, leaf and
// chain enumeration, and two evaluation strategies that must always agree.
//
// The graph is assumed to be acyclic. Traversal does not check this; callers
// that cannot trust their input can run DetectCycles first.
package eventgraph
