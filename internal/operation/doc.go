// Package operation defines parameterized simulation operations and the
// partial application that turns them into unary graph-node payloads. A
// parameterized operation reads its tuning values from a Params set; Bind
// fixes one Params set into the operation so it can be stored uniformly in
// an event graph.
package operation
