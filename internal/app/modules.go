package app

import (
	"github.com/vk/branchsim/internal/registry"
	"github.com/vk/branchsim/modules/arith"
)

// coreModules is the definitive list of all operation modules that are
// compiled into the branchsim binary.
var coreModules = []registry.Module[float64]{
	&arith.Module{},
}
