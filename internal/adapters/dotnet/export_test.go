package dotnet

import "go.trai.ch/slnver/internal/core/ports"

// NewRestorerWithSupport creates a Restorer with an explicit restore capability.
func NewRestorerWithSupport(executor ports.Executor, supported bool) *Restorer {
	return &Restorer{executor: executor, supported: supported}
}
