package api

import (
	"github.com/JaimeStill/loom/internal/engine"
	"github.com/JaimeStill/loom/internal/health"
	"github.com/JaimeStill/loom/internal/runs"
	"github.com/JaimeStill/loom/internal/workflows"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Workflows workflows.System
	Runs      runs.System
	Health    health.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	workflowSystem := workflows.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	eng := engine.New(runtime.Generation, runtime.Logger)

	runSystem := runs.New(
		runtime.Database.Connection(),
		workflowSystem,
		eng,
		runtime.History,
		runtime.Logger,
	)

	healthSystem := health.New(
		runtime.Database.Connection(),
		runtime.Generation,
		runtime.Logger,
	)

	return &Domain{
		Workflows: workflowSystem,
		Runs:      runSystem,
		Health:    healthSystem,
	}
}
