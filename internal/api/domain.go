package api

import (
	"fmt"

	"github.com/radarhq/radar/internal/analyses"
	"github.com/radarhq/radar/internal/backends/gemini"
	"github.com/radarhq/radar/internal/backends/openai"
	"github.com/radarhq/radar/internal/captures"
	"github.com/radarhq/radar/internal/config"
	"github.com/radarhq/radar/internal/orchestration"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Captures      captures.System
	Analyses      analyses.System
	Orchestration orchestration.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) (*Domain, error) {
	capturesSystem := captures.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	analysesSystem := analyses.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	truth := openai.New(cfg.Backends.OpenAIAPIKey, runtime.Logger)

	visual, err := gemini.New(
		runtime.Lifecycle.Context(),
		cfg.Backends.GeminiAPIKey,
		cfg.Backends.GeminiModel,
		runtime.Storage,
		runtime.Logger,
	)
	if err != nil {
		return nil, fmt.Errorf("gemini backend init failed: %w", err)
	}

	orchestrationSystem := orchestration.New(
		capturesSystem,
		analysesSystem,
		truth,
		visual,
		runtime.Telemetry,
		runtime.Logger,
		orchestration.Config{
			BackendTimeout:   cfg.Backends.TimeoutDuration(),
			BatchParallelism: cfg.Analysis.BatchParallelism,
		},
	)

	return &Domain{
		Captures:      capturesSystem,
		Analyses:      analysesSystem,
		Orchestration: orchestrationSystem,
	}, nil
}
