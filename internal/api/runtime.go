package api

import (
	"github.com/radarhq/radar/internal/config"
	"github.com/radarhq/radar/internal/infrastructure"
	"github.com/radarhq/radar/pkg/pagination"
	"github.com/radarhq/radar/pkg/telemetry"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Telemetry  *telemetry.Recorder
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	logger := infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Pagination: cfg.API.Pagination,
		Telemetry:  telemetry.New(logger),
	}
}
