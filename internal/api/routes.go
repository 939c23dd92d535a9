package api

import (
	"net/http"

	"github.com/radarhq/radar/internal/config"
	"github.com/radarhq/radar/pkg/handlers"
	"github.com/radarhq/radar/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	storage := newStorageHandler(runtime.Storage, runtime.Logger)

	routes.Register(
		mux,
		domain.Captures.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Analyses.Handler().Routes(),
		domain.Orchestration.Handler().Routes(),
		storage.routes(),
	)

	mux.HandleFunc("GET /telemetry", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, runtime.Telemetry.Snapshot())
	})
}
