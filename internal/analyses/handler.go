package analyses

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/radarhq/radar/pkg/handlers"
	"github.com/radarhq/radar/pkg/routes"
)

// Handler provides HTTP endpoints for reading stored analysis results.
// Writes happen exclusively through the orchestrator.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "analyses"),
	}
}

// Routes returns the route group definition for analysis result endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analyses",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/captures/{id}", Handler: h.FindByCapture},
			{Method: "DELETE", Pattern: "/captures/{id}", Handler: h.Delete},
		},
	}
}

// FindByCapture returns the authoritative result for a capture.
func (h *Handler) FindByCapture(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidResult)
		return
	}

	result, err := h.sys.FindByCapture(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete removes the stored result for a capture, forcing the next
// analysis request to recompute.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidResult)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
