package orchestration

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/radarhq/radar/pkg/handlers"
	"github.com/radarhq/radar/pkg/routes"
)

// Handler provides HTTP endpoints for analysis orchestration.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// AnalyzeRequest is the JSON body accepted by the analyze endpoint.
// Tier defaults to the advisory recommendation when omitted.
type AnalyzeRequest struct {
	Tier          string `json:"tier"`
	IncludeVisual bool   `json:"include_visual"`
}

// BatchRequest is the JSON body accepted by the batch endpoint.
type BatchRequest struct {
	CaptureIDs  []uuid.UUID `json:"capture_ids"`
	Tier        string      `json:"tier"`
	Parallelism int         `json:"parallelism"`
}

// RecommendationResponse is the advisory tier for a capture.
type RecommendationResponse struct {
	CaptureID uuid.UUID  `json:"capture_id"`
	Tier      Tier       `json:"tier"`
	Params    TierParams `json:"params"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "orchestration"),
	}
}

// Routes returns the route group definition for orchestration endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analysis",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/captures/{id}", Handler: h.Analyze},
			{Method: "POST", Pattern: "/batch", Handler: h.Batch},
			{Method: "GET", Pattern: "/captures/{id}/status", Handler: h.Status},
			{Method: "GET", Pattern: "/captures/{id}/recommendation", Handler: h.Recommend},
		},
	}
}

// Analyze runs orchestrated analysis for one capture.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var req AnalyzeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
	}

	tier := TierStandard
	if req.Tier != "" {
		tier, err = ParseTier(req.Tier)
		if err != nil {
			handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
			return
		}
	}

	result, err := h.sys.AnalyzeCapture(r.Context(), Request{
		CaptureID:     id,
		Tier:          tier,
		IncludeVisual: req.IncludeVisual,
	})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Batch runs best-effort analysis across multiple captures.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	tier, err := ParseTier(req.Tier)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	results, err := h.sys.BatchAnalyze(r.Context(), req.CaptureIDs, tier, req.Parallelism)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, results)
}

// Status reports in-flight and completion state for a capture. Polling
// callers use this to avoid triggering redundant analyze calls.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	status, err := h.sys.Status(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, status)
}

// Recommend returns the advisory tier for a capture.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	tier, err := h.sys.Recommend(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, RecommendationResponse{
		CaptureID: id,
		Tier:      tier,
		Params:    tier.Params(),
	})
}
