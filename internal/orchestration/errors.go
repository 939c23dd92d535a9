package orchestration

import (
	"errors"
	"net/http"

	"github.com/radarhq/radar/internal/captures"
)

// Domain errors for orchestration operations.
var (
	ErrUnknownTier   = errors.New("unknown analysis tier")
	ErrTruthAnalysis = errors.New("truth analysis failed")
)

// MapHTTPStatus maps orchestration errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnknownTier) {
		return http.StatusBadRequest
	}
	if errors.Is(err, captures.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrTruthAnalysis) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
