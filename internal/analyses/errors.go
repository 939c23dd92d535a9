package analyses

import (
	"errors"
	"net/http"
)

// Domain errors for analysis result operations.
var (
	ErrNotFound      = errors.New("analysis result not found")
	ErrDuplicate     = errors.New("analysis result already exists")
	ErrInvalidResult = errors.New("invalid analysis result")
	ErrTierDowngrade = errors.New("stored result outranks incoming tier")
)

// MapHTTPStatus maps analysis domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidResult) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrTierDowngrade) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
