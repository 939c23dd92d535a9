package captures

import (
	"errors"
	"net/http"
)

// Domain errors for capture operations.
var (
	ErrNotFound       = errors.New("capture not found")
	ErrDuplicate      = errors.New("capture already exists")
	ErrInvalidCapture = errors.New("invalid capture")
	ErrFileTooLarge   = errors.New("screenshot exceeds maximum upload size")
)

// MapHTTPStatus maps capture domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidCapture) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
