package analyses

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for the analysis result store.
type System interface {
	Handler() *Handler

	// FindByCapture returns the authoritative result for a capture.
	// Returns ErrNotFound when no result has been stored.
	FindByCapture(ctx context.Context, captureID uuid.UUID) (*Result, error)

	// Save persists a result, superseding any existing record for the
	// same capture. A save at a lower tier rank than the stored record
	// is refused with ErrTierDowngrade.
	Save(ctx context.Context, result *Result) (*Result, error)

	// Delete removes the stored result for a capture.
	Delete(ctx context.Context, captureID uuid.UUID) error
}
