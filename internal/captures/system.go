package captures

import (
	"context"

	"github.com/google/uuid"

	"github.com/radarhq/radar/pkg/pagination"
)

// System defines the public contract for capture domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Capture], error)

	Find(ctx context.Context, id uuid.UUID) (*Capture, error)
	Create(ctx context.Context, cmd CreateCommand) (*Capture, error)
	AttachScreenshot(ctx context.Context, id uuid.UUID, data []byte) (*Capture, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
