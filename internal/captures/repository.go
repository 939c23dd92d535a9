package captures

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/radarhq/radar/pkg/pagination"
	"github.com/radarhq/radar/pkg/query"
	"github.com/radarhq/radar/pkg/repository"
	"github.com/radarhq/radar/pkg/storage"
)

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a capture repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		logger:     logger.With("system", "captures"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Capture], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "Content", "SourceURL")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count captures: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanCapture)
	if err != nil {
		return nil, fmt.Errorf("query captures: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Capture, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanCapture)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Capture, error) {
	id := uuid.New()

	var screenshotKey *string
	if len(cmd.Screenshot) > 0 {
		key := buildScreenshotKey(id)
		if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Screenshot), "image/png"); err != nil {
			return nil, fmt.Errorf("upload screenshot blob: %w", err)
		}
		screenshotKey = &key
	}

	images := cmd.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("encode image references: %w", err)
	}

	q := `
		INSERT INTO captures(id, project_id, title, content, source_url, content_type, images, video_url, screenshot_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, project_id, title, content, source_url, content_type, images, video_url, screenshot_key, created_at, updated_at`

	insertArgs := []any{
		id,
		cmd.ProjectID,
		cmd.Title,
		cmd.Content,
		cmd.SourceURL,
		cmd.ContentType,
		imagesJSON,
		cmd.VideoURL,
		screenshotKey,
	}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Capture, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanCapture)
	})

	if err != nil {
		if screenshotKey != nil {
			if delErr := r.storage.Delete(ctx, *screenshotKey); delErr != nil {
				r.logger.Warn("compensating blob delete failed", "key", *screenshotKey, "error", delErr)
			}
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("capture created", "id", c.ID, "content_type", c.ContentType)
	return &c, nil
}

func (r *repo) AttachScreenshot(ctx context.Context, id uuid.UUID, data []byte) (*Capture, error) {
	if _, err := r.Find(ctx, id); err != nil {
		return nil, err
	}

	key := buildScreenshotKey(id)
	if err := r.storage.Upload(ctx, key, bytes.NewReader(data), "image/png"); err != nil {
		return nil, fmt.Errorf("upload screenshot blob: %w", err)
	}

	q := `
		UPDATE captures
		SET screenshot_key = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, project_id, title, content, source_url, content_type, images, video_url, screenshot_key, created_at, updated_at`

	c, err := repository.QueryOne(ctx, r.db, q, []any{id, key}, scanCapture)
	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("screenshot attached", "id", id, "key", key)
	return &c, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	capture, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM captures WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if capture.ScreenshotKey != nil {
		if delErr := r.storage.Delete(ctx, *capture.ScreenshotKey); delErr != nil {
			r.logger.Warn(
				"blob delete failed after DB delete",
				"key", *capture.ScreenshotKey,
				"error", delErr,
			)
		}
	}

	r.logger.Info("capture deleted", "id", id)
	return nil
}

func buildScreenshotKey(id uuid.UUID) string {
	return fmt.Sprintf("captures/%s/screenshot.png", id)
}
