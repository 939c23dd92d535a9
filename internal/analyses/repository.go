package analyses

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/radarhq/radar/pkg/query"
	"github.com/radarhq/radar/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates an analysis result repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "analyses"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) FindByCapture(ctx context.Context, captureID uuid.UUID) (*Result, error) {
	q, args := query.NewBuilder(projection).BuildSingle("CaptureID", captureID)

	result, err := repository.QueryOne(ctx, r.db, q, args, scanResult)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &result, nil
}

// Save upserts the authoritative record for a capture. The WHERE guard on
// the conflict update enforces the supersede invariant in the store itself:
// a row is only replaced by an equal-or-higher tier rank. When the guard
// rejects the update, no row comes back and the save reports ErrTierDowngrade.
func (r *repo) Save(ctx context.Context, result *Result) (*Result, error) {
	q := `
		INSERT INTO analysis_results(id, capture_id, fact, observation, insight, human_truth, cultural_moment, tier, tier_rank, model, processing_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (capture_id) DO UPDATE
		SET id = EXCLUDED.id,
			fact = EXCLUDED.fact,
			observation = EXCLUDED.observation,
			insight = EXCLUDED.insight,
			human_truth = EXCLUDED.human_truth,
			cultural_moment = EXCLUDED.cultural_moment,
			tier = EXCLUDED.tier,
			tier_rank = EXCLUDED.tier_rank,
			model = EXCLUDED.model,
			processing_ms = EXCLUDED.processing_ms,
			created_at = now()
		WHERE analysis_results.tier_rank <= EXCLUDED.tier_rank
		RETURNING id, capture_id, fact, observation, insight, human_truth, cultural_moment, tier, tier_rank, model, processing_ms, created_at`

	id := result.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	args := []any{
		id,
		result.CaptureID,
		result.Fact,
		result.Observation,
		result.Insight,
		result.HumanTruth,
		result.CulturalMoment,
		result.Tier,
		result.TierRank,
		result.Model,
		result.ProcessingTime.Milliseconds(),
	}

	saved, err := repository.QueryOne(ctx, r.db, q, args, scanResult)
	if err != nil {
		return nil, repository.MapError(err, ErrTierDowngrade, ErrDuplicate)
	}

	r.logger.Info(
		"analysis result saved",
		"capture_id", saved.CaptureID,
		"tier", saved.Tier,
		"model", saved.Model,
	)
	return &saved, nil
}

func (r *repo) Delete(ctx context.Context, captureID uuid.UUID) error {
	err := repository.ExecExpectOne(
		ctx, r.db,
		"DELETE FROM analysis_results WHERE capture_id = $1",
		captureID,
	)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("analysis result deleted", "capture_id", captureID)
	return nil
}
