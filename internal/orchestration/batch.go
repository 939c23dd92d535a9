package orchestration

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// BatchAnalyze processes a list of captures under the same per-item
// dedup and cache rules as AnalyzeCapture, bounding backend pressure:
// chunks of size parallelism run sequentially, items within a chunk run
// concurrently. Per-item failures are logged and dropped, so the batch
// returns partial results rather than failing outright. Result order
// follows chunk grouping, not input order.
func (o *Orchestrator) BatchAnalyze(
	ctx context.Context,
	ids []uuid.UUID,
	tier Tier,
	parallelism int,
) ([]*Result, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}

	if parallelism < 1 {
		parallelism = o.cfg.BatchParallelism
	}

	var (
		mu      sync.Mutex
		results = make([]*Result, 0, len(ids))
	)

	for chunk := range slices.Chunk(ids, parallelism) {
		var g errgroup.Group

		for _, id := range chunk {
			g.Go(func() error {
				res, err := o.AnalyzeCapture(ctx, Request{
					CaptureID:     id,
					Tier:          tier,
					IncludeVisual: true,
				})
				if err != nil {
					o.logger.Warn("batch item failed", "capture_id", id, "error", err)
					return nil
				}

				mu.Lock()
				results = append(results, res)
				mu.Unlock()
				return nil
			})
		}

		g.Wait()
	}

	o.logger.Info(
		"batch analysis complete",
		"requested", len(ids),
		"succeeded", len(results),
		"tier", tier,
	)

	return results, nil
}
