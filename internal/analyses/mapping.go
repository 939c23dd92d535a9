package analyses

import (
	"time"

	"github.com/radarhq/radar/pkg/query"
	"github.com/radarhq/radar/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "analysis_results", "a").
	Project("id", "ID").
	Project("capture_id", "CaptureID").
	Project("fact", "Fact").
	Project("observation", "Observation").
	Project("insight", "Insight").
	Project("human_truth", "HumanTruth").
	Project("cultural_moment", "CulturalMoment").
	Project("tier", "Tier").
	Project("tier_rank", "TierRank").
	Project("model", "Model").
	Project("processing_ms", "ProcessingMs").
	Project("created_at", "CreatedAt")

func scanResult(s repository.Scanner) (Result, error) {
	var (
		r            Result
		processingMs int64
	)

	err := s.Scan(
		&r.ID,
		&r.CaptureID,
		&r.Fact,
		&r.Observation,
		&r.Insight,
		&r.HumanTruth,
		&r.CulturalMoment,
		&r.Tier,
		&r.TierRank,
		&r.Model,
		&processingMs,
		&r.CreatedAt,
	)
	if err != nil {
		return r, err
	}

	r.ProcessingTime = time.Duration(processingMs) * time.Millisecond
	return r, nil
}
