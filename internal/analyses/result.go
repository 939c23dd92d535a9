// Package analyses implements the analysis result store for Radar.
// It holds the single authoritative truth-analysis record per capture,
// tagged with the tier at which it was produced.
package analyses

import (
	"time"

	"github.com/google/uuid"
)

// Result is the normalized output of truth analysis for one capture at
// one tier. Records are immutable once written; a re-analysis at a
// higher tier supersedes the stored record with a new one.
type Result struct {
	ID             uuid.UUID     `json:"id"`
	CaptureID      uuid.UUID     `json:"capture_id"`
	Fact           string        `json:"fact"`
	Observation    string        `json:"observation"`
	Insight        string        `json:"insight"`
	HumanTruth     string        `json:"human_truth"`
	CulturalMoment string        `json:"cultural_moment"`
	Tier           string        `json:"tier"`
	TierRank       int           `json:"tier_rank"`
	Model          string        `json:"model"`
	ProcessingTime time.Duration `json:"processing_time"`
	CreatedAt      time.Time     `json:"created_at"`
}
