package orchestration

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/radarhq/radar/internal/analyses"
	"github.com/radarhq/radar/internal/captures"
)

// ContentSource looks up captures for analysis. Implemented by the
// captures domain system.
type ContentSource interface {
	Find(ctx context.Context, id uuid.UUID) (*captures.Capture, error)
}

// ResultStore is the durable keyed store of one authoritative analysis
// result per capture. Implemented by the analyses domain system.
type ResultStore interface {
	FindByCapture(ctx context.Context, captureID uuid.UUID) (*analyses.Result, error)
	Save(ctx context.Context, result *analyses.Result) (*analyses.Result, error)
}

// TruthAnalysis is the validated output of one truth-analysis backend
// call: the five semantic fields plus call provenance.
type TruthAnalysis struct {
	Fact           string        `json:"fact"`
	Observation    string        `json:"observation"`
	Insight        string        `json:"insight"`
	HumanTruth     string        `json:"human_truth"`
	CulturalMoment string        `json:"cultural_moment"`
	Model          string        `json:"model"`
	ProcessingTime time.Duration `json:"processing_time"`
}

// VisualAnalysis is the validated output of one visual-analysis backend
// call. It is an optional enrichment: either present or absent, never
// tiered, and never persisted by the orchestrator.
type VisualAnalysis struct {
	BrandElements   []string      `json:"brand_elements,omitempty"`
	CulturalSignals []string      `json:"cultural_signals,omitempty"`
	VisualTrends    []string      `json:"visual_trends,omitempty"`
	Summary         string        `json:"summary"`
	Model           string        `json:"model"`
	ProcessingTime  time.Duration `json:"processing_time"`
}

// TruthAnalyzer is the text truth-analysis capability: an opaque async
// call that may fail, may be slow, and is billed per call.
type TruthAnalyzer interface {
	AnalyzeTruth(ctx context.Context, content string, meta ContentMetadata, tier Tier) (*TruthAnalysis, error)
}

// VisualAnalyzer is the visual-analysis capability, independent of and
// optional relative to truth analysis.
type VisualAnalyzer interface {
	AnalyzeVisual(ctx context.Context, images []string, videoURL string, meta ContentMetadata) (*VisualAnalysis, error)
}
