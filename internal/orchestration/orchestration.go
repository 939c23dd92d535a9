package orchestration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/radarhq/radar/internal/analyses"
	"github.com/radarhq/radar/internal/captures"
	"github.com/radarhq/radar/pkg/telemetry"
)

const orchestrateRoute = "/analysis/orchestrate"

// Request asks for analysis of one capture at one tier.
type Request struct {
	CaptureID     uuid.UUID `json:"capture_id"`
	Tier          Tier      `json:"tier"`
	IncludeVisual bool      `json:"include_visual"`
}

// Metadata describes how a request was served.
type Metadata struct {
	Duration     time.Duration `json:"duration"`
	ServicesUsed []string      `json:"services_used"`
	CacheHit     bool          `json:"cache_hit"`
	Tier         Tier          `json:"tier"`
}

// Result is the per-request view combining the stored truth analysis,
// the optional visual enrichment, and serving metadata. It is composed
// per request and never persisted as its own entity.
type Result struct {
	CaptureID      uuid.UUID        `json:"capture_id"`
	TruthAnalysis  *analyses.Result `json:"truth_analysis,omitempty"`
	VisualAnalysis *VisualAnalysis  `json:"visual_analysis,omitempty"`
	Metadata       Metadata         `json:"metadata"`
}

// Status reports whether analysis for a capture is running or complete.
type Status struct {
	InProgress bool             `json:"in_progress"`
	Completed  bool             `json:"completed"`
	Result     *analyses.Result `json:"result,omitempty"`
}

// Config holds orchestrator tuning parameters.
type Config struct {
	// BackendTimeout bounds each backend call so a hung backend cannot
	// hold the in-flight registry slot indefinitely.
	BackendTimeout time.Duration
	// BatchParallelism is the default chunk size for batch analysis.
	BatchParallelism int
}

// System defines the public contract for analysis orchestration.
type System interface {
	Handler() *Handler

	AnalyzeCapture(ctx context.Context, req Request) (*Result, error)
	BatchAnalyze(ctx context.Context, ids []uuid.UUID, tier Tier, parallelism int) ([]*Result, error)
	Status(ctx context.Context, id uuid.UUID) (*Status, error)
	Recommend(ctx context.Context, id uuid.UUID) (Tier, error)
}

// Orchestrator coordinates analysis requests per capture. It is safe for
// concurrent use; construct one per process and share it.
type Orchestrator struct {
	content ContentSource
	store   ResultStore
	truth   TruthAnalyzer
	visual  VisualAnalyzer
	monitor telemetry.Monitor
	logger  *slog.Logger
	cfg     Config

	flight   singleflight.Group
	mu       sync.Mutex
	inflight map[uuid.UUID]struct{}
}

// New creates an Orchestrator from its collaborators.
func New(
	content ContentSource,
	store ResultStore,
	truth TruthAnalyzer,
	visual VisualAnalyzer,
	monitor telemetry.Monitor,
	logger *slog.Logger,
	cfg Config,
) *Orchestrator {
	if cfg.BackendTimeout <= 0 {
		cfg.BackendTimeout = 2 * time.Minute
	}
	if cfg.BatchParallelism <= 0 {
		cfg.BatchParallelism = 3
	}

	return &Orchestrator{
		content:  content,
		store:    store,
		truth:    truth,
		visual:   visual,
		monitor:  monitor,
		logger:   logger.With("system", "orchestration"),
		cfg:      cfg,
		inflight: make(map[uuid.UUID]struct{}),
	}
}

// Handler returns the HTTP handler for orchestration endpoints.
func (o *Orchestrator) Handler() *Handler {
	return NewHandler(o, o.logger)
}

// AnalyzeCapture runs analysis for one capture. Concurrent requests for
// the same capture attach to the in-flight computation rather than issuing
// a second backend call, regardless of tier. The registry entry clears
// when the computation settles, success or failure.
func (o *Orchestrator) AnalyzeCapture(ctx context.Context, req Request) (*Result, error) {
	if !req.Tier.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTier, req.Tier)
	}

	v, err, shared := o.flight.Do(req.CaptureID.String(), func() (any, error) {
		o.track(req.CaptureID)
		defer o.untrack(req.CaptureID)
		return o.perform(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	if shared {
		o.logger.Info("attached to in-flight analysis", "capture_id", req.CaptureID)
	}

	return v.(*Result), nil
}

func (o *Orchestrator) perform(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	result, err := o.analyze(ctx, req, start)
	if err != nil {
		o.monitor.RecordCall("POST", orchestrateRoute, 500, time.Since(start))
		return nil, err
	}

	o.monitor.RecordCall("POST", orchestrateRoute, 200, time.Since(start))
	return result, nil
}

func (o *Orchestrator) analyze(ctx context.Context, req Request, start time.Time) (*Result, error) {
	capture, err := o.content.Find(ctx, req.CaptureID)
	if err != nil {
		return nil, fmt.Errorf("fetch capture: %w", err)
	}

	if cached := o.checkCache(ctx, req); cached != nil {
		o.logger.Info(
			"serving cached analysis",
			"capture_id", req.CaptureID,
			"stored_tier", cached.Tier,
			"requested_tier", req.Tier,
		)

		return &Result{
			CaptureID:     req.CaptureID,
			TruthAnalysis: cached,
			Metadata: Metadata{
				Duration:     time.Since(start),
				ServicesUsed: []string{"cache"},
				CacheHit:     true,
				Tier:         req.Tier,
			},
		}, nil
	}

	meta := Classify(capture)

	truth, visual, err := o.fanOut(ctx, capture, req, meta)
	if err != nil {
		return nil, err
	}

	stored := o.persist(ctx, capture.ID, req.Tier, truth)

	services := []string{"truth_analysis"}
	if visual != nil {
		services = append(services, "visual_analysis")
	}

	return &Result{
		CaptureID:      req.CaptureID,
		TruthAnalysis:  stored,
		VisualAnalysis: visual,
		Metadata: Metadata{
			Duration:     time.Since(start),
			ServicesUsed: services,
			CacheHit:     false,
			Tier:         req.Tier,
		},
	}, nil
}

// checkCache returns the stored result when it satisfies the requested
// tier. Store read failures degrade to a cache miss rather than failing
// the request: recomputation is safe, losing the request is not.
func (o *Orchestrator) checkCache(ctx context.Context, req Request) *analyses.Result {
	existing, err := o.store.FindByCapture(ctx, req.CaptureID)
	if err != nil {
		if !errors.Is(err, analyses.ErrNotFound) {
			o.logger.Warn("cache lookup failed", "capture_id", req.CaptureID, "error", err)
		}
		return nil
	}

	if Tier(existing.Tier).Satisfies(req.Tier) {
		return existing
	}

	return nil
}

// fanOut issues the truth call and, when requested and relevant, the
// visual call concurrently, then waits for both to settle. A visual
// failure is logged and dropped; a truth failure fails the request.
func (o *Orchestrator) fanOut(
	ctx context.Context,
	capture *captures.Capture,
	req Request,
	meta ContentMetadata,
) (*TruthAnalysis, *VisualAnalysis, error) {
	// A bare errgroup (no shared context) gives all-settle semantics:
	// both calls run to completion even when one fails. Each output is
	// written by exactly one goroutine before Wait returns.
	var (
		g      errgroup.Group
		truth  *TruthAnalysis
		visual *VisualAnalysis
	)

	g.Go(func() error {
		callCtx, cancel := context.WithTimeout(ctx, o.cfg.BackendTimeout)
		defer cancel()

		t, err := o.truth.AnalyzeTruth(callCtx, prepareContent(capture, meta), meta, req.Tier)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTruthAnalysis, err)
		}
		truth = t
		return nil
	})

	if req.IncludeVisual && meta.HasVisual {
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(ctx, o.cfg.BackendTimeout)
			defer cancel()

			var videoURL string
			if capture.VideoURL != nil {
				videoURL = *capture.VideoURL
			}

			images := slices.Clone(capture.Images)
			if capture.ScreenshotKey != nil {
				images = append(images, *capture.ScreenshotKey)
			}

			v, err := o.visual.AnalyzeVisual(callCtx, images, videoURL, meta)
			if err != nil {
				o.logger.Warn("visual analysis failed", "capture_id", capture.ID, "error", err)
				return nil
			}
			visual = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return truth, visual, nil
}

// persist writes the new authoritative record. A store failure is logged
// and the freshly-computed result is still returned to the caller.
func (o *Orchestrator) persist(
	ctx context.Context,
	captureID uuid.UUID,
	tier Tier,
	truth *TruthAnalysis,
) *analyses.Result {
	record := &analyses.Result{
		ID:             uuid.New(),
		CaptureID:      captureID,
		Fact:           truth.Fact,
		Observation:    truth.Observation,
		Insight:        truth.Insight,
		HumanTruth:     truth.HumanTruth,
		CulturalMoment: truth.CulturalMoment,
		Tier:           tier.String(),
		TierRank:       tier.Rank(),
		Model:          truth.Model,
		ProcessingTime: truth.ProcessingTime,
		CreatedAt:      time.Now(),
	}

	saved, err := o.store.Save(ctx, record)
	if err != nil {
		o.logger.Warn(
			"analysis result save failed, returning unpersisted result",
			"capture_id", captureID,
			"tier", tier,
			"error", err,
		)
		return record
	}

	return saved
}

// Status reports whether a computation is in flight and whether a stored
// result exists. Pure read: no backend calls, no side effects.
func (o *Orchestrator) Status(ctx context.Context, id uuid.UUID) (*Status, error) {
	o.mu.Lock()
	_, inProgress := o.inflight[id]
	o.mu.Unlock()

	result, err := o.store.FindByCapture(ctx, id)
	if err != nil {
		if errors.Is(err, analyses.ErrNotFound) {
			return &Status{InProgress: inProgress}, nil
		}
		return nil, fmt.Errorf("lookup analysis result: %w", err)
	}

	return &Status{
		InProgress: inProgress,
		Completed:  true,
		Result:     result,
	}, nil
}

// Recommend fetches the capture and advises a tier for it.
func (o *Orchestrator) Recommend(ctx context.Context, id uuid.UUID) (Tier, error) {
	capture, err := o.content.Find(ctx, id)
	if err != nil {
		return "", fmt.Errorf("fetch capture: %w", err)
	}

	return RecommendTier(capture), nil
}

func (o *Orchestrator) track(id uuid.UUID) {
	o.mu.Lock()
	o.inflight[id] = struct{}{}
	o.mu.Unlock()
}

func (o *Orchestrator) untrack(id uuid.UUID) {
	o.mu.Lock()
	delete(o.inflight, id)
	o.mu.Unlock()
}

// prepareContent assembles the text handed to the truth backend: the main
// content plus title and platform context, with a placeholder when only a
// screenshot exists.
func prepareContent(c *captures.Capture, meta ContentMetadata) string {
	parts := make([]string, 0, 4)

	if c.Content != "" {
		parts = append(parts, c.Content)
	}

	if c.Title != "" {
		parts = append(parts, "Title: "+c.Title)
	}

	if meta.Platform != "" {
		parts = append(parts, "Platform: "+meta.Platform)
	}

	if c.Content == "" && c.ScreenshotKey != nil {
		parts = append(parts, "[Visual content: screenshot captured]")
	}

	return strings.Join(parts, "\n\n")
}
