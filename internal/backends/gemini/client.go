// Package gemini implements the visual-analysis backend against the
// Gemini API. Image references resolve either as blob storage keys or
// as fetchable URLs.
package gemini

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/radarhq/radar/internal/orchestration"
	"github.com/radarhq/radar/pkg/formatting"
	"github.com/radarhq/radar/pkg/storage"
)

const defaultModel = "gemini-2.5-pro"

const visualPrompt = "Analyze this visual content for brand elements, cultural " +
	"signals, and strategic intelligence insights. Return JSON with these exact " +
	"fields: {\"brand_elements\": [], \"cultural_signals\": [], " +
	"\"visual_trends\": [], \"summary\": \"\"}"

// visualResponse is the loosely-shaped JSON the model returns.
type visualResponse struct {
	BrandElements   []string `json:"brand_elements"`
	CulturalSignals []string `json:"cultural_signals"`
	VisualTrends    []string `json:"visual_trends"`
	Summary         string   `json:"summary"`
}

// Client calls the Gemini API for visual analysis.
type Client struct {
	model   *genai.GenerativeModel
	name    string
	storage storage.System
	http    *http.Client
	logger  *slog.Logger
}

// New creates a visual-analysis client. The storage system resolves
// image references that are blob keys rather than URLs.
func New(ctx context.Context, apiKey, model string, store storage.System, logger *slog.Logger) (*Client, error) {
	api, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	if model == "" {
		model = defaultModel
	}

	gm := api.GenerativeModel(model)
	gm.ResponseMIMEType = "application/json"

	return &Client{
		model:   gm,
		name:    model,
		storage: store,
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger.With("system", "gemini"),
	}, nil
}

// AnalyzeVisual runs one visual analysis call over the capture's images.
// A video reference contributes context only; frames are not extracted.
func (c *Client) AnalyzeVisual(
	ctx context.Context,
	images []string,
	videoURL string,
	meta orchestration.ContentMetadata,
) (*orchestration.VisualAnalysis, error) {
	start := time.Now()

	parts := make([]genai.Part, 0, len(images)+2)

	for _, ref := range images {
		data, format, err := c.resolveImage(ctx, ref)
		if err != nil {
			c.logger.Warn("image reference unresolved", "ref", ref, "error", err)
			continue
		}
		parts = append(parts, genai.ImageData(format, data))
	}

	if len(parts) == 0 {
		return nil, fmt.Errorf("no resolvable images")
	}

	prompt := visualPrompt
	if meta.Platform != "" {
		prompt += fmt.Sprintf(" Source platform: %s.", meta.Platform)
	}
	if videoURL != "" {
		prompt += fmt.Sprintf(" The content also references a video at %s.", videoURL)
	}
	parts = append(parts, genai.Text(prompt))

	resp, err := c.model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return nil, fmt.Errorf("empty model response")
	}

	parsed, err := formatting.Parse[visualResponse](text)
	if err != nil {
		return nil, fmt.Errorf("parse visual response: %w", err)
	}

	analysis := &orchestration.VisualAnalysis{
		BrandElements:   parsed.BrandElements,
		CulturalSignals: parsed.CulturalSignals,
		VisualTrends:    parsed.VisualTrends,
		Summary:         parsed.Summary,
		Model:           c.name,
		ProcessingTime:  time.Since(start),
	}

	c.logger.Info(
		"visual analysis complete",
		"model", c.name,
		"images", len(images),
		"duration", analysis.ProcessingTime,
	)

	return analysis, nil
}

// resolveImage fetches the bytes behind an image reference: URLs over
// HTTP, everything else as a blob storage key.
func (c *Client) resolveImage(ctx context.Context, ref string) ([]byte, string, error) {
	if isURL(ref) {
		return c.fetchURL(ctx, ref)
	}

	reader, err := c.storage.Download(ctx, ref)
	if err != nil {
		return nil, "", fmt.Errorf("download blob: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, "", fmt.Errorf("read blob: %w", err)
	}

	return data, imageFormat(data), nil
}

func (c *Client) fetchURL(ctx context.Context, ref string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return data, imageFormat(data), nil
}

func isURL(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// imageFormat derives the genai image format token from sniffed content.
func imageFormat(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "jpeg"
	}
}

func extractText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return b.String()
}
