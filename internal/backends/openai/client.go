// Package openai implements the truth-analysis backend against the
// OpenAI chat completions API.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/radarhq/radar/internal/orchestration"
	"github.com/radarhq/radar/pkg/formatting"
)

// truthResponse is the loosely-shaped JSON the model returns. Fields are
// validated and defaulted explicitly before leaving this package.
type truthResponse struct {
	Fact           string `json:"fact"`
	Observation    string `json:"observation"`
	Insight        string `json:"insight"`
	HumanTruth     string `json:"human_truth"`
	CulturalMoment string `json:"cultural_moment"`
}

// Client calls the OpenAI chat completions API for truth analysis,
// selecting model and token ceiling from the requested tier.
type Client struct {
	api    *openai.Client
	logger *slog.Logger
}

// New creates a truth-analysis client with the given API key.
func New(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		api:    openai.NewClient(apiKey),
		logger: logger.With("system", "openai"),
	}
}

// AnalyzeTruth runs one tier-parameterized truth analysis call.
func (c *Client) AnalyzeTruth(
	ctx context.Context,
	content string,
	meta orchestration.ContentMetadata,
	tier orchestration.Tier,
) (*orchestration.TruthAnalysis, error) {
	start := time.Now()
	params := tier.Params()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     params.Model,
		MaxTokens: params.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(content, meta, params)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	parsed, err := formatting.Parse[truthResponse](resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("parse truth response: %w", err)
	}

	analysis := &orchestration.TruthAnalysis{
		Fact:           fallback(parsed.Fact, "fact"),
		Observation:    fallback(parsed.Observation, "observation"),
		Insight:        fallback(parsed.Insight, "insight"),
		HumanTruth:     fallback(parsed.HumanTruth, "human truth"),
		CulturalMoment: fallback(parsed.CulturalMoment, "cultural moment"),
		Model:          params.Model,
		ProcessingTime: time.Since(start),
	}

	c.logger.Info(
		"truth analysis complete",
		"model", params.Model,
		"tier", tier,
		"duration", analysis.ProcessingTime,
	)

	return analysis, nil
}

// fallback substitutes an explicit placeholder for a missing field so
// downstream consumers never see silently-empty values.
func fallback(value, field string) string {
	if value != "" {
		return value
	}
	return fmt.Sprintf("No %s analysis available", field)
}
