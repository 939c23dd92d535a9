package openai

import (
	"fmt"

	"github.com/radarhq/radar/internal/orchestration"
)

const systemPrompt = "You are a strategic intelligence analyst specializing in the " +
	"Truth Analysis Framework. Analyze content through the lens of " +
	"fact → observation → insight → human truth → cultural moment. " +
	"Respond with JSON only."

func buildUserPrompt(content string, meta orchestration.ContentMetadata, params orchestration.TierParams) string {
	context := ""
	if meta.Platform != "" {
		context = fmt.Sprintf("\nSource platform: %s.", meta.Platform)
	}

	return fmt.Sprintf(`Analyze this content using the Truth Analysis Framework.%s
Write %s sentences per field. Return JSON with these exact fields:

{
  "fact": "what verifiably happened",
  "observation": "observable patterns and audience signals",
  "insight": "strategic implications",
  "human_truth": "the underlying emotional or psychological driver",
  "cultural_moment": "how this connects to the current cultural context"
}

Content:
%s`, context, params.SentenceCount, content)
}
