package orchestration

import (
	"regexp"
	"strings"

	"github.com/radarhq/radar/internal/captures"
)

// ContentMetadata is the lightweight classification derived from a capture
// before analysis. It travels with the backend calls as context and drives
// tier recommendation; it never gates whether truth analysis runs.
type ContentMetadata struct {
	Platform    string `json:"platform,omitempty"`
	PostID      string `json:"post_id,omitempty"`
	VideoID     string `json:"video_id,omitempty"`
	ContentType string `json:"content_type"`
	URL         string `json:"url,omitempty"`
	WordCount   int    `json:"word_count"`
	HasVisual   bool   `json:"has_visual"`
}

type platformPattern struct {
	name    string
	pattern *regexp.Regexp
}

// Ordered so detection is deterministic when a URL could match more
// than one pattern.
var platformPatterns = []platformPattern{
	{"instagram", regexp.MustCompile(`(?i)instagram\.com`)},
	{"youtube", regexp.MustCompile(`(?i)youtube\.com|youtu\.be`)},
	{"tiktok", regexp.MustCompile(`(?i)tiktok\.com`)},
	{"linkedin", regexp.MustCompile(`(?i)linkedin\.com`)},
	{"twitter", regexp.MustCompile(`(?i)twitter\.com|x\.com`)},
	{"reddit", regexp.MustCompile(`(?i)reddit\.com`)},
}

var (
	instagramPostRe = regexp.MustCompile(`/p/([^/]+)`)
	youtubeVideoRe  = regexp.MustCompile(`[?&]v=([^&]+)`)
	tiktokVideoRe   = regexp.MustCompile(`/video/(\d+)`)
)

// Classify derives content metadata from a capture: detected source
// platform, platform-specific references, word count, and whether the
// capture carries visual material.
func Classify(c *captures.Capture) ContentMetadata {
	meta := ContentMetadata{
		Platform:    DetectPlatform(c.SourceURL),
		ContentType: c.ContentType,
		URL:         c.SourceURL,
		WordCount:   wordCount(c.Content),
		HasVisual:   c.HasVisualContent(),
	}

	switch meta.Platform {
	case "instagram":
		if m := instagramPostRe.FindStringSubmatch(c.SourceURL); m != nil {
			meta.PostID = m[1]
		}
	case "youtube":
		if m := youtubeVideoRe.FindStringSubmatch(c.SourceURL); m != nil {
			meta.VideoID = m[1]
		}
	case "tiktok":
		if m := tiktokVideoRe.FindStringSubmatch(c.SourceURL); m != nil {
			meta.VideoID = m[1]
		}
	}

	return meta
}

// DetectPlatform matches a source URL against known platform domains.
// Returns an empty string when no platform matches.
func DetectPlatform(url string) string {
	if url == "" {
		return ""
	}

	for _, p := range platformPatterns {
		if p.pattern.MatchString(url) {
			return p.name
		}
	}

	return ""
}

// RecommendTier advises a tier for a capture without side effects.
// Long-form and professional-context content warrants deeper analysis;
// short or purely-visual content defaults to the middle tier only when
// richer than minimal.
func RecommendTier(c *captures.Capture) Tier {
	words := wordCount(c.Content)
	platform := DetectPlatform(c.SourceURL)

	if words > 500 || platform == "linkedin" {
		return TierDeep
	}

	if words > 150 || c.HasVisualContent() {
		return TierStandard
	}

	return TierQuick
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
