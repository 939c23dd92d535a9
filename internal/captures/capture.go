// Package captures implements the capture domain for Radar.
// A capture is one unit of collected content (text, source URL, optional
// images, video, or screenshot) awaiting or having undergone analysis.
package captures

import (
	"time"

	"github.com/google/uuid"
)

// Capture represents a registered piece of captured content with its
// metadata and media references. Captures are created by the ingestion
// path and are read-only from the analysis orchestrator's perspective.
type Capture struct {
	ID            uuid.UUID  `json:"id"`
	ProjectID     *uuid.UUID `json:"project_id,omitempty"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	SourceURL     string     `json:"source_url"`
	ContentType   string     `json:"content_type"`
	Images        []string   `json:"images"`
	VideoURL      *string    `json:"video_url,omitempty"`
	ScreenshotKey *string    `json:"screenshot_key,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// HasVisualContent reports whether the capture carries any visual
// material: image references, a video reference, a stored screenshot,
// or a visual content type.
func (c *Capture) HasVisualContent() bool {
	return len(c.Images) > 0 ||
		c.VideoURL != nil ||
		c.ScreenshotKey != nil ||
		c.ContentType == "screenshot" ||
		c.ContentType == "image"
}

// CreateCommand carries the data needed to register a new capture.
// Screenshot holds optional raw screenshot bytes uploaded alongside the
// content; when present it is stored as a blob and referenced by key.
type CreateCommand struct {
	ProjectID   *uuid.UUID
	Title       string
	Content     string
	SourceURL   string
	ContentType string
	Images      []string
	VideoURL    *string
	Screenshot  []byte
}
