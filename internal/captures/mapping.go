package captures

import (
	"encoding/json"
	"net/url"

	"github.com/google/uuid"

	"github.com/radarhq/radar/pkg/query"
	"github.com/radarhq/radar/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "captures", "c").
	Project("id", "ID").
	Project("project_id", "ProjectID").
	Project("title", "Title").
	Project("content", "Content").
	Project("source_url", "SourceURL").
	Project("content_type", "ContentType").
	Project("images", "Images").
	Project("video_url", "VideoURL").
	Project("screenshot_key", "ScreenshotKey").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for capture queries.
// Nil fields are ignored. ContentType and ProjectID use exact matching;
// Title and SourceURL use case-insensitive contains matching.
type Filters struct {
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
	Title       *string    `json:"title,omitempty"`
	SourceURL   *string    `json:"source_url,omitempty"`
	ContentType *string    `json:"content_type,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("ProjectID", f.ProjectID).
		WhereContains("Title", f.Title).
		WhereContains("SourceURL", f.SourceURL).
		WhereEquals("ContentType", f.ContentType)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if p := values.Get("project_id"); p != "" {
		if id, err := uuid.Parse(p); err == nil {
			f.ProjectID = &id
		}
	}

	if t := values.Get("title"); t != "" {
		f.Title = &t
	}

	if s := values.Get("source_url"); s != "" {
		f.SourceURL = &s
	}

	if ct := values.Get("content_type"); ct != "" {
		f.ContentType = &ct
	}

	return f
}

func scanCapture(s repository.Scanner) (Capture, error) {
	var (
		c      Capture
		images []byte
	)

	err := s.Scan(
		&c.ID,
		&c.ProjectID,
		&c.Title,
		&c.Content,
		&c.SourceURL,
		&c.ContentType,
		&images,
		&c.VideoURL,
		&c.ScreenshotKey,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}

	if len(images) > 0 {
		if err := json.Unmarshal(images, &c.Images); err != nil {
			return c, err
		}
	}

	return c, nil
}
