package public

import (
	"time"

	"agency-cms/internal/content"
)

type SectionDTO struct {
	Key         string  `json:"key"`
	Locale      string  `json:"locale"`
	Title       *string `json:"title,omitempty"`
	Content     string  `json:"content"`
	ContentType string  `json:"content_type"`
	Order       int     `json:"order"`
	Metadata    string  `json:"metadata"`
}

type PageResponse struct {
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	Sections    []SectionDTO `json:"sections"`
	PublishedAt *time.Time   `json:"published_at,omitempty"`
}

type ContentResponse struct {
	Slug     string      `json:"slug"`
	Locale   string      `json:"locale"`
	Sections content.Map `json:"sections"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
