package pages

import "time"

type SectionInput struct {
	Key         string  `json:"key" binding:"required"`
	Locale      string  `json:"locale"`
	Title       *string `json:"title"`
	Content     string  `json:"content"`
	ContentType string  `json:"content_type"`
	Order       int     `json:"order"`
	Metadata    string  `json:"metadata"`
}

type CreatePageRequest struct {
	Slug        string         `json:"slug"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Sections    []SectionInput `json:"sections"`
}

type UpdatePageRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Sections    []SectionInput `json:"sections"`
}

type SectionDTO struct {
	ID          string  `json:"id"`
	Key         string  `json:"key"`
	Locale      string  `json:"locale"`
	Title       *string `json:"title,omitempty"`
	Content     string  `json:"content"`
	ContentType string  `json:"content_type"`
	Order       int     `json:"order"`
	Metadata    string  `json:"metadata"`
}

type PageDTO struct {
	ID          string       `json:"id"`
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	Status      string       `json:"status"`
	PublishedAt *time.Time   `json:"published_at,omitempty"`
	Sections    []SectionDTO `json:"sections"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type ListPagesResponse struct {
	Pages []PageDTO `json:"pages"`
}
