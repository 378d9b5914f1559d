package cms

import "time"

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

const (
	ContentTypeMarkdown = "markdown"
	ContentTypeHTML     = "html"
	ContentTypeText     = "text"
)

type Page struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Slug        string  `gorm:"not null;uniqueIndex" json:"slug"`
	Title       string  `gorm:"not null" json:"title"`
	Description *string `json:"description,omitempty"`

	Status      string     `gorm:"not null;default:'draft';index" json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	UserID *uint `gorm:"index" json:"-"`

	Sections []Section `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"sections,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Section struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	PageID string `gorm:"type:uuid;not null;uniqueIndex:idx_sections_page_key_locale" json:"page_id"`
	Key    string `gorm:"not null;uniqueIndex:idx_sections_page_key_locale" json:"key"`
	Locale string `gorm:"not null;uniqueIndex:idx_sections_page_key_locale" json:"locale"`

	Title       *string `json:"title,omitempty"`
	Content     string  `gorm:"type:text;not null;default:''" json:"content"`
	ContentType string  `gorm:"not null;default:'text'" json:"content_type"`
	SortIndex   int     `gorm:"not null;default:0;index" json:"order"`
	Metadata    string  `gorm:"type:text;not null;default:'{}'" json:"metadata"`

	// Seq is the position within the page save that created this section.
	// Equal sort_index values resolve in insertion order, and created_at
	// can tie for rows inserted in one transaction, so ordering uses this
	// instead.
	Seq int `gorm:"not null;default:0" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished
}

func IsValidContentType(ct string) bool {
	return ct == ContentTypeMarkdown || ct == ContentTypeHTML || ct == ContentTypeText
}
