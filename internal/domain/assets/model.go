package assets

import "time"

type Asset struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Filename     string `gorm:"not null;uniqueIndex" json:"filename"`
	OriginalName string `gorm:"not null" json:"original_name"`
	Path         string `gorm:"not null" json:"path"`
	MimeType     string `gorm:"not null" json:"mime_type"`
	Size         int64  `gorm:"not null" json:"size"`

	Width  *int `json:"width,omitempty"`
	Height *int `json:"height,omitempty"`

	Alt      *string `json:"alt,omitempty"`
	Title    *string `json:"title,omitempty"`
	Category *string `gorm:"index" json:"category,omitempty"`

	UserID *uint `gorm:"index" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
