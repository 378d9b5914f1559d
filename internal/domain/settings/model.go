package settings

import "time"

const (
	TypeString = "string"
	TypeJSON   = "json"
)

// Known setting keys
const (
	KeyTheme          = "theme"
	KeyContactEmail   = "contact_email"
	KeyContactPhone   = "contact_phone"
	KeyContactAddress = "contact_address"
	KeySiteName       = "site_name"
	KeySocialLinks    = "social_links"
)

type SiteSetting struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"not null;uniqueIndex;size:100" json:"key"`
	Value string `gorm:"type:text;not null;default:''" json:"value"`
	Type  string `gorm:"not null;default:'string'" json:"type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}
