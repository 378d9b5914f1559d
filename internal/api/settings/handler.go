package settings

import (
	"encoding/json"
	"net/http"

	"agency-cms/database"
	"agency-cms/internal/domain/settings"
	"agency-cms/internal/domain/theme"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UpsertSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// GET /cms/public/settings
//
// Public, read-only view of the string settings (contact info, site name).
// The theme and other JSON settings are excluded; the theme has its own
// endpoint with fallback semantics.
func GetPublicSettings(c *gin.Context) {
	var rows []settings.SiteSetting
	if err := database.DB.
		Where("type = ?", settings.TypeString).
		Find(&rows).Error; err != nil {
		// public path: degrade to an empty set, never 5xx
		c.JSON(http.StatusOK, gin.H{"settings": map[string]string{}})
		return
	}

	out := make(map[string]string, len(rows))
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	c.JSON(http.StatusOK, gin.H{"settings": out})
}

// GET /cms/admin/settings
func ListSettings(c *gin.Context) {
	var rows []settings.SiteSetting
	if err := database.DB.Order("key ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": rows})
}

// PUT /cms/admin/settings
func UpsertSetting(c *gin.Context) {
	var req UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	typ := req.Type
	if typ == "" {
		typ = settings.TypeString
	}
	if msg := validateSettingValue(req.Key, req.Value, typ); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := upsert(database.DB, req.Key, req.Value, typ); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "key": req.Key})
}

// PUT /cms/admin/settings/theme
//
// The theme is the one setting with a strict write-side schema: an
// incomplete theme is rejected so the public read path can serve stored
// themes verbatim.
func UpdateTheme(c *gin.Context) {
	var t theme.Theme
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := theme.Validate(t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	encoded, err := json.Marshal(t)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode theme"})
		return
	}

	if err := upsert(database.DB, settings.KeyTheme, string(encoded), settings.TypeJSON); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save theme"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": t})
}

// validateSettingValue returns a rejection message, or "" when the value is
// acceptable. The theme key is held to the theme schema even through the
// generic upsert, so the read path can rely on stored themes being complete.
func validateSettingValue(key, value, typ string) string {
	if typ != settings.TypeString && typ != settings.TypeJSON {
		return "Setting type must be string or json"
	}
	if typ == settings.TypeJSON && !json.Valid([]byte(value)) {
		return "Value must be valid JSON for a json setting"
	}
	if key == settings.KeyTheme {
		if typ != settings.TypeJSON {
			return "Theme setting must have type json"
		}
		t, err := theme.Decode([]byte(value))
		if err != nil {
			return "Theme must be valid JSON"
		}
		if err := theme.Validate(t); err != nil {
			return err.Error()
		}
	}
	return ""
}

func upsert(db *gorm.DB, key, value, typ string) error {
	row := settings.SiteSetting{Key: key, Value: value, Type: typ}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "type", "updated_at"}),
	}).Create(&row).Error
}
