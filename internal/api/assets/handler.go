package assets

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"agency-cms/config"
	"agency-cms/database"
	"agency-cms/internal/domain/assets"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// POST /cms/admin/assets (multipart: file + optional alt/title/category)
//
// The file is written before the record is inserted; a failed write prevents
// record creation. The inverse (insert failing after a successful write) can
// leave an orphaned file — accepted.
func UploadAsset(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := uuid.NewString() + ext
	path := filepath.Join(config.UPLOAD_DIR, filename)

	if err := os.MkdirAll(config.UPLOAD_DIR, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}
	if err := c.SaveUploadedFile(file, path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	uid := userID
	asset := assets.Asset{
		Filename:     filename,
		OriginalName: file.Filename,
		Path:         path,
		MimeType:     mimeType,
		Size:         file.Size,
		Alt:          optionalForm(c, "alt"),
		Title:        optionalForm(c, "title"),
		Category:     optionalForm(c, "category"),
		UserID:       &uid,
	}

	if err := database.DB.Create(&asset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save asset record"})
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// GET /cms/admin/assets?category=
func ListAssets(c *gin.Context) {
	if _, ok := mustUserID(c); !ok {
		return
	}

	q := database.DB.Model(&assets.Asset{}).Order("created_at DESC")
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var rows []assets.Asset
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load assets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": rows})
}

// DELETE /cms/admin/assets/:id
//
// File removal is best-effort; the record is removed even when the file
// removal fails (the orphaned file is accepted over a dangling record).
func DeleteAsset(c *gin.Context) {
	if _, ok := mustUserID(c); !ok {
		return
	}
	id := c.Param("id")

	var asset assets.Asset
	if err := database.DB.First(&asset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load asset"})
		return
	}

	if err := os.Remove(asset.Path); err != nil && !os.IsNotExist(err) {
		log.Printf("assets: failed to remove file %s: %v", asset.Path, err)
	}

	if err := database.DB.Delete(&assets.Asset{}, "id = ?", asset.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete asset record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func optionalForm(c *gin.Context, key string) *string {
	v := strings.TrimSpace(c.PostForm(key))
	if v == "" {
		return nil
	}
	return &v
}
