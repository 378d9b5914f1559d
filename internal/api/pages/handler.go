package pages

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"agency-cms/database"
	"agency-cms/internal/content"
	"agency-cms/internal/domain/cms"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler carries the shared resolver so every write can evict the content
// cache for the page it touched.
type Handler struct {
	resolver *content.Resolver
}

func NewHandler(resolver *content.Resolver) *Handler {
	return &Handler{resolver: resolver}
}

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// normalizeSections validates incoming section inputs and converts them to
// models for one page. Returns a descriptive message on the first invalid
// input.
func normalizeSections(pageID string, inputs []SectionInput) ([]cms.Section, string) {
	sections := make([]cms.Section, 0, len(inputs))
	for i, in := range inputs {
		key := strings.TrimSpace(in.Key)
		if key == "" {
			return nil, "Section key is required"
		}

		locale := cms.NormalizeLocale(in.Locale)

		contentType := in.ContentType
		if contentType == "" {
			contentType = cms.ContentTypeText
		}
		if !cms.IsValidContentType(contentType) {
			return nil, "Invalid content type: " + contentType
		}

		metadata := in.Metadata
		if metadata == "" {
			metadata = "{}"
		} else if !json.Valid([]byte(metadata)) {
			return nil, "Section metadata must be valid JSON"
		}

		for _, prev := range sections {
			if prev.Key == key && prev.Locale == locale {
				return nil, "Duplicate section key " + key + " for locale " + locale
			}
		}

		sections = append(sections, cms.Section{
			PageID:      pageID,
			Key:         key,
			Locale:      locale,
			Title:       in.Title,
			Content:     in.Content,
			ContentType: contentType,
			SortIndex:   in.Order,
			Metadata:    metadata,
			Seq:         i,
		})
	}
	return sections, ""
}

// GET /cms/admin/pages
func (h *Handler) ListPages(c *gin.Context) {
	var pageList []cms.Page
	if err := pageWithSectionsQuery(database.DB).
		Order("slug ASC").
		Find(&pageList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pages"})
		return
	}

	out := ListPagesResponse{Pages: make([]PageDTO, 0, len(pageList))}
	for _, p := range pageList {
		out.Pages = append(out.Pages, toPageDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

// GET /cms/admin/pages/:id
func (h *Handler) GetPage(c *gin.Context) {
	id := c.Param("id")

	var page cms.Page
	if err := pageWithSectionsQuery(database.DB).First(&page, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	c.JSON(http.StatusOK, toPageDTO(page))
}

// POST /cms/admin/pages
func (h *Handler) CreatePage(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := strings.TrimSpace(strings.ToLower(req.Slug))
	title := strings.TrimSpace(req.Title)
	if slug == "" || title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug and title are required"})
		return
	}

	uid := userID
	page := cms.Page{
		Slug:        slug,
		Title:       title,
		Description: req.Description,
		Status:      cms.StatusDraft,
		UserID:      &uid,
	}

	created := false
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&cms.Page{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "A page with this slug already exists"})
			return nil
		}

		if err := tx.Create(&page).Error; err != nil {
			return err
		}

		sections, msg := normalizeSections(page.ID, req.Sections)
		if msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return errRolledBack
		}
		for i := range sections {
			if err := tx.Create(&sections[i]).Error; err != nil {
				return err
			}
		}

		created = true
		c.JSON(http.StatusCreated, gin.H{"id": page.ID, "slug": page.Slug})
		return nil
	})

	if err != nil && !errors.Is(err, errRolledBack) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create page"})
		return
	}

	if created {
		h.resolver.Invalidate(slug)
	}
}

// errRolledBack aborts a transaction after the response has already been
// written inside it.
var errRolledBack = errors.New("rolled back")

// PUT /cms/admin/pages/:id
//
// Sections use full-replace semantics: every prior section of the page is
// deleted and the incoming set is inserted, in that order, within one
// transaction.
func (h *Handler) UpdatePage(c *gin.Context) {
	if _, ok := mustUserID(c); !ok {
		return
	}
	id := c.Param("id")

	var req UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var slug string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var page cms.Page
		if err := tx.First(&page, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
				return nil
			}
			return err
		}
		slug = page.Slug

		updates := map[string]interface{}{}
		if req.Title != nil {
			if strings.TrimSpace(*req.Title) == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
				return errRolledBack
			}
			updates["title"] = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if len(updates) > 0 {
			if err := tx.Model(&cms.Page{}).Where("id = ?", page.ID).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Sections != nil {
			sections, msg := normalizeSections(page.ID, req.Sections)
			if msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return errRolledBack
			}
			if err := tx.Where("page_id = ?", page.ID).Delete(&cms.Section{}).Error; err != nil {
				return err
			}
			for i := range sections {
				if err := tx.Create(&sections[i]).Error; err != nil {
					return err
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return nil
	})

	if err != nil && !errors.Is(err, errRolledBack) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page"})
		return
	}

	if slug != "" {
		h.resolver.Invalidate(slug)
	}
}

// DELETE /cms/admin/pages/:id
func (h *Handler) DeletePage(c *gin.Context) {
	if _, ok := mustUserID(c); !ok {
		return
	}
	id := c.Param("id")

	var page cms.Page
	if err := database.DB.First(&page, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("page_id = ?", page.ID).Delete(&cms.Section{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cms.Page{}, "id = ?", page.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete page"})
		return
	}

	h.resolver.Invalidate(page.Slug)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// POST /cms/admin/pages/:id/publish
func (h *Handler) PublishPage(c *gin.Context) {
	h.setStatus(c, cms.StatusPublished)
}

// POST /cms/admin/pages/:id/unpublish
func (h *Handler) UnpublishPage(c *gin.Context) {
	h.setStatus(c, cms.StatusDraft)
}

func (h *Handler) setStatus(c *gin.Context, status string) {
	if _, ok := mustUserID(c); !ok {
		return
	}
	id := c.Param("id")

	var page cms.Page
	if err := database.DB.First(&page, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	updates := map[string]interface{}{"status": status}
	if status == cms.StatusPublished {
		now := time.Now()
		updates["published_at"] = &now
	}

	if err := database.DB.Model(&cms.Page{}).Where("id = ?", page.ID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page status"})
		return
	}

	h.resolver.Invalidate(page.Slug)
	c.JSON(http.StatusOK, gin.H{"status": status})
}
