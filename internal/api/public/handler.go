package public

import (
	"net/http"

	"agency-cms/internal/content"
	"agency-cms/internal/domain/cms"

	"github.com/gin-gonic/gin"
)

// Handler serves the public, read-only CMS surface. Everything here degrades
// instead of failing: the marketing site must render even when the database
// is down.
type Handler struct {
	resolver  *content.Resolver
	themes    *content.ThemeResolver
	emailSend func(name, email, message string) error
}

func NewHandler(resolver *content.Resolver, themes *content.ThemeResolver, emailSend func(name, email, message string) error) *Handler {
	return &Handler{resolver: resolver, themes: themes, emailSend: emailSend}
}

// GET /cms/public/pages/:slug?locale=xx
func (h *Handler) GetPage(c *gin.Context) {
	slug := c.Param("slug")
	locale := c.Query("locale")

	page, sections, ok := h.resolver.SectionList(c.Request.Context(), slug, locale)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	out := PageResponse{
		Slug:        page.Slug,
		Title:       page.Title,
		Description: page.Description,
		PublishedAt: page.PublishedAt,
		Sections:    make([]SectionDTO, 0, len(sections)),
	}
	for _, s := range sections {
		out.Sections = append(out.Sections, SectionDTO{
			Key:         s.Key,
			Locale:      s.Locale,
			Title:       s.Title,
			Content:     s.Content,
			ContentType: s.ContentType,
			Order:       s.SortIndex,
			Metadata:    s.Metadata,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /cms/public/content/:slug?locale=xx
//
// The flat key→content map the site's render path consumes. Always 200: an
// unknown slug yields an empty map and the components fall back to their own
// defaults.
func (h *Handler) GetContent(c *gin.Context) {
	slug := c.Param("slug")
	locale := cms.NormalizeLocale(c.Query("locale"))

	sections := h.resolver.Sections(c.Request.Context(), slug, locale)
	c.JSON(http.StatusOK, ContentResponse{
		Slug:     slug,
		Locale:   locale,
		Sections: sections,
	})
}

// GET /cms/public/theme
//
// Always 200, never 5xx: theme resolution falls back to the hardcoded
// default on every failure mode.
func (h *Handler) GetTheme(c *gin.Context) {
	t := h.themes.Resolve(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"theme": t})
}

// POST /cms/public/contact
func (h *Handler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.emailSend(req.Name, req.Email, req.Message); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
