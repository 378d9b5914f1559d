package pages

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"agency-cms/database"
	"agency-cms/internal/content"
	"agency-cms/internal/domain/cms"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestNormalizeSections_Defaults(t *testing.T) {
	sections, msg := normalizeSections("p1", []SectionInput{
		{Key: "hero-heading", Content: "X"},
	})

	require.Empty(t, msg)
	require.Len(t, sections, 1)
	assert.Equal(t, "p1", sections[0].PageID)
	assert.Equal(t, cms.PrimaryLocale, sections[0].Locale)
	assert.Equal(t, cms.ContentTypeText, sections[0].ContentType)
	assert.Equal(t, "{}", sections[0].Metadata)
}

func TestNormalizeSections_RejectsEmptyKey(t *testing.T) {
	_, msg := normalizeSections("p1", []SectionInput{{Key: "   "}})
	assert.Equal(t, "Section key is required", msg)
}

func TestNormalizeSections_RejectsUnknownContentType(t *testing.T) {
	_, msg := normalizeSections("p1", []SectionInput{
		{Key: "hero", ContentType: "docx"},
	})
	assert.Contains(t, msg, "Invalid content type")
}

func TestNormalizeSections_RejectsBrokenMetadata(t *testing.T) {
	_, msg := normalizeSections("p1", []SectionInput{
		{Key: "hero", Metadata: `{broken`},
	})
	assert.Equal(t, "Section metadata must be valid JSON", msg)
}

func TestNormalizeSections_RejectsDuplicateKeyLocale(t *testing.T) {
	_, msg := normalizeSections("p1", []SectionInput{
		{Key: "hero", Locale: "en"},
		{Key: "hero", Locale: "EN"},
	})
	assert.Contains(t, msg, "Duplicate section key")
}

func TestNormalizeSections_SameKeyDifferentLocalesAllowed(t *testing.T) {
	sections, msg := normalizeSections("p1", []SectionInput{
		{Key: "hero", Locale: "en", Content: "Welcome"},
		{Key: "hero", Locale: "ar", Content: "مرحبا"},
	})

	require.Empty(t, msg)
	assert.Len(t, sections, 2)
}

func TestNormalizeSections_AssignsInsertionSequence(t *testing.T) {
	// equal order values fall back to the save's insertion sequence, so
	// every section carries its position in the incoming set
	sections, msg := normalizeSections("p1", []SectionInput{
		{Key: "a", Order: 5},
		{Key: "b", Order: 5},
		{Key: "c", Order: 5},
	})

	require.Empty(t, msg)
	require.Len(t, sections, 3)
	assert.Equal(t, 0, sections[0].Seq)
	assert.Equal(t, 1, sections[1].Seq)
	assert.Equal(t, 2, sections[2].Seq)
}

// -------- CreatePage --------

type stubStore struct {
	page     *cms.Page
	sections []cms.Section
}

func (s *stubStore) FindPublishedPageBySlug(ctx context.Context, slug string) (*cms.Page, error) {
	if s.page != nil && s.page.Slug == slug {
		return s.page, nil
	}
	return nil, nil
}

func (s *stubStore) SectionsForPage(ctx context.Context, pageID string, locale string) ([]cms.Section, error) {
	return s.sections, nil
}

func newCreateTestRouter(t *testing.T, resolver *content.Resolver) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	prev := database.DB
	database.DB = gdb
	t.Cleanup(func() { database.DB = prev })

	h := NewHandler(resolver)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", uint(1)) })
	r.POST("/cms/admin/pages", h.CreatePage)
	return r, mock
}

func TestCreatePage_DuplicateSlugKeepsCacheIntact(t *testing.T) {
	store := &stubStore{
		page:     &cms.Page{ID: "p1", Slug: "home", Title: "Home", Status: cms.StatusPublished},
		sections: []cms.Section{{Key: "hero-heading", Locale: "en", Content: "cached"}},
	}
	resolver := content.NewResolver(store, 8)

	// prime the cache, then change the backing data so a cache hit is
	// observable
	m := resolver.Sections(context.Background(), "home", "en")
	require.Equal(t, "cached", m.GetOr("hero-heading", ""))
	store.sections = []cms.Section{{Key: "hero-heading", Locale: "en", Content: "fresh"}}

	r, mock := newCreateTestRouter(t, resolver)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "pages" WHERE slug = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	body := []byte(`{"slug":"home","title":"Home"}`)
	req := httptest.NewRequest(http.MethodPost, "/cms/admin/pages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	// the rejected create must not have evicted the existing page's entry
	m = resolver.Sections(context.Background(), "home", "en")
	assert.Equal(t, "cached", m.GetOr("hero-heading", ""))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePage_MissingSlugOrTitleRejected(t *testing.T) {
	resolver := content.NewResolver(&stubStore{}, 0)
	r, _ := newCreateTestRouter(t, resolver)

	body := []byte(`{"slug":"","title":"Home"}`)
	req := httptest.NewRequest(http.MethodPost, "/cms/admin/pages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
