package public

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agency-cms/internal/content"
	"agency-cms/internal/domain/cms"
	"agency-cms/internal/domain/settings"
	"agency-cms/internal/domain/theme"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	page     *cms.Page
	sections map[string][]cms.Section // locale

	pageErr error

	setting    *settings.SiteSetting
	settingErr error
}

func (f *fakeStore) FindPublishedPageBySlug(ctx context.Context, slug string) (*cms.Page, error) {
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	if f.page != nil && f.page.Slug == slug {
		return f.page, nil
	}
	return nil, nil
}

func (f *fakeStore) SectionsForPage(ctx context.Context, pageID string, locale string) ([]cms.Section, error) {
	return f.sections[locale], nil
}

func (f *fakeStore) FindSettingByKey(ctx context.Context, key string) (*settings.SiteSetting, error) {
	if f.settingErr != nil {
		return nil, f.settingErr
	}
	return f.setting, nil
}

func newTestRouter(store *fakeStore, emailSend func(name, email, message string) error) *gin.Engine {
	gin.SetMode(gin.TestMode)

	if emailSend == nil {
		emailSend = func(string, string, string) error { return nil }
	}

	h := NewHandler(
		content.NewResolver(store, 0),
		content.NewThemeResolver(store),
		emailSend,
	)

	r := gin.New()
	r.GET("/cms/public/pages/:slug", h.GetPage)
	r.GET("/cms/public/content/:slug", h.GetContent)
	r.GET("/cms/public/theme", h.GetTheme)
	r.POST("/cms/public/contact", h.SubmitContact)
	return r
}

func doRequest(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetPage_NotFoundForUnknownSlug(t *testing.T) {
	r := newTestRouter(&fakeStore{}, nil)

	w := doRequest(r, http.MethodGet, "/cms/public/pages/nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPage_PublishedPageWithLocaleFallback(t *testing.T) {
	now := time.Now()
	store := &fakeStore{
		page: &cms.Page{ID: "p1", Slug: "services", Title: "Services", Status: cms.StatusPublished, PublishedAt: &now},
		sections: map[string][]cms.Section{
			"en": {{Key: "intro", Locale: "en", Content: "We ship", SortIndex: 0, ContentType: cms.ContentTypeText, Metadata: "{}"}},
		},
	}
	r := newTestRouter(store, nil)

	w := doRequest(r, http.MethodGet, "/cms/public/pages/services?locale=ru", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp PageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "services", resp.Slug)
	require.Len(t, resp.Sections, 1)
	assert.Equal(t, "intro", resp.Sections[0].Key)
	assert.Equal(t, "We ship", resp.Sections[0].Content)
}

func TestGetContent_AlwaysOK(t *testing.T) {
	store := &fakeStore{pageErr: errors.New("db down")}
	r := newTestRouter(store, nil)

	w := doRequest(r, http.MethodGet, "/cms/public/content/home?locale=ar", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ContentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ar", resp.Locale)
	assert.Empty(t, resp.Sections)
}

func TestGetTheme_Never5xx(t *testing.T) {
	cases := map[string]*fakeStore{
		"no row":       {},
		"corrupt json": {setting: &settings.SiteSetting{Key: settings.KeyTheme, Value: `{not json`}},
		"store down":   {settingErr: errors.New("connection refused")},
	}

	for name, store := range cases {
		t.Run(name, func(t *testing.T) {
			r := newTestRouter(store, nil)

			w := doRequest(r, http.MethodGet, "/cms/public/theme", nil)

			require.Equal(t, http.StatusOK, w.Code)

			var resp struct {
				Theme theme.Theme `json:"theme"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NoError(t, theme.Validate(resp.Theme))
			assert.Equal(t, theme.Default(), resp.Theme)
		})
	}
}

func TestSubmitContact(t *testing.T) {
	var gotName, gotEmail string
	send := func(name, email, message string) error {
		gotName, gotEmail = name, email
		return nil
	}
	r := newTestRouter(&fakeStore{}, send)

	body := []byte(`{"name":"Jo","email":"jo@example.com","message":"Quote please"}`)
	w := doRequest(r, http.MethodPost, "/cms/public/contact", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Jo", gotName)
	assert.Equal(t, "jo@example.com", gotEmail)
}

func TestSubmitContact_RejectsMissingFields(t *testing.T) {
	r := newTestRouter(&fakeStore{}, nil)

	w := doRequest(r, http.MethodPost, "/cms/public/contact", []byte(`{"name":"Jo"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitContact_MailFailure(t *testing.T) {
	send := func(string, string, string) error { return errors.New("smtp down") }
	r := newTestRouter(&fakeStore{}, send)

	body := []byte(`{"name":"Jo","email":"jo@example.com","message":"Quote please"}`)
	w := doRequest(r, http.MethodPost, "/cms/public/contact", body)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
