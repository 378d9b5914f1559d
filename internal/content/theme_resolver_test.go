package content

import (
	"context"
	"errors"
	"testing"

	"agency-cms/internal/domain/settings"
	"agency-cms/internal/domain/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsStore struct {
	setting *settings.SiteSetting
	err     error
}

func (f *fakeSettingsStore) FindSettingByKey(ctx context.Context, key string) (*settings.SiteSetting, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.setting, nil
}

func assertComplete(t *testing.T, got theme.Theme) {
	t.Helper()
	require.NoError(t, theme.Validate(got))
}

func TestResolveTheme_NoRowServesDefault(t *testing.T) {
	r := NewThemeResolver(&fakeSettingsStore{})

	got := r.Resolve(context.Background())

	assert.Equal(t, theme.Default(), got)
	assertComplete(t, got)
}

func TestResolveTheme_ValidRowServedVerbatim(t *testing.T) {
	stored := theme.Default()
	stored.Colors.Primary = "#123456"
	stored.Fonts.Primary = "Cairo"

	raw := `{"colors":{"primary":"#123456","primaryDark":"#072a66","accent":"#f2a900","accentDark":"#c98b00","neutralDark":"#1f2933","neutralLight":"#f5f7fa","beige":"#ede4d3"},"fonts":{"primary":"Cairo","secondary":"Merriweather"}}`
	r := NewThemeResolver(&fakeSettingsStore{
		setting: &settings.SiteSetting{Key: settings.KeyTheme, Value: raw, Type: settings.TypeJSON},
	})

	got := r.Resolve(context.Background())

	assert.Equal(t, stored, got)
	assertComplete(t, got)
}

func TestResolveTheme_CorruptJSONServesDefault(t *testing.T) {
	r := NewThemeResolver(&fakeSettingsStore{
		setting: &settings.SiteSetting{Key: settings.KeyTheme, Value: `{not json`, Type: settings.TypeJSON},
	})

	got := r.Resolve(context.Background())

	assert.Equal(t, theme.Default(), got)
	assertComplete(t, got)
}

func TestResolveTheme_IncompleteStoredThemeServesDefault(t *testing.T) {
	// valid JSON that is not a complete theme (e.g. written before the
	// write-side schema check, or through a raw DB edit) must not surface
	cases := []string{`{}`, `{"colors":{"primary":"#123456"}}`}

	for _, raw := range cases {
		r := NewThemeResolver(&fakeSettingsStore{
			setting: &settings.SiteSetting{Key: settings.KeyTheme, Value: raw, Type: settings.TypeJSON},
		})

		got := r.Resolve(context.Background())

		assert.Equal(t, theme.Default(), got, "stored value %s", raw)
		assertComplete(t, got)
	}
}

func TestResolveTheme_StoreFailureServesDefault(t *testing.T) {
	r := NewThemeResolver(&fakeSettingsStore{err: errors.New("connection refused")})

	got := r.Resolve(context.Background())

	assert.Equal(t, theme.Default(), got)
	assertComplete(t, got)
}
