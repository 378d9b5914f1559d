package cms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "en"},
		{"en", "en"},
		{"AR", "ar"},
		{" ru ", "ru"},
		{"xx", "xx"}, // unknown codes pass through and resolve via fallback
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLocale(tt.in), "input %q", tt.in)
	}
}

func TestIsSupportedLocale(t *testing.T) {
	assert.True(t, IsSupportedLocale("en"))
	assert.True(t, IsSupportedLocale("ar"))
	assert.True(t, IsSupportedLocale("ru"))
	assert.False(t, IsSupportedLocale("de"))
	assert.False(t, IsSupportedLocale(""))
}

func TestSupportedLocalesIsACopy(t *testing.T) {
	locales := SupportedLocales()
	locales[0] = "zz"
	assert.True(t, IsSupportedLocale("en"))
}
