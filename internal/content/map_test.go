package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_Get(t *testing.T) {
	m := Map{"hero-heading": "Welcome"}

	v, ok := m.Get("hero-heading")
	assert.True(t, ok)
	assert.Equal(t, "Welcome", v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestMap_GetOr(t *testing.T) {
	m := Map{"hero-heading": "Welcome"}

	assert.Equal(t, "Welcome", m.GetOr("hero-heading", "fallback"))
	assert.Equal(t, "fallback", m.GetOr("missing", "fallback"))
}

func TestMap_NilMapDegrades(t *testing.T) {
	var m Map

	_, ok := m.Get("anything")
	assert.False(t, ok)
	assert.Equal(t, "fallback", m.GetOr("anything", "fallback"))
}

func TestMap_EmptyContentIsPresent(t *testing.T) {
	// an editor may intentionally blank a section: present-but-empty must not
	// fall through to the component default
	m := Map{"hero-sub": ""}

	v, ok := m.Get("hero-sub")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, "", m.GetOr("hero-sub", "fallback"))
}
