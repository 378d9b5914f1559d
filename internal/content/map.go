package content

// Map is a page's resolved section content, keyed by section key. It is
// produced once at the render boundary and passed explicitly down the render
// path; components read individual keys with their own fallback strings.
//
// A nil Map is valid and behaves as fully absent, so wiring CMS content into
// a page stays optional: pages without a resolved map render entirely from
// component defaults.
type Map map[string]string

// Get returns the content for key. ok is false when the key is absent or the
// map itself is absent.
func (m Map) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// GetOr returns the content for key, or fallback when the key is absent.
func (m Map) GetOr(key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}
