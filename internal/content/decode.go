package content

import (
	"encoding/json"
	"log"
)

// Decode parses a JSON-encoded structured section field (service lists,
// testimonials, feature grids) into T. An empty raw value or a parse failure
// returns the caller-supplied fallback unchanged: a malformed edit by a CMS
// user must never break the public page. Parsed values are not validated
// against T's shape; callers render defensively.
func Decode[T any](raw string, fallback T) T {
	if raw == "" {
		return fallback
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Printf("content: structured field is not valid JSON, using fallback: %v", err)
		return fallback
	}
	return out
}
