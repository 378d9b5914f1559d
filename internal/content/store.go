// Package content implements the CMS content-resolution pipeline: the
// locale-aware section lookup with its fallback cascade, theme resolution
// with a guaranteed-complete result, and decoding of JSON-encoded structured
// section fields. Public read paths go through this package so that storage
// failures degrade to defaults instead of breaking page rendering.
package content

import (
	"context"

	"agency-cms/internal/domain/cms"
	"agency-cms/internal/domain/settings"
)

// Store is the persistence surface the resolver needs. The GORM
// implementation lives in store_gorm.go; tests use fakes.
type Store interface {
	// FindPublishedPageBySlug returns (nil, nil) when no published page
	// matches the slug. Draft pages are invisible to this lookup.
	FindPublishedPageBySlug(ctx context.Context, slug string) (*cms.Page, error)

	// SectionsForPage returns the page's sections for one locale, ordered by
	// sort_index ascending with the insertion sequence (seq) as the
	// tie-break.
	SectionsForPage(ctx context.Context, pageID string, locale string) ([]cms.Section, error)
}

// SettingsStore is the persistence surface the theme resolver needs.
type SettingsStore interface {
	// FindSettingByKey returns (nil, nil) when the key has no row.
	FindSettingByKey(ctx context.Context, key string) (*settings.SiteSetting, error)
}
