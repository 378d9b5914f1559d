package content

import (
	"context"
	"log"

	"agency-cms/internal/domain/cms"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Resolver produces the best-available content for a page, applying the
// locale fallback cascade: requested locale → primary locale → caller's own
// hardcoded default. It never returns an error to the render path; storage
// failures are logged and resolve to empty content.
type Resolver struct {
	store Store
	cache *lru.Cache[string, Map]
}

// NewResolver creates a resolver with a bounded content cache. cacheSize <= 0
// disables caching entirely.
func NewResolver(store Store, cacheSize int) *Resolver {
	r := &Resolver{store: store}
	if cacheSize > 0 {
		cache, err := lru.New[string, Map](cacheSize)
		if err == nil {
			r.cache = cache
		}
	}
	return r
}

func cacheKey(slug, locale string) string {
	return slug + "|" + locale
}

// Sections returns the key→content map for a published page in the given
// locale. A missing or draft page, and any storage failure, yield an empty
// map: "no CMS data" is a normal condition and callers fall back to their own
// defaults.
func (r *Resolver) Sections(ctx context.Context, slug, locale string) Map {
	locale = cms.NormalizeLocale(locale)

	// only supported locales are cached: Invalidate evicts exactly that set,
	// so an arbitrary requested code must not create an unevictable entry
	cacheable := r.cache != nil && cms.IsSupportedLocale(locale)

	if cacheable {
		if cached, ok := r.cache.Get(cacheKey(slug, locale)); ok {
			return cached
		}
	}

	sections := r.fetchSections(ctx, slug, locale)

	out := make(Map, len(sections))
	for _, s := range sections {
		// sections arrive ordered, so on a duplicate key the later-ordered
		// section wins
		out[s.Key] = s.Content
	}

	if cacheable {
		r.cache.Add(cacheKey(slug, locale), out)
	}
	return out
}

// Section returns the content of a single section, or ok=false when no
// section matches at any fallback level. The fallback here is per key, not
// per set: a partially translated page may carry some sections in the
// requested locale but not this one, and the primary-locale section must
// still be served.
func (r *Resolver) Section(ctx context.Context, slug, key, locale string) (string, bool) {
	locale = cms.NormalizeLocale(locale)

	page, err := r.store.FindPublishedPageBySlug(ctx, slug)
	if err != nil {
		log.Printf("content: page lookup failed for slug %q: %v", slug, err)
		return "", false
	}
	if page == nil {
		return "", false
	}

	sections, err := r.store.SectionsForPage(ctx, page.ID, locale)
	if err != nil {
		log.Printf("content: section lookup failed for slug %q locale %q: %v", slug, locale, err)
		return "", false
	}
	if v, ok := findKey(sections, key); ok {
		return v, true
	}

	if locale != cms.PrimaryLocale {
		sections, err = r.store.SectionsForPage(ctx, page.ID, cms.PrimaryLocale)
		if err != nil {
			log.Printf("content: section lookup failed for slug %q locale %q: %v", slug, cms.PrimaryLocale, err)
			return "", false
		}
		return findKey(sections, key)
	}
	return "", false
}

// findKey scans ordered sections for key; on duplicates the later-ordered
// one wins, matching the map semantics of Sections.
func findKey(sections []cms.Section, key string) (string, bool) {
	content, found := "", false
	for _, s := range sections {
		if s.Key == key {
			content, found = s.Content, true
		}
	}
	return content, found
}

// SectionList returns the ordered sections for a published page with the
// locale fallback applied, for callers that need full section records rather
// than the flat map. ok=false means no published page matched the slug.
func (r *Resolver) SectionList(ctx context.Context, slug, locale string) (*cms.Page, []cms.Section, bool) {
	locale = cms.NormalizeLocale(locale)

	page, err := r.store.FindPublishedPageBySlug(ctx, slug)
	if err != nil {
		log.Printf("content: page lookup failed for slug %q: %v", slug, err)
		return nil, nil, false
	}
	if page == nil {
		return nil, nil, false
	}

	sections, err := r.sectionsWithFallback(ctx, page.ID, locale)
	if err != nil {
		log.Printf("content: section lookup failed for slug %q locale %q: %v", slug, locale, err)
		return page, nil, true
	}
	return page, sections, true
}

// Invalidate evicts all cached locales for a slug. Page write handlers call
// this after every save, publish, or delete.
func (r *Resolver) Invalidate(slug string) {
	if r.cache == nil {
		return
	}
	for _, locale := range cms.SupportedLocales() {
		r.cache.Remove(cacheKey(slug, locale))
	}
}

func (r *Resolver) fetchSections(ctx context.Context, slug, locale string) []cms.Section {
	page, err := r.store.FindPublishedPageBySlug(ctx, slug)
	if err != nil {
		log.Printf("content: page lookup failed for slug %q: %v", slug, err)
		return nil
	}
	if page == nil {
		return nil
	}

	sections, err := r.sectionsWithFallback(ctx, page.ID, locale)
	if err != nil {
		log.Printf("content: section lookup failed for slug %q locale %q: %v", slug, locale, err)
		return nil
	}
	return sections
}

func (r *Resolver) sectionsWithFallback(ctx context.Context, pageID, locale string) ([]cms.Section, error) {
	sections, err := r.store.SectionsForPage(ctx, pageID, locale)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 && locale != cms.PrimaryLocale {
		return r.store.SectionsForPage(ctx, pageID, cms.PrimaryLocale)
	}
	return sections, nil
}
