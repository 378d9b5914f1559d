package content

import (
	"context"
	"errors"

	"agency-cms/internal/domain/cms"
	"agency-cms/internal/domain/settings"

	"gorm.io/gorm"
)

// GormStore backs the resolver with the site's Postgres database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindPublishedPageBySlug(ctx context.Context, slug string) (*cms.Page, error) {
	var page cms.Page
	err := s.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, cms.StatusPublished).
		First(&page).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *GormStore) SectionsForPage(ctx context.Context, pageID string, locale string) ([]cms.Section, error) {
	var sections []cms.Section
	err := s.db.WithContext(ctx).
		Where("page_id = ? AND locale = ?", pageID, locale).
		Order("sort_index ASC, seq ASC").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *GormStore) FindSettingByKey(ctx context.Context, key string) (*settings.SiteSetting, error) {
	var setting settings.SiteSetting
	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
