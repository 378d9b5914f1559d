package pages

import (
	"agency-cms/internal/domain/cms"

	"gorm.io/gorm"
)

func pageWithSectionsQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&cms.Page{}).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_index ASC, seq ASC")
		})
}

func toPageDTO(p cms.Page) PageDTO {
	dto := PageDTO{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		PublishedAt: p.PublishedAt,
		Sections:    make([]SectionDTO, 0, len(p.Sections)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, s := range p.Sections {
		dto.Sections = append(dto.Sections, SectionDTO{
			ID:          s.ID,
			Key:         s.Key,
			Locale:      s.Locale,
			Title:       s.Title,
			Content:     s.Content,
			ContentType: s.ContentType,
			Order:       s.SortIndex,
			Metadata:    s.Metadata,
		})
	}
	return dto
}
