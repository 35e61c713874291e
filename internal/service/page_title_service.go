package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/sumeshkk123/cloud-sub010/internal/db"
	"github.com/sumeshkk123/cloud-sub010/internal/locale"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPageTitleNotFound = errors.New("page title not found")

type PageTitleInput struct {
	Page            string
	Locale          string
	Title           *string
	PagePill        *string
	SectionSubtitle *string
}

// PageTitleService manages per-locale hero copy records.
type PageTitleService struct {
	db      *gorm.DB
	locales *locale.Set
}

func NewPageTitleService(gdb *gorm.DB, locales *locale.Set) *PageTitleService {
	return &PageTitleService{db: gdb, locales: locales}
}

func (s *PageTitleService) Get(page, lang string) (*db.PageTitle, error) {
	key, err := validateKey(s.locales, page, lang)
	if err != nil {
		return nil, err
	}
	var record db.PageTitle
	if err := s.db.Where("page = ? AND locale = ?", key, lang).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageTitleNotFound
		}
		return nil, fmt.Errorf("load page title: %w", err)
	}
	return &record, nil
}

func (s *PageTitleService) ListByPage(page string) ([]db.PageTitle, error) {
	key := NormalizePage(page)
	if key == "" {
		return nil, ErrPageRequired
	}
	var records []db.PageTitle
	if err := s.db.Where("page = ?", key).Order("locale asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list page titles: %w", err)
	}
	return records, nil
}

func (s *PageTitleService) Upsert(input PageTitleInput) (*db.PageTitle, error) {
	key, err := validateKey(s.locales, input.Page, input.Locale)
	if err != nil {
		return nil, err
	}

	record := db.PageTitle{
		Page:            key,
		Locale:          input.Locale,
		Title:           NormalizeField(input.Title),
		PagePill:        NormalizeField(input.PagePill),
		SectionSubtitle: NormalizeField(input.SectionSubtitle),
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "page"}, {Name: "locale"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"title":            record.Title,
			"page_pill":        record.PagePill,
			"section_subtitle": record.SectionSubtitle,
			"updated_at":       time.Now(),
			"deleted_at":       nil,
		}),
	}).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("upsert page title %s/%s: %w", key, input.Locale, err)
	}

	return s.Get(key, input.Locale)
}

func (s *PageTitleService) Delete(page, lang string) error {
	key, err := validateKey(s.locales, page, lang)
	if err != nil {
		return err
	}
	result := s.db.Where("page = ? AND locale = ?", key, lang).Delete(&db.PageTitle{})
	if result.Error != nil {
		return fmt.Errorf("delete page title: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPageTitleNotFound
	}
	return nil
}
