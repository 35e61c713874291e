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

var ErrMetaDetailNotFound = errors.New("meta detail not found")

// MetaDetailInput is the payload for creating or replacing a MetaDetail.
type MetaDetailInput struct {
	Page        string
	Locale      string
	Title       *string
	Description *string
	Keywords    *string
}

// MetaDetailService manages per-locale SEO meta records.
type MetaDetailService struct {
	db      *gorm.DB
	locales *locale.Set
}

// NewMetaDetailService returns a MetaDetailService validating locales against the given set.
func NewMetaDetailService(gdb *gorm.DB, locales *locale.Set) *MetaDetailService {
	return &MetaDetailService{db: gdb, locales: locales}
}

// Get fetches the record for page and locale.
func (s *MetaDetailService) Get(page, lang string) (*db.MetaDetail, error) {
	key, err := validateKey(s.locales, page, lang)
	if err != nil {
		return nil, err
	}
	var record db.MetaDetail
	if err := s.db.Where("page = ? AND locale = ?", key, lang).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMetaDetailNotFound
		}
		return nil, fmt.Errorf("load meta detail: %w", err)
	}
	return &record, nil
}

// ListByPage returns every locale's record for page.
func (s *MetaDetailService) ListByPage(page string) ([]db.MetaDetail, error) {
	key := NormalizePage(page)
	if key == "" {
		return nil, ErrPageRequired
	}
	var records []db.MetaDetail
	if err := s.db.Where("page = ?", key).Order("locale asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list meta details: %w", err)
	}
	return records, nil
}

// Upsert creates or replaces the record for the input's page and locale.
// Last write wins.
func (s *MetaDetailService) Upsert(input MetaDetailInput) (*db.MetaDetail, error) {
	key, err := validateKey(s.locales, input.Page, input.Locale)
	if err != nil {
		return nil, err
	}

	record := db.MetaDetail{
		Page:        key,
		Locale:      input.Locale,
		Title:       NormalizeField(input.Title),
		Description: NormalizeField(input.Description),
		Keywords:    NormalizeField(input.Keywords),
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "page"}, {Name: "locale"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"title":       record.Title,
			"description": record.Description,
			"keywords":    record.Keywords,
			"updated_at":  time.Now(),
			"deleted_at":  nil,
		}),
	}).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("upsert meta detail %s/%s: %w", key, input.Locale, err)
	}

	return s.Get(key, input.Locale)
}

// Delete removes the record for page and locale.
func (s *MetaDetailService) Delete(page, lang string) error {
	key, err := validateKey(s.locales, page, lang)
	if err != nil {
		return err
	}
	result := s.db.Where("page = ? AND locale = ?", key, lang).Delete(&db.MetaDetail{})
	if result.Error != nil {
		return fmt.Errorf("delete meta detail: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMetaDetailNotFound
	}
	return nil
}
