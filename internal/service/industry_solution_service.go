package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sumeshkk123/cloud-sub010/internal/content"
	"github.com/sumeshkk123/cloud-sub010/internal/db"
	"github.com/sumeshkk123/cloud-sub010/internal/locale"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrIndustrySolutionNotFound = errors.New("industry solution not found")
	ErrIndustrySolutionInvalid  = errors.New("industry solution slug and title are required")
)

type IndustrySolutionInput struct {
	Locale      string
	Slug        string
	Title       string
	Description string
	Icon        string
	SortOrder   int
}

// IndustrySolutionService serves the localized industry cards.
type IndustrySolutionService struct {
	db      *gorm.DB
	locales *locale.Set
}

func NewIndustrySolutionService(gdb *gorm.DB, locales *locale.Set) *IndustrySolutionService {
	return &IndustrySolutionService{db: gdb, locales: locales}
}

// List returns the solutions for lang. When lang has none, the default
// locale's rows are returned; the second value is the locale actually served.
func (s *IndustrySolutionService) List(lang string) ([]db.IndustrySolution, string, error) {
	resolved := s.locales.Resolve(lang)
	items, err := s.listExact(resolved)
	if err != nil {
		return nil, resolved, err
	}
	if len(items) > 0 || resolved == s.locales.Default() {
		return items, resolved, nil
	}
	fallback := s.locales.Default()
	items, err = s.listExact(fallback)
	return items, fallback, err
}

func (s *IndustrySolutionService) listExact(lang string) ([]db.IndustrySolution, error) {
	var items []db.IndustrySolution
	if err := s.db.Where("locale = ?", lang).
		Order("sort_order asc").
		Order("slug asc").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list industry solutions: %w", err)
	}
	return items, nil
}

// Upsert creates or replaces the solution keyed by (locale, slug).
func (s *IndustrySolutionService) Upsert(input IndustrySolutionInput) (*db.IndustrySolution, error) {
	if !s.locales.IsSupported(input.Locale) {
		return nil, ErrUnsupportedLocale
	}
	item := db.IndustrySolution{
		Locale:      input.Locale,
		Slug:        NormalizePage(input.Slug),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Icon:        strings.TrimSpace(input.Icon),
		SortOrder:   input.SortOrder,
	}
	if item.Slug == "" || item.Title == "" {
		return nil, ErrIndustrySolutionInvalid
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "locale"}, {Name: "slug"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"title":       item.Title,
			"description": item.Description,
			"icon":        item.Icon,
			"sort_order":  item.SortOrder,
			"updated_at":  time.Now(),
			"deleted_at":  nil,
		}),
	}).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("upsert industry solution %s/%s: %w", item.Locale, item.Slug, err)
	}

	var stored db.IndustrySolution
	if err := s.db.Where("locale = ? AND slug = ?", item.Locale, item.Slug).First(&stored).Error; err != nil {
		return nil, fmt.Errorf("reload industry solution: %w", err)
	}
	return &stored, nil
}

func (s *IndustrySolutionService) Delete(lang, slug string) error {
	result := s.db.Where("locale = ? AND slug = ?", lang, NormalizePage(slug)).Delete(&db.IndustrySolution{})
	if result.Error != nil {
		return fmt.Errorf("delete industry solution: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrIndustrySolutionNotFound
	}
	return nil
}

// Seed inserts inputs whose (locale, slug) key does not exist yet and returns
// how many rows were created. Existing rows are left untouched.
func (s *IndustrySolutionService) Seed(inputs []IndustrySolutionInput) (int, error) {
	created := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, input := range inputs {
			if !s.locales.IsSupported(input.Locale) {
				continue
			}
			item := db.IndustrySolution{
				Locale:      input.Locale,
				Slug:        NormalizePage(input.Slug),
				Title:       strings.TrimSpace(input.Title),
				Description: strings.TrimSpace(input.Description),
				Icon:        strings.TrimSpace(input.Icon),
				SortOrder:   input.SortOrder,
			}
			if item.Slug == "" || item.Title == "" {
				continue
			}
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&item)
			if result.Error != nil {
				return fmt.Errorf("seed industry solution %s/%s: %w", item.Locale, item.Slug, result.Error)
			}
			created += int(result.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// SeedFromCatalog seeds one row per industry and translated locale. The
// default locale always gets a row so List has something to fall back to.
func (s *IndustrySolutionService) SeedFromCatalog(catalog *content.Catalog) (int, error) {
	fallback := s.locales.Default()
	var inputs []IndustrySolutionInput
	for _, industry := range catalog.Industries() {
		for _, lang := range s.locales.Supported() {
			if lang != fallback && !industry.Title.Has(lang) {
				continue
			}
			inputs = append(inputs, IndustrySolutionInput{
				Locale:      lang,
				Slug:        industry.Slug,
				Title:       industry.Title.In(lang, fallback),
				Description: industry.Description.In(lang, fallback),
				Icon:        industry.Icon,
				SortOrder:   industry.SortOrder,
			})
		}
	}
	return s.Seed(inputs)
}
