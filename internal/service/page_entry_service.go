package service

import (
	"fmt"
	"strings"

	"github.com/sumeshkk123/cloud-sub010/internal/db"
	"gorm.io/gorm"
)

// PageEntry joins the MetaDetail and PageTitle stored under one (page, locale) key.
type PageEntry struct {
	Page   string
	Locale string
	Meta   *db.MetaDetail
	Title  *db.PageTitle
}

// PageEntryFilter narrows the admin table.
type PageEntryFilter struct {
	Search  string
	Locale  string
	Page    int
	PerPage int
}

// PageEntryListResult aggregates a page of joined rows and pagination counters.
type PageEntryListResult struct {
	Entries    []PageEntry
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

// PageEntryService lists meta and title records side by side for the admin table.
type PageEntryService struct {
	db *gorm.DB
}

func NewPageEntryService(gdb *gorm.DB) *PageEntryService {
	return &PageEntryService{db: gdb}
}

type entryKey struct {
	Page   string
	Locale string
}

const entryKeysQuery = `SELECT page, locale FROM meta_details WHERE deleted_at IS NULL
UNION
SELECT page, locale FROM page_titles WHERE deleted_at IS NULL`

// List returns the joined rows ordered by page then locale.
func (s *PageEntryService) List(filter PageEntryFilter) (*PageEntryListResult, error) {
	result := &PageEntryListResult{Page: filter.Page, PerPage: filter.PerPage}
	if result.Page <= 0 {
		result.Page = 1
	}
	if result.PerPage <= 0 {
		result.PerPage = 20
	}

	where, args := entryFilterClause(filter)

	countSQL := "SELECT COUNT(*) FROM (" + entryKeysQuery + ") AS entry_keys" + where
	if err := s.db.Raw(countSQL, args...).Scan(&result.Total).Error; err != nil {
		return nil, fmt.Errorf("count page entries: %w", err)
	}

	if result.Total == 0 {
		result.TotalPages = 1
	} else {
		result.TotalPages = int((result.Total + int64(result.PerPage) - 1) / int64(result.PerPage))
	}

	offset := (result.Page - 1) * result.PerPage
	keysSQL := "SELECT page, locale FROM (" + entryKeysQuery + ") AS entry_keys" + where +
		" ORDER BY page ASC, locale ASC LIMIT ? OFFSET ?"
	var keys []entryKey
	if err := s.db.Raw(keysSQL, append(args, result.PerPage, offset)...).Scan(&keys).Error; err != nil {
		return nil, fmt.Errorf("list page entry keys: %w", err)
	}

	result.Entries = make([]PageEntry, 0, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	pages := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := seen[key.Page]; ok {
			continue
		}
		seen[key.Page] = struct{}{}
		pages = append(pages, key.Page)
	}

	var metas []db.MetaDetail
	if err := s.db.Where("page IN ?", pages).Find(&metas).Error; err != nil {
		return nil, fmt.Errorf("load meta details: %w", err)
	}
	var titles []db.PageTitle
	if err := s.db.Where("page IN ?", pages).Find(&titles).Error; err != nil {
		return nil, fmt.Errorf("load page titles: %w", err)
	}

	metaByKey := make(map[entryKey]*db.MetaDetail, len(metas))
	for i := range metas {
		metaByKey[entryKey{Page: metas[i].Page, Locale: metas[i].Locale}] = &metas[i]
	}
	titleByKey := make(map[entryKey]*db.PageTitle, len(titles))
	for i := range titles {
		titleByKey[entryKey{Page: titles[i].Page, Locale: titles[i].Locale}] = &titles[i]
	}

	for _, key := range keys {
		result.Entries = append(result.Entries, PageEntry{
			Page:   key.Page,
			Locale: key.Locale,
			Meta:   metaByKey[key],
			Title:  titleByKey[key],
		})
	}
	return result, nil
}

func entryFilterClause(filter PageEntryFilter) (string, []interface{}) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		conditions = append(conditions, "page LIKE ?")
		args = append(args, "%"+search+"%")
	}
	if lang := strings.TrimSpace(filter.Locale); lang != "" {
		conditions = append(conditions, "locale = ?")
		args = append(args, lang)
	}
	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
