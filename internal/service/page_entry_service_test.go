package service

import "testing"

func TestPageEntryListJoinsByKey(t *testing.T) {
	gdb := setupServiceTestDB(t)
	locales := testLocales()
	metas := NewMetaDetailService(gdb, locales)
	titles := NewPageTitleService(gdb, locales)
	entries := NewPageEntryService(gdb)

	mustMeta := func(page, lang string) {
		if _, err := metas.Upsert(MetaDetailInput{Page: page, Locale: lang, Title: strPtr(page + " " + lang)}); err != nil {
			t.Fatalf("seed meta %s/%s: %v", page, lang, err)
		}
	}
	mustTitle := func(page, lang string) {
		if _, err := titles.Upsert(PageTitleInput{Page: page, Locale: lang, Title: strPtr(page)}); err != nil {
			t.Fatalf("seed title %s/%s: %v", page, lang, err)
		}
	}

	mustMeta("pricing", "en")
	mustTitle("pricing", "en")
	mustMeta("pricing", "es")
	mustTitle("home", "de")

	result, err := entries.List(PageEntryFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Total != 3 || len(result.Entries) != 3 {
		t.Fatalf("expected 3 joined rows, got total=%d rows=%d", result.Total, len(result.Entries))
	}

	first := result.Entries[0]
	if first.Page != "home" || first.Locale != "de" || first.Meta != nil || first.Title == nil {
		t.Fatalf("unexpected first row: %#v", first)
	}
	second := result.Entries[1]
	if second.Page != "pricing" || second.Locale != "en" || second.Meta == nil || second.Title == nil {
		t.Fatalf("expected pricing/en to join both records: %#v", second)
	}
	third := result.Entries[2]
	if third.Locale != "es" || third.Meta == nil || third.Title != nil {
		t.Fatalf("expected pricing/es to carry only meta: %#v", third)
	}
}

func TestPageEntryListPaginatesAndFilters(t *testing.T) {
	gdb := setupServiceTestDB(t)
	metas := NewMetaDetailService(gdb, testLocales())
	entries := NewPageEntryService(gdb)

	for _, page := range []string{"a", "b", "c", "d", "e"} {
		if _, err := metas.Upsert(MetaDetailInput{Page: page, Locale: "en", Title: strPtr(page)}); err != nil {
			t.Fatalf("seed %s: %v", page, err)
		}
	}
	if _, err := metas.Upsert(MetaDetailInput{Page: "a", Locale: "es", Title: strPtr("a")}); err != nil {
		t.Fatalf("seed a/es: %v", err)
	}

	result, err := entries.List(PageEntryFilter{Page: 2, PerPage: 4})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Total != 6 || result.TotalPages != 2 || len(result.Entries) != 2 {
		t.Fatalf("unexpected pagination: total=%d pages=%d rows=%d", result.Total, result.TotalPages, len(result.Entries))
	}

	filtered, err := entries.List(PageEntryFilter{Locale: "es"})
	if err != nil {
		t.Fatalf("List with locale failed: %v", err)
	}
	if filtered.Total != 1 || filtered.Entries[0].Page != "a" {
		t.Fatalf("unexpected locale filter result: %#v", filtered.Entries)
	}

	searched, err := entries.List(PageEntryFilter{Search: "C"})
	if err != nil {
		t.Fatalf("List with search failed: %v", err)
	}
	if searched.Total != 1 || searched.Entries[0].Page != "c" {
		t.Fatalf("unexpected search result: %#v", searched.Entries)
	}
}

func TestPageEntryListEmpty(t *testing.T) {
	gdb := setupServiceTestDB(t)
	result, err := NewPageEntryService(gdb).List(PageEntryFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Total != 0 || result.TotalPages != 1 || len(result.Entries) != 0 {
		t.Fatalf("unexpected empty result: %#v", result)
	}
}
