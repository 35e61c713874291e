package db

import "gorm.io/gorm"

// IndustrySolution is a localized card in the "industries we serve" section.
type IndustrySolution struct {
	gorm.Model
	Locale      string `gorm:"size:16;not null;uniqueIndex:idx_industry_solutions_locale_slug"`
	Slug        string `gorm:"size:191;not null;uniqueIndex:idx_industry_solutions_locale_slug"`
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Icon        string
	SortOrder   int `gorm:"not null;default:0"`
}

func (IndustrySolution) TableName() string {
	return "industry_solutions"
}
