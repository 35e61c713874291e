package db

import "gorm.io/gorm"

// PageTitle 存储页面首屏的标题、徽标文字与副标题。
type PageTitle struct {
	gorm.Model
	Page            string  `gorm:"size:191;not null;uniqueIndex:idx_page_titles_page_locale"`
	Locale          string  `gorm:"size:16;not null;uniqueIndex:idx_page_titles_page_locale"`
	Title           *string `gorm:"type:text"`
	PagePill        *string `gorm:"type:text"`
	SectionSubtitle *string `gorm:"type:text"`
}

func (PageTitle) TableName() string {
	return "page_titles"
}

// HasContent reports whether any field carries text.
func (p *PageTitle) HasContent() bool {
	if p == nil {
		return false
	}
	return nonEmpty(p.Title) || nonEmpty(p.PagePill) || nonEmpty(p.SectionSubtitle)
}
