package db

import "gorm.io/gorm"

// MetaDetail 存储某个页面在某个语言下的 SEO 元信息。空值表示未设置。
type MetaDetail struct {
	gorm.Model
	Page        string  `gorm:"size:191;not null;uniqueIndex:idx_meta_details_page_locale"`
	Locale      string  `gorm:"size:16;not null;uniqueIndex:idx_meta_details_page_locale"`
	Title       *string `gorm:"type:text"`
	Description *string `gorm:"type:text"`
	Keywords    *string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (MetaDetail) TableName() string {
	return "meta_details"
}

// HasContent reports whether any field carries text.
func (m *MetaDetail) HasContent() bool {
	if m == nil {
		return false
	}
	return nonEmpty(m.Title) || nonEmpty(m.Description) || nonEmpty(m.Keywords)
}

func nonEmpty(value *string) bool {
	return value != nil && *value != ""
}
