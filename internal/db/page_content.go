package db

import "gorm.io/gorm"

// PageContent 保存单个 wiki 页面的原始标记文本。
type PageContent struct {
	gorm.Model
	Page    string `gorm:"size:255;uniqueIndex;not null"`
	Content string `gorm:"type:text"`
}

// TableName keeps the table name used by earlier deployments.
func (PageContent) TableName() string {
	return "page_content"
}
