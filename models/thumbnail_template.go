package models

import (
	"time"
)

// 封面来源类型
const (
	ThumbnailFirstImage  = "first-image"
	ThumbnailLastImage   = "last-image"
	ThumbnailRandomImage = "random-image"
	ThumbnailAIGenerated = "ai-generated"
)

// ThumbnailTemplate 封面模板表。
// prompt/model/fallback_model 只在 type = ai-generated 时生效
type ThumbnailTemplate struct {
	ID   int64  `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Type string `gorm:"column:type;type:varchar(20);not null;default:'first-image'" json:"type"`

	Prompt           string `gorm:"column:prompt;type:text" json:"prompt"`
	Model            string `gorm:"column:model;type:varchar(100)" json:"model"`
	FallbackModel    string `gorm:"column:fallback_model;type:varchar(100)" json:"fallback_model"`
	FallbackStrategy string `gorm:"column:fallback_strategy;type:varchar(20);default:'first-image'" json:"fallback_strategy"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (ThumbnailTemplate) TableName() string {
	return "thumbnail_templates"
}
