package models

import (
	"time"
)

// 钩子剪辑节奏
const (
	EditSpeedSlow   = "slow"
	EditSpeedMedium = "medium"
	EditSpeedFast   = "fast"
)

// HookTemplate 钩子模板表（视频开头抓注意力的片段）
type HookTemplate struct {
	ID        int64  `gorm:"primaryKey;column:id" json:"id"`
	Name      string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Prompt    Prompt `gorm:"column:prompt;serializer:json" json:"prompt"`
	Duration  int    `gorm:"column:duration;default:10" json:"duration"` // 5-30s
	EditSpeed string `gorm:"column:edit_speed;type:varchar(10);default:'medium'" json:"edit_speed"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (HookTemplate) TableName() string {
	return "hook_templates"
}
