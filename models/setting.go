package models

import (
	"time"
)

// 设置项的值类型
const (
	SettingKindString     = "string"
	SettingKindStringList = "string_list"
)

// KeyModelCatalog 已启用模型目录，值为 JSON 数组（去重、按加入顺序）
const KeyModelCatalog = "model_catalog"

// Setting 全局设置表。string 类型存纯文本（API Key 落库前加密），
// string_list 类型存 JSON 数组文本
type Setting struct {
	Key       string    `gorm:"primaryKey;column:key;type:varchar(100)" json:"key"`
	Kind      string    `gorm:"column:kind;type:varchar(20);not null;default:'string'" json:"kind"`
	Value     string    `gorm:"column:value;type:text" json:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (Setting) TableName() string {
	return "settings"
}
