package models

import (
	"time"

	"gorm.io/datatypes"
)

// 水印位置
const (
	PositionTopLeft      = "top-left"
	PositionTopRight     = "top-right"
	PositionBottomLeft   = "bottom-left"
	PositionBottomRight  = "bottom-right"
	PositionCenter       = "center"
	PositionTopCenter    = "top-center"
	PositionBottomCenter = "bottom-center"
)

// 发布计划
const (
	ScheduleDaily  = "daily"
	ScheduleWeekly = "weekly"
	ScheduleCustom = "custom"
)

// Channel 频道配置表
type Channel struct {
	ID          int64  `gorm:"primaryKey;column:id" json:"id"`
	Name        string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	URL         string `gorm:"column:url;type:varchar(255)" json:"url"`
	Description string `gorm:"column:description;type:varchar(500)" json:"description"`

	// 品牌素材
	LogoURL           string `gorm:"column:logo_url;type:varchar(255)" json:"logo_url"`
	WatermarkURL      string `gorm:"column:watermark_url;type:varchar(255)" json:"watermark_url"`
	WatermarkPosition string `gorm:"column:watermark_position;type:varchar(20)" json:"watermark_position"`
	WatermarkOpacity  int    `gorm:"column:watermark_opacity;default:100" json:"watermark_opacity"` // 0-100
	WatermarkSize     int    `gorm:"column:watermark_size;default:20" json:"watermark_size"`        // 5-50

	// 发布计划
	Schedule  string `gorm:"column:schedule;type:varchar(10);default:'daily'" json:"schedule"`
	VideosMin int    `gorm:"column:videos_min;default:1" json:"videos_min"` // 0-10
	VideosMax int    `gorm:"column:videos_max;default:1" json:"videos_max"` // 0-10，且 >= videos_min

	// 功能开关
	ChapterIndicators bool `gorm:"column:chapter_indicators;default:0" json:"chapter_indicators"`
	VideoIntro        bool `gorm:"column:video_intro;default:0" json:"video_intro"`
	VideoOutro        bool `gorm:"column:video_outro;default:0" json:"video_outro"`
	IsActive          bool `gorm:"column:is_active;default:1" json:"is_active"`

	// 章节标记样式，chapter_indicators 打开时生效
	ChapterBgColor    string `gorm:"column:chapter_bg_color;type:varchar(20)" json:"chapter_bg_color"`
	ChapterFontColor  string `gorm:"column:chapter_font_color;type:varchar(20)" json:"chapter_font_color"`
	ChapterFontFamily string `gorm:"column:chapter_font_family;type:varchar(50)" json:"chapter_font_family"`

	// 片头素材，video_intro 打开时生效
	VideoIntroURL     string  `gorm:"column:video_intro_url;type:varchar(255)" json:"video_intro_url"`
	IntroDissolveTime float64 `gorm:"column:intro_dissolve_time;default:1" json:"intro_dissolve_time"` // 0-10s
	IntroDuration     float64 `gorm:"column:intro_duration;default:0" json:"intro_duration"`

	// 片尾素材，video_outro 打开时生效
	VideoOutroURL     string  `gorm:"column:video_outro_url;type:varchar(255)" json:"video_outro_url"`
	OutroDissolveTime float64 `gorm:"column:outro_dissolve_time;default:1" json:"outro_dissolve_time"` // 0-10s
	OutroDuration     float64 `gorm:"column:outro_duration;default:0" json:"outro_duration"`

	// 标题样式
	TitleFont    string `gorm:"column:title_font;type:varchar(50)" json:"title_font"`
	TitleColor   string `gorm:"column:title_color;type:varchar(20)" json:"title_color"`
	TitleBgColor string `gorm:"column:title_bg_color;type:varchar(20)" json:"title_bg_color"`

	// 简介生成提示词（含文本模型配置），JSON 存储
	DescriptionPrompt Prompt `gorm:"column:description_prompt;serializer:json" json:"description_prompt"`

	// 关联的钩子/封面模板 ID 集合，提交前去重
	HookIDs      datatypes.JSONSlice[int64] `gorm:"column:hook_ids" json:"hook_ids"`
	ThumbnailIDs datatypes.JSONSlice[int64] `gorm:"column:thumbnail_ids" json:"thumbnail_ids"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (Channel) TableName() string {
	return "channels"
}
