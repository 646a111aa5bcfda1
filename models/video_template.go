package models

import (
	"time"

	"gorm.io/datatypes"
)

// 视频模板类型
const (
	VideoTypeStory       = "story"
	VideoTypeNews        = "news"
	VideoTypeEducational = "educational"
)

// VideoEffects 视频特效配置
type VideoEffects struct {
	KenBurns          bool    `json:"ken_burns"`
	KenBurnsSpeed     float64 `json:"ken_burns_speed"`
	KenBurnsDirection string  `json:"ken_burns_direction"`
	FilmGrain         bool    `json:"film_grain"`
	Fog               bool    `json:"fog"`
}

// CaptionSettings 字幕配置
type CaptionSettings struct {
	Enabled  bool   `json:"enabled"`
	Font     string `json:"font"`
	Color    string `json:"color"`
	Position string `json:"position"`
}

// VideoTemplate 视频模板表
type VideoTemplate struct {
	ID   int64  `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Type string `gorm:"column:type;type:varchar(20);not null" json:"type"`

	// 生成提示词，钩子/故事大纲走文本模型（含模型配置），图片提示词走图片模型
	HookPrompt         Prompt `gorm:"column:hook_prompt;serializer:json" json:"hook_prompt"`
	StoryOutlinePrompt Prompt `gorm:"column:story_outline_prompt;serializer:json" json:"story_outline_prompt"`
	ImagePrompt        string `gorm:"column:image_prompt;type:text" json:"image_prompt"`

	// 图片/音频模型选择
	ImageModel         string                      `gorm:"column:image_model;type:varchar(100)" json:"image_model"`
	FallbackImageModel string                      `gorm:"column:fallback_image_model;type:varchar(100)" json:"fallback_image_model"`
	AudioModel         string                      `gorm:"column:audio_model;type:varchar(100)" json:"audio_model"`
	AudioVoices        datatypes.JSONSlice[string] `gorm:"column:audio_voices" json:"audio_voices"`
	AudioPauseGap      int                         `gorm:"column:audio_pause_gap;default:500" json:"audio_pause_gap"` // 100-2000ms

	// 背景音乐
	BgMusicPrompt string `gorm:"column:bg_music_prompt;type:text" json:"bg_music_prompt"`
	BgMusicVolume int    `gorm:"column:bg_music_volume;default:30" json:"bg_music_volume"` // 0-100

	Effects  VideoEffects    `gorm:"column:effects;serializer:json" json:"effects"`
	Captions CaptionSettings `gorm:"column:captions;serializer:json" json:"captions"`

	// 转场
	TransitionStyle    string  `gorm:"column:transition_style;type:varchar(30)" json:"transition_style"`
	TransitionDuration float64 `gorm:"column:transition_duration;default:1" json:"transition_duration"` // 0.5-5s

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (VideoTemplate) TableName() string {
	return "video_templates"
}
