package types

import (
	"Reelgen/models"
)

// SaveVideoTemplateReq 创建/编辑视频模板请求
type SaveVideoTemplateReq struct {
	Name string `json:"name"`
	Type string `json:"type"`

	HookPrompt         models.Prompt `json:"hook_prompt"`
	StoryOutlinePrompt models.Prompt `json:"story_outline_prompt"`
	ImagePrompt        string        `json:"image_prompt"`

	ImageModel         string   `json:"image_model"`
	FallbackImageModel string   `json:"fallback_image_model"`
	AudioModel         string   `json:"audio_model"`
	AudioVoices        []string `json:"audio_voices"`
	AudioPauseGap      int      `json:"audio_pause_gap"`

	BgMusicPrompt string `json:"bg_music_prompt"`
	BgMusicVolume int    `json:"bg_music_volume"`

	Effects  models.VideoEffects    `json:"effects"`
	Captions models.CaptionSettings `json:"captions"`

	TransitionStyle    string  `json:"transition_style"`
	TransitionDuration float64 `json:"transition_duration"`
}

// SaveHookTemplateReq 创建/编辑钩子模板请求
type SaveHookTemplateReq struct {
	Name      string        `json:"name"`
	Prompt    models.Prompt `json:"prompt"`
	Duration  int           `json:"duration"`
	EditSpeed string        `json:"edit_speed"`
}

// SaveThumbnailTemplateReq 创建/编辑封面模板请求
type SaveThumbnailTemplateReq struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	Prompt           string `json:"prompt"`
	Model            string `json:"model"`
	FallbackModel    string `json:"fallback_model"`
	FallbackStrategy string `json:"fallback_strategy"`
}

// CreateTemplateResp 创建模板响应，带对外短码
type CreateTemplateResp struct {
	ID         int64  `json:"id"`
	PublicCode string `json:"public_code"`
}

// VideoTemplateInfo 视频模板详情
type VideoTemplateInfo struct {
	models.VideoTemplate
	PublicCode string `json:"public_code"`
}

// HookTemplateInfo 钩子模板详情
type HookTemplateInfo struct {
	models.HookTemplate
	PublicCode string `json:"public_code"`
}

// ThumbnailTemplateInfo 封面模板详情
type ThumbnailTemplateInfo struct {
	models.ThumbnailTemplate
	PublicCode string `json:"public_code"`
}
