package types

import (
	"Reelgen/models"
)

// SaveChannelReq 创建/编辑频道请求，创建和编辑共用同一张表单
type SaveChannelReq struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`

	LogoURL           string `json:"logo_url"`
	WatermarkURL      string `json:"watermark_url"`
	WatermarkPosition string `json:"watermark_position"`
	WatermarkOpacity  int    `json:"watermark_opacity"`
	WatermarkSize     int    `json:"watermark_size"`

	Schedule  string `json:"schedule"`
	VideosMin int    `json:"videos_min"`
	VideosMax int    `json:"videos_max"`

	ChapterIndicators bool `json:"chapter_indicators"`
	VideoIntro        bool `json:"video_intro"`
	VideoOutro        bool `json:"video_outro"`
	IsActive          bool `json:"is_active"`

	ChapterBgColor    string `json:"chapter_bg_color"`
	ChapterFontColor  string `json:"chapter_font_color"`
	ChapterFontFamily string `json:"chapter_font_family"`

	VideoIntroURL     string  `json:"video_intro_url"`
	IntroDissolveTime float64 `json:"intro_dissolve_time"`
	IntroDuration     float64 `json:"intro_duration"`

	VideoOutroURL     string  `json:"video_outro_url"`
	OutroDissolveTime float64 `json:"outro_dissolve_time"`
	OutroDuration     float64 `json:"outro_duration"`

	TitleFont    string `json:"title_font"`
	TitleColor   string `json:"title_color"`
	TitleBgColor string `json:"title_bg_color"`

	DescriptionPrompt models.Prompt `json:"description_prompt"`

	HookIDs      []int64 `json:"hook_ids"`
	ThumbnailIDs []int64 `json:"thumbnail_ids"`
}

// ListChannelsReq 频道列表请求
type ListChannelsReq struct {
	// OnlyActive 只看启用中的频道
	OnlyActive bool `json:"only_active" form:"only_active"`
	Page       int  `json:"page" form:"page"`
	PageSize   int  `json:"page_size" form:"page_size"`
}

// ChannelInfo 频道详情 + 对外短码
type ChannelInfo struct {
	models.Channel
	PublicCode string `json:"public_code"`
}

// ListChannelsResp 频道列表响应
type ListChannelsResp struct {
	Channels []*ChannelInfo `json:"channels"`
	Total    int64          `json:"total"`
}

// CreateChannelResp 创建频道响应
type CreateChannelResp struct {
	ChannelID int64 `json:"channel_id"`
}
