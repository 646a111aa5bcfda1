package validation

import (
	"Reelgen/models"
	"Reelgen/pkg/modelfamily"
)

// FieldSet 当前生效（可见、参与校验、允许持久化）的字段集合
type FieldSet map[string]struct{}

func (s FieldSet) add(names ...string) {
	for _, n := range names {
		s[n] = struct{}{}
	}
}

// Has 字段是否生效
func (s FieldSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// ChannelActiveFields 计算频道当前生效的字段集合。
// 纯函数，每次字段变化后重算，不做任何缓存
func ChannelActiveFields(ch *models.Channel) FieldSet {
	s := FieldSet{}
	s.add(
		"name", "url", "description", "logo_url", "watermark_url",
		"schedule", "videos_min", "videos_max",
		"chapter_indicators", "video_intro", "video_outro", "is_active",
		"title_font", "title_color", "title_bg_color",
		"description_prompt.text",
		"hook_ids", "thumbnail_ids",
	)

	// 水印细节只在设置了水印图时生效
	if ch.WatermarkURL != "" {
		s.add("watermark_position", "watermark_opacity", "watermark_size")
	}
	if ch.ChapterIndicators {
		s.add("chapter_bg_color", "chapter_font_color", "chapter_font_family")
	}
	if ch.VideoIntro {
		s.add("video_intro_url", "intro_dissolve_time", "intro_duration")
	}
	if ch.VideoOutro {
		s.add("video_outro_url", "outro_dissolve_time", "outro_duration")
	}

	modelConfigActive("description_prompt.model", ch.DescriptionPrompt.Model, s)
	return s
}

// VideoTemplateActiveFields 计算视频模板当前生效的字段集合
func VideoTemplateActiveFields(vt *models.VideoTemplate) FieldSet {
	s := FieldSet{}
	s.add(
		"name", "type",
		"hook_prompt.text", "story_outline_prompt.text", "image_prompt",
		"image_model", "fallback_image_model",
		"audio_model", "audio_voices", "audio_pause_gap",
		"bg_music_prompt", "bg_music_volume",
		"effects.ken_burns", "effects.film_grain", "effects.fog",
		"captions.enabled",
		"transition_style", "transition_duration",
	)

	if vt.Effects.KenBurns {
		s.add("effects.ken_burns_speed", "effects.ken_burns_direction")
	}
	if vt.Captions.Enabled {
		s.add("captions.font", "captions.color", "captions.position")
	}

	modelConfigActive("hook_prompt.model", vt.HookPrompt.Model, s)
	modelConfigActive("story_outline_prompt.model", vt.StoryOutlinePrompt.Model, s)
	return s
}

// HookTemplateActiveFields 计算钩子模板当前生效的字段集合
func HookTemplateActiveFields(ht *models.HookTemplate) FieldSet {
	s := FieldSet{}
	s.add("name", "prompt.text", "duration", "edit_speed")
	modelConfigActive("prompt.model", ht.Prompt.Model, s)
	return s
}

// ThumbnailTemplateActiveFields 计算封面模板当前生效的字段集合。
// prompt/model/fallback 组只在 ai-generated 类型下生效
func ThumbnailTemplateActiveFields(tt *models.ThumbnailTemplate) FieldSet {
	s := FieldSet{}
	s.add("name", "type")
	if tt.Type == models.ThumbnailAIGenerated {
		s.add("prompt", "model", "fallback_model", "fallback_strategy")
	}
	return s
}

// modelConfigActive 按归族结果点亮对应参数族的字段
func modelConfigActive(prefix string, cfg modelfamily.Config, s FieldSet) {
	s.add(prefix + ".model")
	if modelfamily.FamilyOf(cfg.Model) == modelfamily.FamilyReasoning {
		s.add(prefix + ".effort")
		return
	}
	s.add(
		prefix+".max_tokens",
		prefix+".temperature",
		prefix+".top_p",
		prefix+".frequency_penalty",
	)
}

// StripChannel 清空未生效字段的存量值，保证过期值不被持久化
func StripChannel(ch *models.Channel, active FieldSet) {
	if !active.Has("watermark_position") {
		ch.WatermarkPosition = ""
		ch.WatermarkOpacity = 0
		ch.WatermarkSize = 0
	}
	if !active.Has("chapter_bg_color") {
		ch.ChapterBgColor = ""
		ch.ChapterFontColor = ""
		ch.ChapterFontFamily = ""
	}
	if !active.Has("video_intro_url") {
		ch.VideoIntroURL = ""
		ch.IntroDissolveTime = 0
		ch.IntroDuration = 0
	}
	if !active.Has("video_outro_url") {
		ch.VideoOutroURL = ""
		ch.OutroDissolveTime = 0
		ch.OutroDuration = 0
	}
}

// StripThumbnailTemplate 清空未生效字段的存量值
func StripThumbnailTemplate(tt *models.ThumbnailTemplate, active FieldSet) {
	if !active.Has("prompt") {
		tt.Prompt = ""
		tt.Model = ""
		tt.FallbackModel = ""
		tt.FallbackStrategy = ""
	}
}

// StripVideoTemplate 清空未生效字段的存量值
func StripVideoTemplate(vt *models.VideoTemplate, active FieldSet) {
	if !active.Has("effects.ken_burns_speed") {
		vt.Effects.KenBurnsSpeed = 0
		vt.Effects.KenBurnsDirection = ""
	}
	if !active.Has("captions.font") {
		vt.Captions.Font = ""
		vt.Captions.Color = ""
		vt.Captions.Position = ""
	}
}
