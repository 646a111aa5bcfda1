package validation

import (
	"fmt"
	"net/url"

	"Reelgen/models"
	"Reelgen/pkg/modelfamily"
)

// 静态约束：只看字段自身的类型/范围/枚举，不看兄弟字段

var watermarkPositions = map[string]struct{}{
	models.PositionTopLeft:      {},
	models.PositionTopRight:     {},
	models.PositionBottomLeft:   {},
	models.PositionBottomRight:  {},
	models.PositionCenter:       {},
	models.PositionTopCenter:    {},
	models.PositionBottomCenter: {},
}

var schedules = map[string]struct{}{
	models.ScheduleDaily:  {},
	models.ScheduleWeekly: {},
	models.ScheduleCustom: {},
}

var videoTypes = map[string]struct{}{
	models.VideoTypeStory:       {},
	models.VideoTypeNews:        {},
	models.VideoTypeEducational: {},
}

var editSpeeds = map[string]struct{}{
	models.EditSpeedSlow:   {},
	models.EditSpeedMedium: {},
	models.EditSpeedFast:   {},
}

var thumbnailTypes = map[string]struct{}{
	models.ThumbnailFirstImage:  {},
	models.ThumbnailLastImage:   {},
	models.ThumbnailRandomImage: {},
	models.ThumbnailAIGenerated: {},
}

var fallbackStrategies = map[string]struct{}{
	models.ThumbnailFirstImage:  {},
	models.ThumbnailLastImage:   {},
	models.ThumbnailRandomImage: {},
}

// ValidateChannelStatic 频道的静态约束
func ValidateChannelStatic(ch *models.Channel) []FieldError {
	var errs []FieldError

	if ch.Name == "" {
		errs = append(errs, requiredErr("name", "name is required"))
	}
	if ch.URL != "" {
		if u, err := url.Parse(ch.URL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, staticErr("url", "url must be a valid URL"))
		}
	}
	if ch.WatermarkPosition != "" {
		if _, ok := watermarkPositions[ch.WatermarkPosition]; !ok {
			errs = append(errs, staticErr("watermark_position", "unknown watermark position"))
		}
	}
	if ch.WatermarkOpacity < 0 || ch.WatermarkOpacity > 100 {
		errs = append(errs, staticErr("watermark_opacity", "opacity must be between 0 and 100"))
	}
	if ch.WatermarkSize < 5 || ch.WatermarkSize > 50 {
		errs = append(errs, staticErr("watermark_size", "size must be between 5 and 50"))
	}
	if _, ok := schedules[ch.Schedule]; !ok {
		errs = append(errs, staticErr("schedule", "unknown schedule"))
	}
	if ch.VideosMin < 0 || ch.VideosMin > 10 {
		errs = append(errs, staticErr("videos_min", "videos_min must be between 0 and 10"))
	}
	if ch.VideosMax < 0 || ch.VideosMax > 10 {
		errs = append(errs, staticErr("videos_max", "videos_max must be between 0 and 10"))
	}
	if ch.IntroDissolveTime < 0 || ch.IntroDissolveTime > 10 {
		errs = append(errs, staticErr("intro_dissolve_time", "dissolve time must be between 0 and 10 seconds"))
	}
	if ch.OutroDissolveTime < 0 || ch.OutroDissolveTime > 10 {
		errs = append(errs, staticErr("outro_dissolve_time", "dissolve time must be between 0 and 10 seconds"))
	}

	errs = append(errs, modelConfigStatic("description_prompt.model", ch.DescriptionPrompt.Model)...)
	return errs
}

// ValidateVideoTemplateStatic 视频模板的静态约束
func ValidateVideoTemplateStatic(vt *models.VideoTemplate) []FieldError {
	var errs []FieldError

	if vt.Name == "" {
		errs = append(errs, requiredErr("name", "name is required"))
	}
	if _, ok := videoTypes[vt.Type]; !ok {
		errs = append(errs, staticErr("type", "type must be one of story, news, educational"))
	}
	if vt.AudioPauseGap < 100 || vt.AudioPauseGap > 2000 {
		errs = append(errs, staticErr("audio_pause_gap", "pause gap must be between 100 and 2000 ms"))
	}
	if vt.BgMusicVolume < 0 || vt.BgMusicVolume > 100 {
		errs = append(errs, staticErr("bg_music_volume", "volume must be between 0 and 100"))
	}
	if vt.TransitionDuration < 0.5 || vt.TransitionDuration > 5 {
		errs = append(errs, staticErr("transition_duration", "transition duration must be between 0.5 and 5 seconds"))
	}

	errs = append(errs, modelConfigStatic("hook_prompt.model", vt.HookPrompt.Model)...)
	errs = append(errs, modelConfigStatic("story_outline_prompt.model", vt.StoryOutlinePrompt.Model)...)
	return errs
}

// ValidateHookTemplateStatic 钩子模板的静态约束
func ValidateHookTemplateStatic(ht *models.HookTemplate) []FieldError {
	var errs []FieldError

	if ht.Name == "" {
		errs = append(errs, requiredErr("name", "name is required"))
	}
	if ht.Duration < 5 || ht.Duration > 30 {
		errs = append(errs, staticErr("duration", "duration must be between 5 and 30 seconds"))
	}
	if _, ok := editSpeeds[ht.EditSpeed]; !ok {
		errs = append(errs, staticErr("edit_speed", "edit speed must be one of slow, medium, fast"))
	}

	errs = append(errs, modelConfigStatic("prompt.model", ht.Prompt.Model)...)
	return errs
}

// ValidateThumbnailTemplateStatic 封面模板的静态约束
func ValidateThumbnailTemplateStatic(tt *models.ThumbnailTemplate) []FieldError {
	var errs []FieldError

	if tt.Name == "" {
		errs = append(errs, requiredErr("name", "name is required"))
	}
	if _, ok := thumbnailTypes[tt.Type]; !ok {
		errs = append(errs, staticErr("type", "unknown thumbnail type"))
	}
	if tt.FallbackStrategy != "" {
		if _, ok := fallbackStrategies[tt.FallbackStrategy]; !ok {
			errs = append(errs, staticErr("fallback_strategy", "unknown fallback strategy"))
		}
	}
	return errs
}

// modelConfigStatic 模型配置里已出现分支的取值范围检查。
// 分支跟归族结果是否匹配属于跨字段校验，这里不管
func modelConfigStatic(prefix string, cfg modelfamily.Config) []FieldError {
	var errs []FieldError

	if r := cfg.Reasoning; r != nil {
		if !modelfamily.ValidEffort(r.Effort) {
			errs = append(errs, staticErr(prefix+".effort",
				fmt.Sprintf("effort %q must be one of minimal, low, medium, high", r.Effort)))
		}
	}
	if s := cfg.Sampling; s != nil {
		if s.MaxTokens <= 0 {
			errs = append(errs, staticErr(prefix+".max_tokens", "max_tokens must be a positive integer"))
		}
		if s.Temperature < 0 || s.Temperature > 2 {
			errs = append(errs, staticErr(prefix+".temperature", "temperature must be between 0 and 2"))
		}
		if s.TopP < 0 || s.TopP > 1 {
			errs = append(errs, staticErr(prefix+".top_p", "top_p must be between 0 and 1"))
		}
		if s.FrequencyPenalty < 0 || s.FrequencyPenalty > 2 {
			errs = append(errs, staticErr(prefix+".frequency_penalty", "frequency_penalty must be between 0 and 2"))
		}
	}
	return errs
}
