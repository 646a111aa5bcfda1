package validation

import (
	"Reelgen/models"
	"Reelgen/pkg/modelfamily"
)

// 跨字段校验：在静态约束和条件解析之后跑，只看生效字段。
// 对任意类型正确的输入都能同步跑完并返回错误列表，不会 panic

// CrossValidateChannel 频道的跨字段约束
func CrossValidateChannel(ch *models.Channel, active FieldSet) []FieldError {
	var errs []FieldError

	if ch.VideosMin > ch.VideosMax {
		errs = append(errs, crossErr("videos_max", "minimum must not exceed maximum"))
	}
	if active.Has("video_intro_url") && ch.VideoIntroURL == "" {
		errs = append(errs, requiredErr("video_intro_url", "intro asset is required when video_intro is enabled"))
	}
	if active.Has("video_outro_url") && ch.VideoOutroURL == "" {
		errs = append(errs, requiredErr("video_outro_url", "outro asset is required when video_outro is enabled"))
	}

	// 封面模板至少要挂一个，挂在表单级
	if len(ch.ThumbnailIDs) == 0 {
		errs = append(errs, crossErr(FormLevel, "at least one thumbnail template is required"))
	}
	if hasDuplicateID(ch.HookIDs) {
		errs = append(errs, crossErr("hook_ids", "duplicate hook template ids"))
	}
	if hasDuplicateID(ch.ThumbnailIDs) {
		errs = append(errs, crossErr("thumbnail_ids", "duplicate thumbnail template ids"))
	}

	errs = append(errs, crossValidateModelConfig("description_prompt.model", ch.DescriptionPrompt.Model)...)
	return errs
}

// CrossValidateVideoTemplate 视频模板的跨字段约束
func CrossValidateVideoTemplate(vt *models.VideoTemplate, active FieldSet) []FieldError {
	var errs []FieldError
	errs = append(errs, crossValidateModelConfig("hook_prompt.model", vt.HookPrompt.Model)...)
	errs = append(errs, crossValidateModelConfig("story_outline_prompt.model", vt.StoryOutlinePrompt.Model)...)
	return errs
}

// CrossValidateHookTemplate 钩子模板的跨字段约束
func CrossValidateHookTemplate(ht *models.HookTemplate, active FieldSet) []FieldError {
	return crossValidateModelConfig("prompt.model", ht.Prompt.Model)
}

// CrossValidateThumbnailTemplate 封面模板的跨字段约束。
// ai-generated 类型必须带提示词和模型
func CrossValidateThumbnailTemplate(tt *models.ThumbnailTemplate, active FieldSet) []FieldError {
	var errs []FieldError

	if active.Has("prompt") && tt.Prompt == "" {
		errs = append(errs, requiredErr("prompt", "prompt is required for ai-generated thumbnails"))
	}
	if active.Has("model") && tt.Model == "" {
		errs = append(errs, requiredErr("model", "model is required for ai-generated thumbnails"))
	}
	return errs
}

// crossValidateModelConfig 模型配置必须且只能带归族结果对应的那组参数
func crossValidateModelConfig(prefix string, cfg modelfamily.Config) []FieldError {
	var errs []FieldError

	switch modelfamily.FamilyOf(cfg.Model) {
	case modelfamily.FamilyReasoning:
		if cfg.Reasoning == nil {
			errs = append(errs, requiredErr(prefix+".effort", "reasoning parameters are required for this model"))
		}
		if cfg.Sampling != nil {
			errs = append(errs, familyErr(prefix+".sampling", "sampling parameters do not belong to a reasoning-family model"))
		}
	case modelfamily.FamilySampling:
		if cfg.Sampling == nil {
			errs = append(errs, requiredErr(prefix+".max_tokens", "sampling parameters are required for this model"))
		}
		if cfg.Reasoning != nil {
			errs = append(errs, familyErr(prefix+".effort", "reasoning parameters do not belong to a sampling-family model"))
		}
	}
	return errs
}

func hasDuplicateID(ids []int64) bool {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

// filterActive 丢掉未生效字段上的错误，表单级错误保留
func filterActive(errs []FieldError, active FieldSet) []FieldError {
	out := errs[:0]
	for _, e := range errs {
		if e.Field == FormLevel || active.Has(e.Field) {
			out = append(out, e)
		}
	}
	return out
}

// ValidateChannel 完整校验流水线：静态 → 条件解析 → 跨字段
func ValidateChannel(ch *models.Channel) []FieldError {
	active := ChannelActiveFields(ch)
	errs := filterActive(ValidateChannelStatic(ch), active)
	return append(errs, CrossValidateChannel(ch, active)...)
}

// ValidateVideoTemplate 完整校验流水线
func ValidateVideoTemplate(vt *models.VideoTemplate) []FieldError {
	active := VideoTemplateActiveFields(vt)
	errs := filterActive(ValidateVideoTemplateStatic(vt), active)
	return append(errs, CrossValidateVideoTemplate(vt, active)...)
}

// ValidateHookTemplate 完整校验流水线
func ValidateHookTemplate(ht *models.HookTemplate) []FieldError {
	active := HookTemplateActiveFields(ht)
	errs := filterActive(ValidateHookTemplateStatic(ht), active)
	return append(errs, CrossValidateHookTemplate(ht, active)...)
}

// ValidateThumbnailTemplate 完整校验流水线
func ValidateThumbnailTemplate(tt *models.ThumbnailTemplate) []FieldError {
	active := ThumbnailTemplateActiveFields(tt)
	errs := filterActive(ValidateThumbnailTemplateStatic(tt), active)
	return append(errs, CrossValidateThumbnailTemplate(tt, active)...)
}
