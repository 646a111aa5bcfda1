package validation

import (
	"testing"

	"Reelgen/models"
	"Reelgen/pkg/modelfamily"
)

func validVideoTemplate() *models.VideoTemplate {
	return &models.VideoTemplate{
		Name: "新闻速览",
		Type: models.VideoTypeNews,
		HookPrompt: models.Prompt{
			Text:  "用 {{SCRIPT}} 开头三句话做钩子",
			Model: withModel(modelfamily.DefaultsFor(modelfamily.FamilySampling), "gpt-4o"),
		},
		StoryOutlinePrompt: models.Prompt{
			Text:  "为 {{TITLE}} 生成分段大纲",
			Model: withModel(modelfamily.DefaultsFor(modelfamily.FamilyReasoning), "gpt-5-mini"),
		},
		ImagePrompt:        "新闻主题配图，{{OUTLINE}}",
		ImageModel:         "flux-schnell",
		FallbackImageModel: "sdxl",
		AudioModel:         "tts-1",
		AudioVoices:        []string{"alloy", "echo"},
		AudioPauseGap:      500,
		BgMusicVolume:      30,
		TransitionDuration: 1.5,
	}
}

func TestValidateVideoTemplate_Valid(t *testing.T) {
	errs := ValidateVideoTemplate(validVideoTemplate())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestValidateVideoTemplate_Ranges(t *testing.T) {
	vt := validVideoTemplate()
	vt.AudioPauseGap = 50
	vt.BgMusicVolume = 150
	vt.TransitionDuration = 0.1

	errs := ValidateVideoTemplate(vt)
	for _, f := range []string{"audio_pause_gap", "bg_music_volume", "transition_duration"} {
		if !hasError(errs, f, KindStaticType) {
			t.Errorf("expected static error on %s, got %+v", f, errs)
		}
	}
}

func TestVideoTemplateActiveFields_KenBurns(t *testing.T) {
	vt := validVideoTemplate()
	vt.Effects.KenBurns = false
	if VideoTemplateActiveFields(vt).Has("effects.ken_burns_speed") {
		t.Error("ken burns speed active with toggle off")
	}

	vt.Effects.KenBurns = true
	active := VideoTemplateActiveFields(vt)
	if !active.Has("effects.ken_burns_speed") || !active.Has("effects.ken_burns_direction") {
		t.Error("ken burns detail fields should follow the toggle")
	}
}

func TestVideoTemplateActiveFields_Captions(t *testing.T) {
	vt := validVideoTemplate()
	vt.Captions.Enabled = false
	if VideoTemplateActiveFields(vt).Has("captions.font") {
		t.Error("caption style fields active with captions disabled")
	}

	vt.Captions.Enabled = true
	if !VideoTemplateActiveFields(vt).Has("captions.position") {
		t.Error("caption style fields should be active with captions enabled")
	}
}

// 两个提示词各自独立归族校验
func TestValidateVideoTemplate_PerPromptFamilies(t *testing.T) {
	vt := validVideoTemplate()
	vt.StoryOutlinePrompt.Model.Sampling = &modelfamily.SamplingParams{Temperature: 1}

	errs := ValidateVideoTemplate(vt)
	if !hasError(errs, "story_outline_prompt.model.sampling", KindUnknownFamily) {
		t.Fatalf("expected UnknownFamilyField on story outline prompt, got %+v", errs)
	}
	if hasError(errs, "hook_prompt.model.sampling", KindUnknownFamily) {
		t.Errorf("hook prompt wrongly flagged: %+v", errs)
	}
}

func TestStripVideoTemplate(t *testing.T) {
	vt := validVideoTemplate()
	vt.Effects.KenBurns = false
	vt.Effects.KenBurnsSpeed = 2.5
	vt.Captions.Enabled = false
	vt.Captions.Font = "Inter"

	StripVideoTemplate(vt, VideoTemplateActiveFields(vt))
	if vt.Effects.KenBurnsSpeed != 0 || vt.Captions.Font != "" {
		t.Errorf("stale effect/caption values survived strip: %+v %+v", vt.Effects, vt.Captions)
	}
}
