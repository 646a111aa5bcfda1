package validation

import (
	"testing"

	"Reelgen/models"
)

// 非 ai-generated 类型下 prompt 不生效，空值不报错
func TestValidateThumbnail_FirstImageEmptyPrompt(t *testing.T) {
	tt := &models.ThumbnailTemplate{
		Name:   "默认封面",
		Type:   models.ThumbnailFirstImage,
		Prompt: "",
	}

	errs := ValidateThumbnailTemplate(tt)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestValidateThumbnail_AIGeneratedEmptyPrompt(t *testing.T) {
	tt := &models.ThumbnailTemplate{
		Name:             "AI 封面",
		Type:             models.ThumbnailAIGenerated,
		Prompt:           "",
		Model:            "flux-schnell",
		FallbackStrategy: models.ThumbnailFirstImage,
	}

	errs := ValidateThumbnailTemplate(tt)
	if !hasError(errs, "prompt", KindRequiredMissing) {
		t.Fatalf("expected RequiredFieldMissing on prompt, got %+v", errs)
	}
}

func TestValidateThumbnail_AIGeneratedEmptyModel(t *testing.T) {
	tt := &models.ThumbnailTemplate{
		Name:             "AI 封面",
		Type:             models.ThumbnailAIGenerated,
		Prompt:           "为 {{TITLE}} 生成一张封面图",
		Model:            "",
		FallbackStrategy: models.ThumbnailLastImage,
	}

	errs := ValidateThumbnailTemplate(tt)
	if !hasError(errs, "model", KindRequiredMissing) {
		t.Fatalf("expected RequiredFieldMissing on model, got %+v", errs)
	}
}

// requiresPrompt ⇔ type == ai-generated
func TestThumbnailActiveFields(t *testing.T) {
	tt := &models.ThumbnailTemplate{Name: "x", Type: models.ThumbnailRandomImage}
	if ThumbnailTemplateActiveFields(tt).Has("prompt") {
		t.Error("prompt active for random-image type")
	}

	tt.Type = models.ThumbnailAIGenerated
	active := ThumbnailTemplateActiveFields(tt)
	for _, f := range []string{"prompt", "model", "fallback_model", "fallback_strategy"} {
		if !active.Has(f) {
			t.Errorf("%s should be active for ai-generated type", f)
		}
	}
}

// 切回非 ai-generated 类型后剥离 prompt/model 存量值
func TestStripThumbnailTemplate(t *testing.T) {
	tt := &models.ThumbnailTemplate{
		Name:          "x",
		Type:          models.ThumbnailFirstImage,
		Prompt:        "stale prompt",
		Model:         "flux-schnell",
		FallbackModel: "sdxl",
	}

	StripThumbnailTemplate(tt, ThumbnailTemplateActiveFields(tt))
	if tt.Prompt != "" || tt.Model != "" || tt.FallbackModel != "" {
		t.Errorf("stale ai fields survived strip: %+v", tt)
	}
}

func TestValidateThumbnail_UnknownType(t *testing.T) {
	tt := &models.ThumbnailTemplate{Name: "x", Type: "collage"}

	errs := ValidateThumbnailTemplate(tt)
	if !hasError(errs, "type", KindStaticType) {
		t.Fatalf("expected static error on type, got %+v", errs)
	}
}
