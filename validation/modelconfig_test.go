package validation

import (
	"testing"

	"Reelgen/models"
	"Reelgen/pkg/modelfamily"
)

func validHookTemplate() *models.HookTemplate {
	return &models.HookTemplate{
		Name:      "悬念开场",
		Duration:  10,
		EditSpeed: models.EditSpeedFast,
		Prompt: models.Prompt{
			Text:  "根据 {{OUTLINE}} 写一个 10 秒的开场钩子",
			Model: withModel(modelfamily.DefaultsFor(modelfamily.FamilySampling), "gpt-4o"),
		},
	}
}

func TestValidateHookTemplate_Valid(t *testing.T) {
	errs := ValidateHookTemplate(validHookTemplate())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

// 采样族模型带着推理参数 → UnknownFamilyField
func TestModelConfig_StaleReasoningBranch(t *testing.T) {
	ht := validHookTemplate()
	ht.Prompt.Model.Reasoning = &modelfamily.ReasoningParams{Effort: modelfamily.EffortHigh}

	errs := ValidateHookTemplate(ht)
	if !hasError(errs, "prompt.model.effort", KindUnknownFamily) {
		t.Fatalf("expected UnknownFamilyField on prompt.model.effort, got %+v", errs)
	}
}

// 推理族模型带着采样参数 → UnknownFamilyField
func TestModelConfig_StaleSamplingBranch(t *testing.T) {
	ht := validHookTemplate()
	ht.Prompt.Model = modelfamily.Config{
		Model:     "gpt-5-mini",
		Reasoning: &modelfamily.ReasoningParams{Effort: modelfamily.EffortLow},
		Sampling:  &modelfamily.SamplingParams{MaxTokens: 1024, Temperature: 1},
	}

	errs := ValidateHookTemplate(ht)
	if !hasError(errs, "prompt.model.sampling", KindUnknownFamily) {
		t.Fatalf("expected UnknownFamilyField on prompt.model.sampling, got %+v", errs)
	}
}

// 归族对应的参数分支缺失 → RequiredFieldMissing
func TestModelConfig_MissingBranch(t *testing.T) {
	ht := validHookTemplate()
	ht.Prompt.Model = modelfamily.Config{Model: "gpt-5"}

	errs := ValidateHookTemplate(ht)
	if !hasError(errs, "prompt.model.effort", KindRequiredMissing) {
		t.Fatalf("expected RequiredFieldMissing on prompt.model.effort, got %+v", errs)
	}
}

// 模型参数字段按族点亮
func TestModelConfigActiveFields(t *testing.T) {
	ht := validHookTemplate()
	active := HookTemplateActiveFields(ht)
	if !active.Has("prompt.model.temperature") || active.Has("prompt.model.effort") {
		t.Errorf("sampling model lit wrong fields: %v", active)
	}

	ht.Prompt.Model = withModel(modelfamily.DefaultsFor(modelfamily.FamilyReasoning), "gpt-5")
	active = HookTemplateActiveFields(ht)
	if !active.Has("prompt.model.effort") || active.Has("prompt.model.temperature") {
		t.Errorf("reasoning model lit wrong fields: %v", active)
	}
}

// 未生效分支上的越界存量值不报静态错误
func TestModelConfig_InactiveBranchRangeIgnored(t *testing.T) {
	ht := validHookTemplate()
	ht.Prompt.Model = withModel(modelfamily.DefaultsFor(modelfamily.FamilyReasoning), "gpt-5")
	ht.Prompt.Model.Sampling = &modelfamily.SamplingParams{Temperature: 99}

	errs := ValidateHookTemplate(ht)
	if hasError(errs, "prompt.model.temperature", KindStaticType) {
		t.Errorf("inactive sampling branch raised static error: %+v", errs)
	}
	// 但族外分支本身要报 UnknownFamilyField
	if !hasError(errs, "prompt.model.sampling", KindUnknownFamily) {
		t.Errorf("expected UnknownFamilyField, got %+v", errs)
	}
}

func TestValidateHookTemplate_Static(t *testing.T) {
	ht := validHookTemplate()
	ht.Duration = 60
	ht.EditSpeed = "turbo"

	errs := ValidateHookTemplate(ht)
	if !hasError(errs, "duration", KindStaticType) {
		t.Errorf("expected static error on duration, got %+v", errs)
	}
	if !hasError(errs, "edit_speed", KindStaticType) {
		t.Errorf("expected static error on edit_speed, got %+v", errs)
	}
}
