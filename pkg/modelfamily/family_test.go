package modelfamily

import "testing"

// 归族必须稳定且全量：任何字符串都恰好落在一个族里
func TestFamilyOf(t *testing.T) {
	cases := []struct {
		model string
		want  Family
	}{
		{"gpt-5", FamilyReasoning},
		{"gpt-5-mini", FamilyReasoning},
		{"gpt-5.1", FamilyReasoning},
		{"gpt-4o", FamilySampling},
		{"gpt-4o-mini", FamilySampling},
		{"qwen3-vl-plus", FamilySampling},
		{"", FamilySampling},
		{"g", FamilySampling},
	}

	for _, c := range cases {
		got := FamilyOf(c.model)
		if got != c.want {
			t.Errorf("FamilyOf(%q) = %s, want %s", c.model, got, c.want)
		}
		// 重复调用结果一致
		if again := FamilyOf(c.model); again != got {
			t.Errorf("FamilyOf(%q) not stable: %s then %s", c.model, got, again)
		}
	}
}

func TestDefaultsFor(t *testing.T) {
	r := DefaultsFor(FamilyReasoning)
	if r.Reasoning == nil || r.Sampling != nil {
		t.Fatalf("reasoning defaults wrong shape: %+v", r)
	}
	if r.Reasoning.Effort != EffortLow {
		t.Errorf("default effort = %s, want %s", r.Reasoning.Effort, EffortLow)
	}

	s := DefaultsFor(FamilySampling)
	if s.Sampling == nil || s.Reasoning != nil {
		t.Fatalf("sampling defaults wrong shape: %+v", s)
	}
	if s.Sampling.Temperature != 0.7 || s.Sampling.TopP != 0.9 ||
		s.Sampling.FrequencyPenalty != 0 || s.Sampling.MaxTokens != 8192 {
		t.Errorf("sampling defaults = %+v", s.Sampling)
	}
}

// 跨族切换丢弃旧参数、装入新族默认值
func TestMigrate_CrossFamily(t *testing.T) {
	old := Config{
		Model: "gpt-4o",
		Sampling: &SamplingParams{
			MaxTokens:        2048,
			Temperature:      1.5,
			TopP:             0.3,
			FrequencyPenalty: 1.2,
		},
	}

	next := Migrate(old, "gpt-5-mini")
	if next.Model != "gpt-5-mini" {
		t.Fatalf("model = %s", next.Model)
	}
	if next.Sampling != nil {
		t.Errorf("sampling params survived cross-family switch: %+v", next.Sampling)
	}
	if next.Reasoning == nil || next.Reasoning.Effort != EffortLow {
		t.Errorf("reasoning defaults not installed: %+v", next.Reasoning)
	}
}

// 来回切换恢复的是默认值而不是切换前的自定义值（有损，符合预期）
func TestMigrate_RoundTripLossy(t *testing.T) {
	custom := Config{
		Model: "gpt-4o",
		Sampling: &SamplingParams{
			MaxTokens:        512,
			Temperature:      1.9,
			TopP:             0.1,
			FrequencyPenalty: 2,
		},
	}

	toReasoning := Migrate(custom, "gpt-5")
	back := Migrate(toReasoning, "gpt-4o")

	if back.Reasoning != nil {
		t.Errorf("reasoning branch survived switch back: %+v", back.Reasoning)
	}
	if back.Sampling == nil {
		t.Fatal("sampling branch missing after switch back")
	}
	if back.Sampling.Temperature != DefaultTemperature ||
		back.Sampling.TopP != DefaultTopP ||
		back.Sampling.FrequencyPenalty != DefaultFrequencyPenalty ||
		back.Sampling.MaxTokens != DefaultMaxTokens {
		t.Errorf("expected family defaults after round trip, got %+v", back.Sampling)
	}
}

// 同族切换只换 Model，参数原样保留
func TestMigrate_SameFamily(t *testing.T) {
	old := Config{
		Model:    "gpt-4o",
		Sampling: &SamplingParams{MaxTokens: 1024, Temperature: 1.1, TopP: 0.5},
	}

	next := Migrate(old, "qwen3-vl-plus")
	if next.Model != "qwen3-vl-plus" {
		t.Fatalf("model = %s", next.Model)
	}
	if next.Sampling == nil || next.Sampling.MaxTokens != 1024 || next.Sampling.Temperature != 1.1 {
		t.Errorf("sampling params not preserved: %+v", next.Sampling)
	}
}
