package modelfamily

// Family 模型参数族：推理族 or 采样族，二选一
type Family string

const (
	FamilyReasoning Family = "reasoning"
	FamilySampling  Family = "sampling"
)

// reasoningPrefix 推理档模型的统一前缀，判定逻辑只在 FamilyOf 一处
const reasoningPrefix = "gpt-5"

// Effort 推理档位
const (
	EffortMinimal = "minimal"
	EffortLow     = "low"
	EffortMedium  = "medium"
	EffortHigh    = "high"
)

// 采样族默认值
const (
	DefaultTemperature      = 0.7
	DefaultTopP             = 0.9
	DefaultFrequencyPenalty = 0.0
	DefaultMaxTokens        = 8192
)

// DefaultEffort 推理族默认档位
const DefaultEffort = EffortLow

// ReasoningParams 推理族参数
type ReasoningParams struct {
	Effort string `json:"effort"`
}

// SamplingParams 采样族参数
type SamplingParams struct {
	MaxTokens        int     `json:"max_tokens"`
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"top_p"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
}

// Config 模型配置。Reasoning / Sampling 两个分支互斥，
// 有效的配置有且只有 FamilyOf(Model) 对应的那个分支非空
type Config struct {
	Model     string           `json:"model"`
	Reasoning *ReasoningParams `json:"reasoning,omitempty"`
	Sampling  *SamplingParams  `json:"sampling,omitempty"`
}

// FamilyOf 按模型 ID 前缀归族。全量字符串都能归入且结果稳定
func FamilyOf(modelID string) Family {
	if len(modelID) >= len(reasoningPrefix) && modelID[:len(reasoningPrefix)] == reasoningPrefix {
		return FamilyReasoning
	}
	return FamilySampling
}

// DefaultsFor 返回指定族的默认参数
func DefaultsFor(family Family) Config {
	if family == FamilyReasoning {
		return Config{
			Reasoning: &ReasoningParams{Effort: DefaultEffort},
		}
	}
	return Config{
		Sampling: &SamplingParams{
			MaxTokens:        DefaultMaxTokens,
			Temperature:      DefaultTemperature,
			TopP:             DefaultTopP,
			FrequencyPenalty: DefaultFrequencyPenalty,
		},
	}
}

// Migrate 切换模型 ID。跨族切换时旧族字段整体丢弃、装入新族默认值，
// 同族切换只替换 Model，参数原样保留
func Migrate(old Config, newModelID string) Config {
	oldFamily := FamilyOf(old.Model)
	newFamily := FamilyOf(newModelID)

	if oldFamily != newFamily {
		next := DefaultsFor(newFamily)
		next.Model = newModelID
		return next
	}

	next := old
	next.Model = newModelID
	// 同族但分支缺失时补默认值
	if newFamily == FamilyReasoning && next.Reasoning == nil {
		next.Reasoning = &ReasoningParams{Effort: DefaultEffort}
	}
	if newFamily == FamilySampling && next.Sampling == nil {
		d := DefaultsFor(FamilySampling)
		next.Sampling = d.Sampling
	}
	return next
}

// ValidEffort 档位是否合法
func ValidEffort(effort string) bool {
	switch effort {
	case EffortMinimal, EffortLow, EffortMedium, EffortHigh:
		return true
	}
	return false
}
