package config

// LLMEndpoint 一个 OpenAI 兼容端点
type LLMEndpoint struct {
	Name    string `json:"name" yaml:"name"`
	APIKey  string `json:"api_key" yaml:"api_key"`
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// LLMConfig 模型目录同步用的端点列表
type LLMConfig struct {
	Endpoints []LLMEndpoint `json:"endpoints" yaml:"endpoints"`
}

func ProvideLLMConfig(cfg *Config) *LLMConfig {
	return cfg.LLM
}
