package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// SecretKey 设置项加密密钥，32 字节的 base64
	SecretKey string `json:"secret_key" yaml:"secret_key"`
}
