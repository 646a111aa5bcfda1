package models

import (
	"Reelgen/pkg/modelfamily"
)

// Prompt 生成提示词 + 驱动它的文本模型配置。
// 提示词里的 {{TITLE}} {{SCRIPT}} {{CHANNEL_NAME}} {{CHANNEL_DESCRIPTION}} {{OUTLINE}}
// 是外部生成服务的占位符，这里只原样保存，不做展开
type Prompt struct {
	Text  string             `json:"text"`
	Model modelfamily.Config `json:"model"`
}
