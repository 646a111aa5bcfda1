package types

import (
	"Reelgen/pkg/modelfamily"
)

// SaveSettingReq 保存字符串设置（API Key 等）
type SaveSettingReq struct {
	Value string `json:"value"`
}

// GetSettingResp 读取设置响应。API Key 只回掩码
type GetSettingResp struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ModelCatalogResp 已启用模型目录
type ModelCatalogResp struct {
	Models []string `json:"models"`
}

// ModelCatalogOpReq 目录加/删一个模型 ID
type ModelCatalogOpReq struct {
	Model string `json:"model"`
}

// MigrateModelConfigReq 前端切换模型时请求参数换算
type MigrateModelConfigReq struct {
	Config modelfamily.Config `json:"config"`
	Model  string             `json:"model"`
}
