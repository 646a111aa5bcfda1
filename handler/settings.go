package handler

import (
	"Reelgen/config"
	"Reelgen/middleware"
	"Reelgen/pkg/context"
	"Reelgen/pkg/response"
	"Reelgen/service"
	"Reelgen/types"

	"github.com/gin-gonic/gin"
)

type Settings struct {
	Config      *config.Config
	SettingsSrv service.ISettingsService
}

func (h *Settings) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	settings := r.Group("/v1/settings", authorize)

	settings.GET("/models", context.Wrap(h.ListModels))
	settings.POST("/models", context.Wrap(h.AddModel))
	settings.POST("/models/remove", context.Wrap(h.RemoveModel))
	settings.POST("/models/sync", context.Wrap(h.SyncModels))
	settings.POST("/models/migrate", context.Wrap(h.MigrateModelConfig))

	settings.GET("/:key", context.Wrap(h.GetSetting))
	settings.PUT("/:key", context.Wrap(h.SaveSetting))
	settings.DELETE("/:key", context.Wrap(h.DeleteSetting))
}

func (h *Settings) GetSetting(c *gin.Context) error {
	res, err := h.SettingsSrv.GetSetting(c.Request.Context(), c.Param("key"))
	return respond(c, res, err)
}

func (h *Settings) SaveSetting(c *gin.Context) error {
	key := c.Param("key")
	var req types.SaveSettingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	err := h.SettingsSrv.SaveSetting(c.Request.Context(), key, req.Value)
	return respond(c, gin.H{"key": key}, err)
}

func (h *Settings) DeleteSetting(c *gin.Context) error {
	key := c.Param("key")
	err := h.SettingsSrv.DeleteSetting(c.Request.Context(), key)
	return respond(c, gin.H{"key": key}, err)
}

func (h *Settings) ListModels(c *gin.Context) error {
	res, err := h.SettingsSrv.ListModels(c.Request.Context())
	return respond(c, res, err)
}

func (h *Settings) AddModel(c *gin.Context) error {
	var req types.ModelCatalogOpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	res, err := h.SettingsSrv.AddModel(c.Request.Context(), req.Model)
	return respond(c, res, err)
}

func (h *Settings) RemoveModel(c *gin.Context) error {
	var req types.ModelCatalogOpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	res, err := h.SettingsSrv.RemoveModel(c.Request.Context(), req.Model)
	return respond(c, res, err)
}

// SyncModels 从配置的各模型端点拉取可用模型，合并进目录
func (h *Settings) SyncModels(c *gin.Context) error {
	res, err := h.SettingsSrv.SyncModelCatalog(c.Request.Context())
	return respond(c, res, err)
}

// MigrateModelConfig 前端切换模型时换算参数，跨家族会回落到目标家族默认值
func (h *Settings) MigrateModelConfig(c *gin.Context) error {
	var req types.MigrateModelConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	migrated := h.SettingsSrv.MigrateModelConfig(req.Config, req.Model)
	response.Success(c, migrated)
	return nil
}
