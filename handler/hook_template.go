package handler

import (
	"Reelgen/config"
	"Reelgen/middleware"
	"Reelgen/pkg/context"
	"Reelgen/service"
	"Reelgen/types"

	"github.com/gin-gonic/gin"
)

type HookTemplate struct {
	Config  *config.Config
	HookSrv service.IHookTemplateService
}

func (h *HookTemplate) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	tpl := r.Group("/v1/hook-template", authorize)
	tpl.GET("/list", context.Wrap(h.List))
	tpl.GET("/:id", context.Wrap(h.Get))
	tpl.POST("/create", context.Wrap(h.Create))
	tpl.PUT("/:id", context.Wrap(h.Update))
	tpl.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *HookTemplate) List(c *gin.Context) error {
	res, err := h.HookSrv.List(c.Request.Context())
	return respond(c, res, err)
}

func (h *HookTemplate) Get(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	res, err := h.HookSrv.Get(c.Request.Context(), id)
	return respond(c, res, err)
}

func (h *HookTemplate) Create(c *gin.Context) error {
	var req types.SaveHookTemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	res, err := h.HookSrv.Create(c.Request.Context(), &req)
	return respond(c, res, err)
}

func (h *HookTemplate) Update(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req types.SaveHookTemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	err = h.HookSrv.Update(c.Request.Context(), id, &req)
	return respond(c, gin.H{"id": id}, err)
}

func (h *HookTemplate) Delete(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.HookSrv.Delete(c.Request.Context(), id)
	return respond(c, gin.H{"id": id}, err)
}
