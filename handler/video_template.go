package handler

import (
	"Reelgen/config"
	"Reelgen/middleware"
	"Reelgen/pkg/context"
	"Reelgen/service"
	"Reelgen/types"

	"github.com/gin-gonic/gin"
)

type VideoTemplate struct {
	Config   *config.Config
	VideoSrv service.IVideoTemplateService
}

func (h *VideoTemplate) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	tpl := r.Group("/v1/video-template", authorize)
	tpl.GET("/list", context.Wrap(h.List))
	tpl.GET("/:id", context.Wrap(h.Get))
	tpl.POST("/create", context.Wrap(h.Create))
	tpl.PUT("/:id", context.Wrap(h.Update))
	tpl.DELETE("/:id", context.Wrap(h.Delete))
}

// List type 参数可选，按模板类型过滤
func (h *VideoTemplate) List(c *gin.Context) error {
	res, err := h.VideoSrv.List(c.Request.Context(), c.Query("type"))
	return respond(c, res, err)
}

func (h *VideoTemplate) Get(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	res, err := h.VideoSrv.Get(c.Request.Context(), id)
	return respond(c, res, err)
}

func (h *VideoTemplate) Create(c *gin.Context) error {
	var req types.SaveVideoTemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	res, err := h.VideoSrv.Create(c.Request.Context(), &req)
	return respond(c, res, err)
}

func (h *VideoTemplate) Update(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req types.SaveVideoTemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	err = h.VideoSrv.Update(c.Request.Context(), id, &req)
	return respond(c, gin.H{"id": id}, err)
}

func (h *VideoTemplate) Delete(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.VideoSrv.Delete(c.Request.Context(), id)
	return respond(c, gin.H{"id": id}, err)
}
