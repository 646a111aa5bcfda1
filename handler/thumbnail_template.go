package handler

import (
	"Reelgen/config"
	"Reelgen/middleware"
	"Reelgen/pkg/context"
	"Reelgen/service"
	"Reelgen/types"

	"github.com/gin-gonic/gin"
)

type ThumbnailTemplate struct {
	Config       *config.Config
	ThumbnailSrv service.IThumbnailTemplateService
}

func (h *ThumbnailTemplate) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	tpl := r.Group("/v1/thumbnail-template", authorize)
	tpl.GET("/list", context.Wrap(h.List))
	tpl.GET("/:id", context.Wrap(h.Get))
	tpl.POST("/create", context.Wrap(h.Create))
	tpl.PUT("/:id", context.Wrap(h.Update))
	tpl.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *ThumbnailTemplate) List(c *gin.Context) error {
	res, err := h.ThumbnailSrv.List(c.Request.Context())
	return respond(c, res, err)
}

func (h *ThumbnailTemplate) Get(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	res, err := h.ThumbnailSrv.Get(c.Request.Context(), id)
	return respond(c, res, err)
}

func (h *ThumbnailTemplate) Create(c *gin.Context) error {
	var req types.SaveThumbnailTemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	res, err := h.ThumbnailSrv.Create(c.Request.Context(), &req)
	return respond(c, res, err)
}

func (h *ThumbnailTemplate) Update(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req types.SaveThumbnailTemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	err = h.ThumbnailSrv.Update(c.Request.Context(), id, &req)
	return respond(c, gin.H{"id": id}, err)
}

func (h *ThumbnailTemplate) Delete(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.ThumbnailSrv.Delete(c.Request.Context(), id)
	return respond(c, gin.H{"id": id}, err)
}
