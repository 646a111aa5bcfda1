package handler

import (
	"Reelgen/config"
	"Reelgen/middleware"
	"Reelgen/pkg/context"
	"Reelgen/service"
	"Reelgen/types"

	"github.com/gin-gonic/gin"
)

type Channel struct {
	Config     *config.Config
	ChannelSrv service.IChannelService
}

func (h *Channel) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	channel := r.Group("/v1/channel", authorize)
	channel.GET("/list", context.Wrap(h.ListChannels))
	channel.GET("/:id", context.Wrap(h.GetChannel))
	channel.POST("/create", context.Wrap(h.CreateChannel))
	channel.PUT("/:id", context.Wrap(h.UpdateChannel))
	channel.DELETE("/:id", context.Wrap(h.DeleteChannel))
}

func (h *Channel) ListChannels(c *gin.Context) error {
	var req types.ListChannelsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return err
	}

	res, err := h.ChannelSrv.ListChannels(c.Request.Context(), &req)
	return respond(c, res, err)
}

func (h *Channel) GetChannel(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	res, err := h.ChannelSrv.GetChannel(c.Request.Context(), id)
	return respond(c, res, err)
}

func (h *Channel) CreateChannel(c *gin.Context) error {
	var req types.SaveChannelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	res, err := h.ChannelSrv.CreateChannel(c.Request.Context(), &req)
	return respond(c, res, err)
}

func (h *Channel) UpdateChannel(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req types.SaveChannelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return err
	}

	err = h.ChannelSrv.UpdateChannel(c.Request.Context(), id, &req)
	return respond(c, gin.H{"id": id}, err)
}

func (h *Channel) DeleteChannel(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.ChannelSrv.DeleteChannel(c.Request.Context(), id)
	return respond(c, gin.H{"id": id}, err)
}
