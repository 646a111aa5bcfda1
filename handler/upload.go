package handler

import (
	"strconv"

	"Reelgen/config"
	"Reelgen/middleware"
	"Reelgen/pkg/context"
	"Reelgen/pkg/response"
	"Reelgen/service"

	"github.com/gin-gonic/gin"
)

type Upload struct {
	Config *config.Config
	OssSrv service.IOssService
}

func (h *Upload) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	upload := r.Group("/v1/upload", authorize)
	upload.POST("/asset", context.Wrap(h.UploadAsset))
}

// UploadAsset 表单上传频道素材。kind 取 logo / watermark / intro / outro，
// 视频类素材由前端带上 duration（秒）
func (h *Upload) UploadAsset(c *gin.Context) error {
	kind := c.PostForm("kind")
	if kind == "" {
		return response.NewError(400, "missing kind")
	}

	header, err := c.FormFile("file")
	if err != nil {
		return response.NewError(400, "missing file")
	}

	duration, _ := strconv.ParseFloat(c.PostForm("duration"), 64)

	res, err := h.OssSrv.UploadAsset(c.Request.Context(), kind, header, duration)
	return respond(c, res, err)
}
