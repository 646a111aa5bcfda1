package handler

import (
	"errors"
	"strconv"

	"Reelgen/pkg/response"
	"Reelgen/service"

	"github.com/gin-gonic/gin"
)

// respond 统一出口：表单校验错误回 422，业务/系统错误交给 Wrap
func respond(c *gin.Context, data any, err error) error {
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			response.Invalid(c, ve.Errors)
			return nil
		}
		return err
	}
	response.Success(c, data)
	return nil
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, response.NewError(400, "无效的 ID")
	}
	return id, nil
}
