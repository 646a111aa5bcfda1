package context

import (
	"errors"
	"net/http"

	"Reelgen/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxAdminID = "admin_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

func GetAdminID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxAdminID)
	if !ok {
		return 0, errors.New("admin_id 不存在")
	}

	id, ok := v.(int64)
	if !ok {
		return 0, errors.New("admin_id 类型错误")
	}

	return id, nil
}
