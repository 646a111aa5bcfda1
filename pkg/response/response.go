package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应体
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "ok",
		Data: data,
	})
}

func Fail(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Response{
		Code: code,
		Msg:  msg,
	})
}

// InvalidResponse 校验失败响应体，data 里带逐字段错误
type InvalidResponse struct {
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
	Errors any    `json:"errors"`
}

// Invalid 实体校验不通过，422 + 字段错误列表
func Invalid(c *gin.Context, errs any) {
	c.JSON(http.StatusUnprocessableEntity, InvalidResponse{
		Code:   http.StatusUnprocessableEntity,
		Msg:    "validation failed",
		Errors: errs,
	})
}
