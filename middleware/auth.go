package middleware

import (
	"net/http"
	"strings"
	"time"

	"Reelgen/pkg/context"
	"Reelgen/pkg/jwt"
	"Reelgen/pkg/response"

	"github.com/gin-gonic/gin"
)

// accessExpire 快过期时在响应头里带一个续期 token
const (
	accessExpire  = 2 * time.Hour
	refreshBuffer = 10 * time.Minute
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		if claims.ExpiresAt != nil && time.Until(claims.ExpiresAt.Time) < refreshBuffer {
			newToken, _ := jwt.GenerateToken(secret, claims.AdminID, "access", accessExpire)
			c.Header("X-New-Access-Token", newToken)
		}
		c.Set(context.CtxAdminID, claims.AdminID)

		c.Next()
	}
}
