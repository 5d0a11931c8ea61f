package middleware

import (
	"net/http"
	"strings"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/constants"
	"github.com/Xushengqwer/mp_hub/dependencies"
)

// ServiceAuth 校验管理类接口的服务令牌
type ServiceAuth struct {
	tokens dependencies.ServiceTokenInterface
	logger *zap.Logger
}

// NewServiceAuth 创建 ServiceAuth
func NewServiceAuth(tokens dependencies.ServiceTokenInterface, logger *zap.Logger) *ServiceAuth {
	return &ServiceAuth{tokens: tokens, logger: logger}
}

// Required 要求请求头携带 "Authorization: Bearer <token>"，校验通过后把调用方名称写入 constants.CallerKey。
func (m *ServiceAuth) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少 Authorization 请求头")
			c.Abort()
			return
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || scheme != "Bearer" || tokenString == "" {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "Authorization 格式应为 Bearer {token}")
			c.Abort()
			return
		}

		claims, err := m.tokens.ParseServiceToken(tokenString)
		if err != nil {
			m.logger.Warn("服务令牌校验失败",
				zap.String("path", c.Request.URL.Path),
				zap.String("clientIP", c.ClientIP()),
				zap.Error(err),
			)
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "令牌无效或已过期")
			c.Abort()
			return
		}

		c.Set(constants.CallerKey, claims.Caller)
		c.Next()
	}
}
