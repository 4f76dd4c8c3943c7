package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kvrvenkatca-ai/firm-timesheet/pkg/response"
)

// MustGetUserEmail 从 Gin 上下文中安全提取 user_email。
// 如果 JWT 中间件未正确注入 user_email，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_email")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetRole 从 Gin 上下文中安全提取 role。
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// GetTokenMeta 提取当前 Access Token 的 jti 与过期时间（登出用）
func GetTokenMeta(c *gin.Context) (jti string, expiresAt time.Time) {
	jti = c.GetString("jti")
	if v, exists := c.Get("token_expires_at"); exists {
		if t, ok := v.(time.Time); ok {
			expiresAt = t
		}
	}
	return jti, expiresAt
}
