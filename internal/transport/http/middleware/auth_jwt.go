package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"staynest/internal/core/auth"
	resp "staynest/internal/transport/http/response"
)

const KeyUserID = "userId"

// AuthJWT 缺凭证 401，凭证坏掉/过期 403；通过后把 uid 挂到请求上下文
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.AbortMessage(c, http.StatusUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.AbortMessage(c, http.StatusForbidden, "invalid token")
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Next()
	}
}
