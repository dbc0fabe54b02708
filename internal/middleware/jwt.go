package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/taskradar/internal/pkg/errcode"
	"github.com/xxxsen/taskradar/internal/pkg/jwt"
	"github.com/xxxsen/taskradar/internal/pkg/response"
)

const ContextUserIDKey = "user_id"

// JWTAuth rejects requests without a valid bearer token and stores the
// authenticated user id in the gin context.
func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, errcode.ErrUnauthorized, "missing or invalid authorization")
			c.Abort()
			return
		}
		claims, err := jwt.ParseToken(token, secret)
		if err != nil {
			response.Error(c, errcode.ErrUnauthorized, "invalid token")
			c.Abort()
			return
		}
		c.Set(ContextUserIDKey, claims.UserID)
		if claims.Email != "" {
			c.Set("user_email", claims.Email)
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
