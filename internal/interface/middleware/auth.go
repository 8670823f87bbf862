package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	repo "github.com/voteboard/voteboard/internal/domain/repository"
	"github.com/voteboard/voteboard/pkg/helpers"
	"github.com/voteboard/voteboard/pkg/response"
)

const (
	// CtxUserIDKey holds the authenticated user's ID (int64).
	CtxUserIDKey = "userID"
	// CtxUserKey holds the resolved *entity.User.
	CtxUserKey = "currentUser"
)

// Auth validates the Authorization: Bearer token and resolves the claimed
// user against the store. Every failure — missing header, bad signature,
// expired token, vanished user — aborts with the same 401 so the response
// never reveals which check failed.
func Auth(users repo.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthenticated(c)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}
		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthenticated(c)
			return
		}
		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUserKey, u)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

func abortUnauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	resp := response.Error[any](c, http.StatusUnauthorized, "not authenticated", nil)
	c.AbortWithStatusJSON(resp.Status, resp)
}
