package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voteboard/voteboard/internal/container"
	handlers "github.com/voteboard/voteboard/internal/interface/http"
	"github.com/voteboard/voteboard/internal/interface/middleware"
)

// AuthModule registers POST /login.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil) // 10 req/min per IP

	rg.POST("/login", loginLimiter, m.Handler.Login)
}
