package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voteboard/voteboard/internal/container"
	handlers "github.com/voteboard/voteboard/internal/interface/http"
	"github.com/voteboard/voteboard/internal/interface/middleware"
)

// UserModule registers registration and the public user view.
// Public: POST /users, GET /users/:id
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	readLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.GET("/users/:id", readLimiter, m.Handler.GetUser)
}
