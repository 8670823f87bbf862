package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voteboard/voteboard/internal/container"
	repo "github.com/voteboard/voteboard/internal/domain/repository"
	handlers "github.com/voteboard/voteboard/internal/interface/http"
	"github.com/voteboard/voteboard/internal/interface/middleware"
	"github.com/voteboard/voteboard/pkg/helpers"
)

// PostModule wires post CRUD.
// Public: GET /posts, GET /posts/:id
// Protected: POST /posts, PUT /posts/:id, DELETE /posts/:id
type PostModule struct {
	Handler *handlers.PostHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, users repo.UserRepository, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, Users: users, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/posts", readLimiter, m.Handler.List)
	rg.GET("/posts/:id", readLimiter, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/posts", m.Handler.Create)
		auth.PUT("/posts/:id", m.Handler.Update)
		auth.DELETE("/posts/:id", m.Handler.Delete)
	}
}
