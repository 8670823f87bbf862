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

// VoteModule wires vote add/remove, both protected.
type VoteModule struct {
	Handler *handlers.VoteHandler
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
}

func NewVoteModule(h *handlers.VoteHandler, users repo.UserRepository, jwt *helpers.JWTManager) *VoteModule {
	return &VoteModule{Handler: h, Users: users, JWT: jwt}
}

func (m *VoteModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/votes", m.Handler.Add)
		auth.DELETE("/votes", m.Handler.Remove)
	}
}
