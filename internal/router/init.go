package router

import (
	"github.com/voteboard/voteboard/internal/application"
	"github.com/voteboard/voteboard/internal/container"
	pginfra "github.com/voteboard/voteboard/internal/infrastructure/postgres"
	handlers "github.com/voteboard/voteboard/internal/interface/http"
	"github.com/voteboard/voteboard/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	postRepo := pginfra.NewPostRepository(pool)
	voteRepo := pginfra.NewVoteRepository(pool)

	authSvc := application.NewAuthService(
		userRepo,
		container.GetJWT(),
		logger,
		container.GetRabbitPub(),
		cfg.MailSendEnabled,
	)
	postSvc := application.NewPostService(postRepo, logger)
	voteSvc := application.NewVoteService(postRepo, voteRepo, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(authSvc, logger)))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), userRepo, container.GetJWT()))
	r.Add(modules.NewVoteModule(handlers.NewVoteHandler(voteSvc, logger), userRepo, container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
