package fx

import (
	"chuni-tracker/internal/assets"
	"chuni-tracker/internal/config"
	"chuni-tracker/internal/database"
	"chuni-tracker/internal/logger"
	"chuni-tracker/internal/render"
	"chuni-tracker/internal/repository"
	"chuni-tracker/internal/server"
	"chuni-tracker/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewUserRepository),
	fx.Provide(repository.NewPlaylogRepository),
	fx.Provide(repository.NewMusicRepository),
	// asset host client
	fx.Provide(assets.NewClient),
	// rendering
	fx.Provide(render.NewRenderer),
	// svc
	fx.Provide(service.NewPlaylogService),
	fx.Provide(service.NewSongService),
	// server
	fx.Provide(server.NewServer),
)
