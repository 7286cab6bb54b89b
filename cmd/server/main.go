package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"chuni-tracker/internal/assets"
	"chuni-tracker/internal/config"
	"chuni-tracker/internal/constants"
	fxmodules "chuni-tracker/internal/fx"
	"chuni-tracker/internal/middleware"
	"chuni-tracker/internal/server"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	trackerServer *server.Server,
	assetClient *assets.Client,
	cfg *config.Config,
	db *sql.DB,
	logger zerolog.Logger,
) {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	requestIDMiddleware := middleware.RequestID(logger)
	handler := requestIDMiddleware(c.Handler(trackerServer.Routes()))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: handler,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			probeCtx, cancel := context.WithTimeout(ctx, constants.AssetPingTimeout)
			defer cancel()

			g, probeCtx := errgroup.WithContext(probeCtx)
			g.Go(func() error {
				return db.PingContext(probeCtx)
			})
			g.Go(func() error {
				return assetClient.Ping(probeCtx)
			})
			if err := g.Wait(); err != nil {
				logger.Error().Err(err).Msg("startup probe failed")
				return err
			}

			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database connection")
			}

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
