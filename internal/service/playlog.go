package service

import (
	"context"

	"chuni-tracker/internal/constants"
	"chuni-tracker/internal/domain"
	"chuni-tracker/internal/render"
	"chuni-tracker/internal/repository"

	"github.com/rs/zerolog"
)

type PlaylogService struct {
	users    *repository.UserRepository
	playlogs *repository.PlaylogRepository
	renderer *render.Renderer
	logger   zerolog.Logger
}

func NewPlaylogService(users *repository.UserRepository, playlogs *repository.PlaylogRepository, renderer *render.Renderer, logger zerolog.Logger) *PlaylogService {
	return &PlaylogService{users: users, playlogs: playlogs, renderer: renderer, logger: logger}
}

// GetMostRecentPlay resolves the username and returns the player's
// single most recent play for the version, optionally restricted to
// titles containing titleFilter. The payload carries the Played-by
// field.
func (s *PlaylogService) GetMostRecentPlay(ctx context.Context, username string, version int, titleFilter string) (*render.DisplayPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().
		Str("username", username).
		Int("version", version).
		Str("title_filter", titleFilter).
		Msg("getting most recent play")

	userID, err := s.users.ResolveID(ctx, username)
	if err != nil {
		return nil, err
	}

	records, err := s.playlogs.FetchRecent(ctx, userID, version, titleFilter, 1, true)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		s.logger.Debug().Str("username", username).Msg("no plays matched")
		return nil, domain.ErrNoRecentPlays
	}

	payload := s.renderer.Render(records[0])
	return &payload, nil
}

// GetRecentPlays returns up to count recent plays, newest first,
// without the Played-by field. count is clamped to the supported
// maximum.
func (s *PlaylogService) GetRecentPlays(ctx context.Context, username string, version int, count int) ([]render.DisplayPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if count < 1 || count > constants.RecentPlaysMax {
		count = constants.RecentPlaysMax
	}

	s.logger.Info().
		Str("username", username).
		Int("version", version).
		Int("count", count).
		Msg("getting recent plays")

	userID, err := s.users.ResolveID(ctx, username)
	if err != nil {
		return nil, err
	}

	records, err := s.playlogs.FetchRecent(ctx, userID, version, "", count, false)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		s.logger.Debug().Str("username", username).Msg("no plays matched")
		return nil, domain.ErrNoRecentPlays
	}

	return s.renderer.RenderBatch(records), nil
}
