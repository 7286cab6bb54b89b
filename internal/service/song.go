package service

import (
	"context"

	"chuni-tracker/internal/constants"
	"chuni-tracker/internal/domain"
	"chuni-tracker/internal/render"
	"chuni-tracker/internal/repository"

	"github.com/rs/zerolog"
)

type SongService struct {
	music    *repository.MusicRepository
	renderer *render.Renderer
	logger   zerolog.Logger
}

func NewSongService(music *repository.MusicRepository, renderer *render.Renderer, logger zerolog.Logger) *SongService {
	return &SongService{music: music, renderer: renderer, logger: logger}
}

// Lookup returns one payload for the titled song. With a difficulty
// label only that chart is shown; without one, every difficulty of the
// song is aggregated into a single Difficulties block. Unknown labels
// are rejected before the lookup runs.
func (s *SongService) Lookup(ctx context.Context, title, difficulty string) (*render.DisplayPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	chartID := -1
	if difficulty != "" {
		if !domain.IsValidDifficultyLabel(difficulty) {
			return nil, domain.ErrInvalidDifficulty
		}
		chartID = int(domain.DifficultyFromLabel(difficulty))
	}

	s.logger.Info().Str("title", title).Str("difficulty", difficulty).Msg("looking up song")

	charts, err := s.music.FindCharts(ctx, title, chartID)
	if err != nil {
		return nil, err
	}
	if len(charts) == 0 {
		s.logger.Debug().Str("title", title).Msg("no charts matched")
		return nil, domain.ErrSongNotFound
	}

	payload := s.renderer.RenderSong(charts)
	return &payload, nil
}
