package repository

import (
	"context"
	"database/sql"
	"fmt"

	"chuni-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type MusicRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMusicRepository(db *sql.DB, logger zerolog.Logger) *MusicRepository {
	return &MusicRepository{db: db, logger: logger}
}

const songChartsQuery = `
SELECT chartId, title, level, genre, jacketPath, artist
FROM chuni_static_music
WHERE title LIKE ?
ORDER BY chartId`

const songChartByDifficultyQuery = `
SELECT chartId, title, level, genre, jacketPath, artist
FROM chuni_static_music
WHERE title LIKE ? AND chartId = ?
ORDER BY chartId`

// FindCharts returns every difficulty of the titled song, ordered by
// chart id. Title matching is LIKE without added wildcards, so the
// match is exact under the store's collation. chartID below zero means
// all difficulties.
func (r *MusicRepository) FindCharts(ctx context.Context, title string, chartID int) ([]domain.SongChart, error) {
	var rows *sql.Rows
	var err error
	if chartID >= 0 {
		rows, err = r.db.QueryContext(ctx, songChartByDifficultyQuery, title, chartID)
	} else {
		rows, err = r.db.QueryContext(ctx, songChartsQuery, title)
	}
	if err != nil {
		r.logger.Error().Err(err).Str("title", title).Msg("failed to query song charts")
		return nil, fmt.Errorf("failed to query song charts: %w", err)
	}
	defer rows.Close()

	charts := []domain.SongChart{}
	for rows.Next() {
		var chart domain.SongChart
		var jacketPath sql.NullString
		err := rows.Scan(&chart.ChartID, &chart.Title, &chart.Level, &chart.Genre, &jacketPath, &chart.Artist)
		if err != nil {
			return nil, fmt.Errorf("failed to scan song chart: %w", err)
		}
		if jacketPath.Valid {
			chart.JacketPath = &jacketPath.String
		}
		charts = append(charts, chart)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read song charts: %w", err)
	}

	return charts, nil
}
