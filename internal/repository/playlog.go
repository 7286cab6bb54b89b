package repository

import (
	"context"
	"database/sql"
	"fmt"

	"chuni-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type PlaylogRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewPlaylogRepository(db *sql.DB, logger zerolog.Logger) *PlaylogRepository {
	return &PlaylogRepository{db: db, logger: logger}
}

// Two fixed templates instead of appending clauses to a built string:
// the title filter is the only variable part of the query.
const recentPlaysBase = `
SELECT
    csp.maxCombo, csp.isFullCombo, csp.userPlayDate, csp.playerRating,
    csp.isAllJustice, csp.score,
    csp.judgeHeaven, csp.judgeGuilty, csp.judgeJustice, csp.judgeAttack, csp.judgeCritical,
    csp.isClear, csp.skillId, csp.isNewRecord,
    csm.chartId, csm.title, csm.level, csm.genre, csm.jacketPath, csm.artist,
    au.username
FROM chuni_score_playlog csp
JOIN chuni_profile_data d ON csp.user = d.user
JOIN chuni_static_music csm ON csp.musicId = csm.songId AND csp.level = csm.chartId AND csm.version = d.version
JOIN aime_card a ON d.user = a.user
JOIN aime_user au ON a.user = au.id
WHERE a.user = ? AND d.version = ?`

const recentPlaysTail = `
ORDER BY csp.userPlayDate DESC
LIMIT ?`

const (
	recentPlaysQuery         = recentPlaysBase + recentPlaysTail
	recentPlaysFilteredQuery = recentPlaysBase + ` AND csm.title LIKE ?` + recentPlaysTail
)

// FetchRecent returns the user's most recent plays for a version,
// newest first, at most limit rows. A non-empty titleFilter restricts
// results to titles containing it as a substring; case sensitivity
// follows the store's LIKE collation. When includeUsername is false the
// Username field is blanked so the rendered payload omits the Played-by
// field. An empty result is not an error.
func (r *PlaylogRepository) FetchRecent(ctx context.Context, userID int64, version int, titleFilter string, limit int, includeUsername bool) ([]domain.PlayRecord, error) {
	var rows *sql.Rows
	var err error
	if titleFilter != "" {
		rows, err = r.db.QueryContext(ctx, recentPlaysFilteredQuery, userID, version, "%"+titleFilter+"%", limit)
	} else {
		rows, err = r.db.QueryContext(ctx, recentPlaysQuery, userID, version, limit)
	}
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Int("version", version).Msg("failed to query recent plays")
		return nil, fmt.Errorf("failed to query recent plays: %w", err)
	}
	defer rows.Close()

	records := []domain.PlayRecord{}
	for rows.Next() {
		var rec domain.PlayRecord
		var jacketPath sql.NullString
		err := rows.Scan(
			&rec.MaxCombo, &rec.IsFullCombo, &rec.PlayedAt, &rec.PlayerRating,
			&rec.IsAllJustice, &rec.Score,
			&rec.JudgeHeaven, &rec.JudgeGuilty, &rec.JudgeJustice, &rec.JudgeAttack, &rec.JudgeCritical,
			&rec.IsClear, &rec.SkillID, &rec.IsNewRecord,
			&rec.ChartID, &rec.Title, &rec.Level, &rec.Genre, &jacketPath, &rec.Artist,
			&rec.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan play record: %w", err)
		}
		if jacketPath.Valid {
			rec.JacketPath = &jacketPath.String
		}
		if !includeUsername {
			rec.Username = ""
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read play records: %w", err)
	}

	r.logger.Debug().
		Int64("user_id", userID).
		Int("version", version).
		Str("title_filter", titleFilter).
		Int("count", len(records)).
		Msg("fetched recent plays")

	return records, nil
}
