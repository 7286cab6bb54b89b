package repository

import (
	"context"
	"database/sql"
	"fmt"

	"chuni-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type UserRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewUserRepository(db *sql.DB, logger zerolog.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

const resolveUserQuery = `SELECT id FROM aime_user WHERE username = ?`

// ResolveID maps a username to its account id. Exact match only; the
// store's collation decides case sensitivity.
func (r *UserRepository) ResolveID(ctx context.Context, username string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, resolveUserQuery, username).Scan(&id)
	if err == sql.ErrNoRows {
		r.logger.Debug().Str("username", username).Msg("username has no account")
		return 0, domain.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error().Err(err).Str("username", username).Msg("failed to resolve user")
		return 0, fmt.Errorf("failed to resolve user: %w", err)
	}
	return id, nil
}
