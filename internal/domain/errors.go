package domain

import "errors"

var (
	// ErrUserNotFound means the username has no matching account.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoRecentPlays means the account exists but has no plays
	// matching the requested version and filter.
	ErrNoRecentPlays = errors.New("no recent plays")

	// ErrSongNotFound means no chart in the static catalog matched the
	// requested title.
	ErrSongNotFound = errors.New("song not found")

	// ErrInvalidDifficulty means the supplied difficulty label names no
	// known difficulty.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)
