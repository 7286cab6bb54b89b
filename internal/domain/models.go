package domain

import (
	"time"
)

// PlayRecord is one row of the recent-play query: a playlog entry joined
// to its chart metadata and the owning account.
type PlayRecord struct {
	MaxCombo     int
	IsFullCombo  bool
	PlayedAt     time.Time
	PlayerRating int
	IsAllJustice bool
	Score        int

	JudgeHeaven   int
	JudgeGuilty   int
	JudgeJustice  int
	JudgeAttack   int
	JudgeCritical int

	IsClear     bool
	SkillID     int
	IsNewRecord bool

	ChartID    int
	Title      string
	Level      int
	Genre      string
	JacketPath *string
	Artist     string

	// Username is the owning account's name; empty when the caller did
	// not ask for it.
	Username string
}

// CriticalJustice is the combined top-judgement total shown in the
// judgement summary.
func (r *PlayRecord) CriticalJustice() int {
	return r.JudgeCritical + r.JudgeHeaven
}

// SongChart is one difficulty variant of a song in the static catalog.
type SongChart struct {
	ChartID    int
	Title      string
	Level      int
	Genre      string
	JacketPath *string
	Artist     string
}
