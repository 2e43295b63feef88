package flappy

import (
	"cmp"
	"slices"
	"time"
)

// MaxLeaderboard caps the number of leaderboard entries kept.
const MaxLeaderboard = 10

// LeaderboardEntry is one finished session.
type LeaderboardEntry struct {
	Score     int
	Character Character
	Timestamp time.Time
	Name      string
	SessionID string
}

// SaveRecord is the persisted progress of one profile.
type SaveRecord struct {
	HighScore         int
	Leaderboard       []LeaderboardEntry // sorted by score, descending
	TotalGames        int
	TotalScore        int
	SelectedCharacter Character
}

// AverageScore returns TotalScore / TotalGames, or 0 before the first game.
func (r SaveRecord) AverageScore() float64 {
	if r.TotalGames == 0 {
		return 0
	}
	return float64(r.TotalScore) / float64(r.TotalGames)
}

// Top returns up to n leaderboard entries.
func (r SaveRecord) Top(n int) []LeaderboardEntry {
	if n > len(r.Leaderboard) {
		n = len(r.Leaderboard)
	}
	return r.Leaderboard[:n]
}

// AddScore returns rec with e recorded: the entry is inserted into the
// leaderboard (stable, descending, capped at MaxLeaderboard), totals are
// bumped and the high score raised if exceeded. rec is not modified.
func AddScore(rec SaveRecord, e LeaderboardEntry) SaveRecord {
	board := make([]LeaderboardEntry, 0, len(rec.Leaderboard)+1)
	board = append(board, rec.Leaderboard...)
	board = append(board, e)
	slices.SortStableFunc(board, func(a, b LeaderboardEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(board) > MaxLeaderboard {
		board = board[:MaxLeaderboard]
	}

	rec.Leaderboard = board
	rec.TotalGames++
	rec.TotalScore += e.Score
	rec.HighScore = max(rec.HighScore, e.Score)
	return rec
}

// Gateway loads and saves a SaveRecord.
//
// Load never fails: missing or corrupt data yields an empty record. Save
// errors are reported to the caller, which logs them and carries on with
// its in-memory record.
type Gateway interface {
	Load() SaveRecord
	Save(SaveRecord) error
}

// nopGateway keeps nothing.
type nopGateway struct{}

func (nopGateway) Load() SaveRecord      { return SaveRecord{} }
func (nopGateway) Save(SaveRecord) error { return nil }
