package flappy

import (
	"testing"
	"time"
)

func TestAddScoreOrderingAndCap(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var rec SaveRecord

	scores := []int{5, 12, 3, 12, 40, 0, 7, 9, 1, 18, 22, 6, 2}
	for i, s := range scores {
		rec = AddScore(rec, LeaderboardEntry{
			Score:     s,
			Character: CharacterBlueBird,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		if len(rec.Leaderboard) > MaxLeaderboard {
			t.Fatalf("leaderboard grew to %d entries", len(rec.Leaderboard))
		}
		for j := 1; j < len(rec.Leaderboard); j++ {
			if rec.Leaderboard[j-1].Score < rec.Leaderboard[j].Score {
				t.Fatalf("leaderboard not descending after %d games: %v", i+1, rec.Leaderboard)
			}
		}
	}

	if len(rec.Leaderboard) != MaxLeaderboard {
		t.Errorf("leaderboard has %d entries, expected %d", len(rec.Leaderboard), MaxLeaderboard)
	}
	if rec.TotalGames != len(scores) {
		t.Errorf("TotalGames = %d, expected %d", rec.TotalGames, len(scores))
	}
	if rec.TotalScore != 137 {
		t.Errorf("TotalScore = %d, expected 137", rec.TotalScore)
	}
	if rec.HighScore != 40 {
		t.Errorf("HighScore = %d, expected 40", rec.HighScore)
	}
	if last := rec.Leaderboard[MaxLeaderboard-1].Score; last != 3 {
		t.Errorf("lowest kept score = %d, expected 3", last)
	}
}

func TestAddScoreTiesKeepOlderFirst(t *testing.T) {
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	rec := AddScore(SaveRecord{}, LeaderboardEntry{Score: 10, Timestamp: first})
	rec = AddScore(rec, LeaderboardEntry{Score: 10, Timestamp: second})

	if !rec.Leaderboard[0].Timestamp.Equal(first) {
		t.Error("older entry should rank above a later tie")
	}
}

func TestAddScoreDoesNotMutateInput(t *testing.T) {
	rec := AddScore(SaveRecord{}, LeaderboardEntry{Score: 1})
	before := rec.Leaderboard[0]

	_ = AddScore(rec, LeaderboardEntry{Score: 99})
	if rec.Leaderboard[0] != before || rec.TotalGames != 1 || len(rec.Leaderboard) != 1 {
		t.Error("AddScore modified its input record")
	}
}

func TestAverageScore(t *testing.T) {
	if got := (SaveRecord{}).AverageScore(); got != 0 {
		t.Errorf("AverageScore of empty record = %f", got)
	}
	rec := SaveRecord{TotalGames: 4, TotalScore: 10}
	if got := rec.AverageScore(); got != 2.5 {
		t.Errorf("AverageScore = %f, expected 2.5", got)
	}
}

func TestTop(t *testing.T) {
	rec := SaveRecord{Leaderboard: make([]LeaderboardEntry, 3)}
	if len(rec.Top(5)) != 3 || len(rec.Top(2)) != 2 {
		t.Error("Top should cap at the leaderboard length")
	}
}
