// Package storage provides SQLite-based persistence for save records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// DefaultProfile is used when no player name is given.
const DefaultProfile = "local"

// Store manages the SQLite database connection. One SaveRecord is kept per
// profile; concurrent writers to the same profile race, last write wins.
type Store struct {
	db *sql.DB
}

// ScoreEntry is a leaderboard row together with the profile it belongs to.
type ScoreEntry struct {
	Profile string
	flappy.LeaderboardEntry
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions share the store; one connection serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			name TEXT PRIMARY KEY,
			high_score INTEGER NOT NULL DEFAULT 0,
			total_games INTEGER NOT NULL DEFAULT 0,
			total_score INTEGER NOT NULL DEFAULT 0,
			selected_character TEXT NOT NULL DEFAULT '',
			updated_at INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS leaderboard (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL REFERENCES profiles(name) ON DELETE CASCADE,
			rank INTEGER NOT NULL,
			score INTEGER NOT NULL,
			character TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			session_id TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_leaderboard_rank ON leaderboard(profile, rank);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_top ON leaderboard(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadRecord reads the record of a profile. A profile that was never saved
// yields an empty record and no error.
func (s *Store) LoadRecord(profile string) (flappy.SaveRecord, error) {
	var rec flappy.SaveRecord
	var selected string

	err := s.db.QueryRow(
		`SELECT high_score, total_games, total_score, selected_character
		 FROM profiles WHERE name = ?`,
		profile,
	).Scan(&rec.HighScore, &rec.TotalGames, &rec.TotalScore, &selected)
	if errors.Is(err, sql.ErrNoRows) {
		return flappy.SaveRecord{}, nil
	}
	if err != nil {
		return flappy.SaveRecord{}, fmt.Errorf("storage: cannot query profile %s: %w", profile, err)
	}

	if selected != "" {
		ch, err := flappy.ParseCharacter(selected)
		if err != nil {
			return flappy.SaveRecord{}, fmt.Errorf("storage: profile %s: %w", profile, err)
		}
		rec.SelectedCharacter = ch
	}

	rows, err := s.db.Query(
		`SELECT score, character, name, session_id, created_at
		 FROM leaderboard
		 WHERE profile = ?
		 ORDER BY rank ASC
		 LIMIT ?`,
		profile, flappy.MaxLeaderboard,
	)
	if err != nil {
		return flappy.SaveRecord{}, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return flappy.SaveRecord{}, err
		}
		rec.Leaderboard = append(rec.Leaderboard, e)
	}
	if err := rows.Err(); err != nil {
		return flappy.SaveRecord{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rec, nil
}

// SaveRecord replaces the record of a profile in one transaction.
func (s *Store) SaveRecord(profile string, rec flappy.SaveRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO profiles (name, high_score, total_games, total_score, selected_character, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			high_score = excluded.high_score,
			total_games = excluded.total_games,
			total_score = excluded.total_score,
			selected_character = excluded.selected_character,
			updated_at = excluded.updated_at`,
		profile, rec.HighScore, rec.TotalGames, rec.TotalScore,
		rec.SelectedCharacter.Name(), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile %s: %w", profile, err)
	}

	if _, err := tx.Exec("DELETE FROM leaderboard WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot clear leaderboard: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO leaderboard (profile, rank, score, character, name, session_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for rank, e := range rec.Leaderboard {
		if rank >= flappy.MaxLeaderboard {
			break
		}
		_, err := stmt.Exec(profile, rank, e.Score, e.Character.Name(), e.Name, e.SessionID, e.Timestamp.Unix())
		if err != nil {
			return fmt.Errorf("storage: cannot save leaderboard entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// TopScores retrieves the best leaderboard entries across all profiles.
// Results are ordered by score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = flappy.MaxLeaderboard
	}

	rows, err := s.db.Query(
		`SELECT profile, score, character, name, session_id, created_at
		 FROM leaderboard
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var profile string
		var score, createdAt int64
		var character, name, session string
		if err := rows.Scan(&profile, &score, &character, &name, &session, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e, err := buildEntry(score, character, name, session, createdAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ScoreEntry{Profile: profile, LeaderboardEntry: e})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Profiles lists every saved profile name.
func (s *Store) Profiles() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM profiles ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// ClearProfile deletes a profile and its leaderboard.
func (s *Store) ClearProfile(profile string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM leaderboard WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot clear leaderboard: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM profiles WHERE name = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot clear profile: %w", err)
	}
	return tx.Commit()
}

func scanEntry(rows *sql.Rows) (flappy.LeaderboardEntry, error) {
	var score, createdAt int64
	var character, name, session string
	if err := rows.Scan(&score, &character, &name, &session, &createdAt); err != nil {
		return flappy.LeaderboardEntry{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	return buildEntry(score, character, name, session, createdAt)
}

func buildEntry(score int64, character, name, session string, createdAt int64) (flappy.LeaderboardEntry, error) {
	ch, err := flappy.ParseCharacter(character)
	if err != nil {
		return flappy.LeaderboardEntry{}, fmt.Errorf("storage: leaderboard row: %w", err)
	}
	return flappy.LeaderboardEntry{
		Score:     int(score),
		Character: ch,
		Timestamp: time.Unix(createdAt, 0),
		Name:      name,
		SessionID: session,
	}, nil
}
