package storage

import (
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// ProfileGateway binds a Store to one profile.
type ProfileGateway struct {
	store   *Store
	profile string
	log     *log.Logger
}

// Gateway returns the persistence gateway of a profile. An empty profile
// maps to DefaultProfile.
func (s *Store) Gateway(profile string, logger *log.Logger) *ProfileGateway {
	if profile == "" {
		profile = DefaultProfile
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ProfileGateway{store: s, profile: profile, log: logger}
}

// Load reads the profile's record. Failures are logged and yield an empty
// record.
func (g *ProfileGateway) Load() flappy.SaveRecord {
	rec, err := g.store.LoadRecord(g.profile)
	if err != nil {
		g.log.Warn("failed to load save data, starting fresh", "profile", g.profile, "err", err)
		return flappy.SaveRecord{}
	}
	g.log.Debug("loaded save data", "profile", g.profile, "games", rec.TotalGames, "high", rec.HighScore)
	return rec
}

// Save writes the profile's record.
func (g *ProfileGateway) Save(rec flappy.SaveRecord) error {
	return g.store.SaveRecord(g.profile, rec)
}

// Memory is an in-process gateway. It is used when the database cannot be
// opened and in tests.
type Memory struct {
	mu    sync.Mutex
	rec   flappy.SaveRecord
	saves int
}

// NewMemory returns a gateway seeded with rec.
func NewMemory(rec flappy.SaveRecord) *Memory {
	return &Memory{rec: cloneRecord(rec)}
}

// Load returns a copy of the stored record.
func (m *Memory) Load() flappy.SaveRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneRecord(m.rec)
}

// Save stores a copy of rec.
func (m *Memory) Save(rec flappy.SaveRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = cloneRecord(rec)
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func cloneRecord(rec flappy.SaveRecord) flappy.SaveRecord {
	rec.Leaderboard = slices.Clone(rec.Leaderboard)
	return rec
}
