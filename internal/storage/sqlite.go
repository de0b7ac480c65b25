// Package storage provides SQLite-based persistence for RandomPac sessions
// and player profiles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/randompac/internal/core"
)

const timeLayout = "2006-01-02 15:04:05"

// ErrPlayerNotFound is returned by PlayerStats for a player with no sessions.
var ErrPlayerNotFound = errors.New("storage: player not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished game.
type SessionRecord struct {
	ID         string
	Player     string
	Game       string
	Score      int
	Duration   time.Duration
	Won        bool
	Algorithm  string
	Seed       uint64
	Difficulty string
	Level      string
	CreatedAt  time.Time
}

// PlayerStats is the profile of one player, aggregated over their sessions.
type PlayerStats struct {
	Player         string
	Games          int
	Wins           int
	BestScore      int
	TotalTime      time.Duration
	BestAlgorithm  string // Algorithm of the best-scoring session
	BestDifficulty string // Difficulty of the best-scoring session
	LastPlayed     time.Time
}

// NewRecord builds a record for a finished game.
func NewRecord(player string, o core.Outcome) SessionRecord {
	return SessionRecord{
		Player:     player,
		Game:       o.Game,
		Score:      o.Score,
		Duration:   o.Duration,
		Won:        o.Won,
		Algorithm:  o.Algorithm,
		Seed:       o.Seed,
		Difficulty: o.Difficulty,
		Level:      o.Level,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
		CREATE TABLE IF NOT EXISTS sessions (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			game TEXT NOT NULL,
			score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			algorithm TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT '',
			level TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_player ON sessions(player);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(score DESC);
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

// SaveSession records a finished game and returns its ID. A missing ID is
// generated and a zero CreatedAt means now.
func (s *Store) SaveSession(rec SessionRecord) (string, error) {
	if rec.Player == "" {
		return "", fmt.Errorf("storage: cannot save session: empty player name")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions
		 (id, player, game, score, duration_ms, won, algorithm, seed, difficulty, level, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Player,
		rec.Game,
		rec.Score,
		rec.Duration.Milliseconds(),
		rec.Won,
		rec.Algorithm,
		int64(rec.Seed), // bit pattern preserved; SQLite integers are signed
		rec.Difficulty,
		rec.Level,
		rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return rec.ID, nil
}

const sessionColumns = `id, player, game, score, duration_ms, won, algorithm, seed, difficulty, level, created_at`

// TopSessions retrieves the best N sessions of all players.
// Ties keep insertion order.
func (s *Store) TopSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT `+sessionColumns+` FROM sessions ORDER BY score DESC, seq ASC LIMIT ?`,
		limit,
	)
}

// RecentSessions retrieves the latest N sessions of one player.
func (s *Store) RecentSessions(player string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(
		`SELECT `+sessionColumns+` FROM sessions WHERE player = ? ORDER BY seq DESC LIMIT ?`,
		player, limit,
	)
}

func (s *Store) querySessions(query string, args ...any) ([]SessionRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var (
			r          SessionRecord
			durationMs int64
			seed       int64
			createdAt  any
		)
		if err := rows.Scan(&r.ID, &r.Player, &r.Game, &r.Score, &durationMs, &r.Won,
			&r.Algorithm, &seed, &r.Difficulty, &r.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.Seed = uint64(seed)
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// HighScore returns the highest stored score. Returns 0 if no sessions exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM sessions").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// PlayerStats retrieves the profile of one player.
func (s *Store) PlayerStats(player string) (*PlayerStats, error) {
	stats := &PlayerStats{Player: player}
	var (
		totalMs    int64
		lastPlayed any
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(SUM(duration_ms), 0), MAX(created_at)
		 FROM sessions WHERE player = ?`,
		player,
	).Scan(&stats.Games, &stats.Wins, &stats.BestScore, &totalMs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	if stats.Games == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, player)
	}
	stats.TotalTime = time.Duration(totalMs) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)

	if err := s.fillBest(stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// fillBest sets the algorithm and difficulty of the player's best session.
func (s *Store) fillBest(stats *PlayerStats) error {
	err := s.db.QueryRow(
		`SELECT algorithm, difficulty FROM sessions
		 WHERE player = ? ORDER BY score DESC, seq ASC LIMIT 1`,
		stats.Player,
	).Scan(&stats.BestAlgorithm, &stats.BestDifficulty)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("storage: cannot get best session: %w", err)
	}
	return nil
}

// AllPlayers retrieves every player profile, best score first.
func (s *Store) AllPlayers() ([]PlayerStats, error) {
	rows, err := s.db.Query(
		`SELECT player, COUNT(*), SUM(won), MAX(score), SUM(duration_ms), MAX(created_at)
		 FROM sessions
		 GROUP BY player
		 ORDER BY MAX(score) DESC, player ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get players: %w", err)
	}

	var players []PlayerStats
	for rows.Next() {
		var (
			p          PlayerStats
			totalMs    int64
			lastPlayed any
		)
		if err := rows.Scan(&p.Player, &p.Games, &p.Wins, &p.BestScore, &totalMs, &lastPlayed); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan player row: %w", err)
		}
		p.TotalTime = time.Duration(totalMs) * time.Millisecond
		p.LastPlayed = parseTime(lastPlayed)
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	for i := range players {
		if err := s.fillBest(&players[i]); err != nil {
			return nil, err
		}
	}
	return players, nil
}

// ClearPlayer deletes every session of a player and returns how many were removed.
func (s *Store) ClearPlayer(player string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM sessions WHERE player = ?", player)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear player: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n, nil
}

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
