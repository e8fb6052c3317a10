// Package storage provides SQLite-based persistence for the expedition journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout is how SQLite's CURRENT_TIMESTAMP formats datetimes.
const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// Expedition is one finished walk through a world.
type Expedition struct {
	ID        int64
	Player    string
	Seed      int64
	WorldW    int
	WorldH    int
	Steps     int
	Bumps     int
	Visited   int
	Duration  time.Duration
	Sightings map[string]int // Distinct animals seen, by kind name
	CreatedAt time.Time
}

// TotalSightings returns the number of distinct animals seen.
func (e Expedition) TotalSightings() int {
	n := 0
	for _, c := range e.Sightings {
		n += c
	}
	return n
}

// Totals aggregates the whole journal.
type Totals struct {
	Expeditions  int
	Players      int
	Steps        int
	LongestSteps int
	Duration     time.Duration
	Sightings    map[string]int
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

	// Test connection
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
		CREATE TABLE IF NOT EXISTS expeditions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			seed INTEGER NOT NULL,
			world_w INTEGER NOT NULL,
			world_h INTEGER NOT NULL,
			steps INTEGER NOT NULL DEFAULT 0,
			bumps INTEGER NOT NULL DEFAULT 0,
			visited INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_expeditions_created ON expeditions(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_expeditions_steps ON expeditions(steps DESC);

		CREATE TABLE IF NOT EXISTS sightings (
			expedition_id INTEGER NOT NULL REFERENCES expeditions(id) ON DELETE CASCADE,
			kind TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (expedition_id, kind)
		);
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

// SaveExpedition records an expedition and its sightings in one transaction.
// A zero CreatedAt is stamped with the current time.
// Returns the ID of the inserted record.
func (s *Store) SaveExpedition(e Expedition) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	result, err := tx.Exec(
		`INSERT INTO expeditions
		 (player, seed, world_w, world_h, steps, bumps, visited, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Player, e.Seed, e.WorldW, e.WorldH, e.Steps, e.Bumps, e.Visited,
		e.Duration.Milliseconds(), e.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save expedition: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for kind, count := range e.Sightings {
		if count <= 0 {
			continue
		}
		if _, err := tx.Exec(
			"INSERT INTO sightings (expedition_id, kind, count) VALUES (?, ?, ?)",
			id, kind, count,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save sighting %s: %w", kind, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit expedition: %w", err)
	}
	return id, nil
}

// RecentExpeditions retrieves the latest expeditions, newest first.
func (s *Store) RecentExpeditions(limit int) ([]Expedition, error) {
	return s.queryExpeditions("ORDER BY created_at DESC, id DESC", limit)
}

// LongestExpeditions retrieves the expeditions with the most steps.
func (s *Store) LongestExpeditions(limit int) ([]Expedition, error) {
	return s.queryExpeditions("ORDER BY steps DESC, id ASC", limit)
}

func (s *Store) queryExpeditions(order string, limit int) ([]Expedition, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, seed, world_w, world_h, steps, bumps, visited, duration_ms, created_at
		 FROM expeditions `+order+` LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query expeditions: %w", err)
	}
	defer rows.Close()

	var list []Expedition
	for rows.Next() {
		var e Expedition
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Seed, &e.WorldW, &e.WorldH,
			&e.Steps, &e.Bumps, &e.Visited, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	for i := range list {
		sightings, err := s.Sightings(list[i].ID)
		if err != nil {
			return nil, err
		}
		list[i].Sightings = sightings
	}
	return list, nil
}

// Sightings returns the sightings recorded for one expedition.
func (s *Store) Sightings(expeditionID int64) (map[string]int, error) {
	rows, err := s.db.Query(
		"SELECT kind, count FROM sightings WHERE expedition_id = ?",
		expeditionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sightings: %w", err)
	}
	defer rows.Close()
	return scanCounts(rows)
}

// Totals aggregates every expedition in the journal.
func (s *Store) Totals() (*Totals, error) {
	t := &Totals{}
	var steps, longest, durationMs sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player), SUM(steps), MAX(steps), SUM(duration_ms)
		 FROM expeditions`,
	).Scan(&t.Expeditions, &t.Players, &steps, &longest, &durationMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query totals: %w", err)
	}
	t.Steps = int(steps.Int64)
	t.LongestSteps = int(longest.Int64)
	t.Duration = time.Duration(durationMs.Int64) * time.Millisecond

	rows, err := s.db.Query("SELECT kind, SUM(count) FROM sightings GROUP BY kind")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sighting totals: %w", err)
	}
	defer rows.Close()
	if t.Sightings, err = scanCounts(rows); err != nil {
		return nil, err
	}
	return t, nil
}

func scanCounts(rows *sql.Rows) (map[string]int, error) {
	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[kind] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return counts, nil
}

// SortedKinds returns the keys of a sightings map in name order.
func SortedKinds(counts map[string]int) []string {
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
