// Package archive provides SQLite-based persistence for raw per-session
// pitch observations, so a session can be reviewed or replayed later.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package archive

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vslusny/pitchcoach/internal/core"
	"github.com/vslusny/pitchcoach/internal/dispatch"
)

// Store manages the SQLite database connection for the pitch archive.
type Store struct {
	db *sql.DB
}

// SessionInfo summarizes one archived coaching session.
type SessionInfo struct {
	ID         string
	StartedAt  time.Time
	EndedAt    time.Time // zero when the session never finished cleanly
	PitchCount int
	Strikes    int
	Balls      int
	Fastest    float64
}

// Summary carries the closing statistics written when a session ends.
type Summary struct {
	EndedAt    time.Time
	PitchCount int
	Strikes    int
	Balls      int
	Fastest    float64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("archive: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("archive: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("archive: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			started_at REAL NOT NULL,
			ended_at REAL,
			pitch_count INTEGER NOT NULL DEFAULT 0,
			strikes INTEGER NOT NULL DEFAULT 0,
			balls INTEGER NOT NULL DEFAULT 0,
			fastest REAL NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS pitches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			speed REAL NOT NULL DEFAULT 0,
			is_strike INTEGER NOT NULL,
			zone_row INTEGER,
			zone_col INTEGER,
			thrown_at REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_pitches_session ON pitches(session_id);
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

// StartSession registers a new session and returns its identifier.
func (s *Store) StartSession(startedAt time.Time) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, started_at) VALUES (?, ?)",
		id, core.UnixSeconds(startedAt),
	)
	if err != nil {
		return "", fmt.Errorf("archive: cannot start session: %w", err)
	}
	return id, nil
}

// RecordPitch appends one pitch observation to a session.
func (s *Store) RecordPitch(sessionID string, ev core.PitchEvent) error {
	var row, col sql.NullInt64
	if ev.Zoned {
		row = sql.NullInt64{Int64: int64(ev.Zone.Row), Valid: true}
		col = sql.NullInt64{Int64: int64(ev.Zone.Col), Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO pitches (session_id, speed, is_strike, zone_row, zone_col, thrown_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sessionID, ev.Speed, ev.Strike, row, col, core.UnixSeconds(ev.At),
	)
	if err != nil {
		return fmt.Errorf("archive: cannot record pitch: %w", err)
	}
	return nil
}

// FinishSession writes the closing summary for a session.
func (s *Store) FinishSession(sessionID string, sum Summary) error {
	_, err := s.db.Exec(
		`UPDATE sessions
		 SET ended_at = ?, pitch_count = ?, strikes = ?, balls = ?, fastest = ?
		 WHERE id = ?`,
		core.UnixSeconds(sum.EndedAt), sum.PitchCount, sum.Strikes, sum.Balls, sum.Fastest,
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("archive: cannot finish session: %w", err)
	}
	return nil
}

// RecentSessions retrieves the most recently started sessions.
func (s *Store) RecentSessions(limit int) ([]SessionInfo, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, started_at, ended_at, pitch_count, strikes, balls, fastest
		 FROM sessions
		 ORDER BY started_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("archive: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionInfo
	for rows.Next() {
		var info SessionInfo
		var started float64
		var ended sql.NullFloat64
		if err := rows.Scan(&info.ID, &started, &ended, &info.PitchCount,
			&info.Strikes, &info.Balls, &info.Fastest); err != nil {
			return nil, fmt.Errorf("archive: cannot scan row: %w", err)
		}
		info.StartedAt = core.TimeFromUnixSeconds(started)
		if ended.Valid {
			info.EndedAt = core.TimeFromUnixSeconds(ended.Float64)
		}
		sessions = append(sessions, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: row iteration error: %w", err)
	}

	return sessions, nil
}

// SessionPitches retrieves a session's pitches in throw order.
func (s *Store) SessionPitches(sessionID string) ([]core.PitchEvent, error) {
	rows, err := s.db.Query(
		`SELECT speed, is_strike, zone_row, zone_col, thrown_at
		 FROM pitches
		 WHERE session_id = ?
		 ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("archive: cannot query pitches: %w", err)
	}
	defer rows.Close()

	var pitches []core.PitchEvent
	for rows.Next() {
		var ev core.PitchEvent
		var row, col sql.NullInt64
		var thrownAt float64
		if err := rows.Scan(&ev.Speed, &ev.Strike, &row, &col, &thrownAt); err != nil {
			return nil, fmt.Errorf("archive: cannot scan row: %w", err)
		}
		if row.Valid && col.Valid {
			ev.Zone = core.Zone{Row: int(row.Int64), Col: int(col.Int64)}
			ev.Zoned = true
		}
		ev.At = core.TimeFromUnixSeconds(thrownAt)
		pitches = append(pitches, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: row iteration error: %w", err)
	}

	return pitches, nil
}

// Recorder binds a session id to the store so the dispatcher can archive
// pitches without knowing about sessions.
type Recorder struct {
	store     *Store
	sessionID string
}

// Recorder returns a pitch recorder for the given session.
func (s *Store) Recorder(sessionID string) *Recorder {
	return &Recorder{store: s, sessionID: sessionID}
}

// RecordPitch implements dispatch.PitchRecorder.
func (r *Recorder) RecordPitch(ev core.PitchEvent) error {
	return r.store.RecordPitch(r.sessionID, ev)
}

// Ensure Recorder implements the dispatcher's recorder contract.
var _ dispatch.PitchRecorder = (*Recorder)(nil)
