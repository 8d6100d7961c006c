// Package ledger provides the durable, game-keyed score ledger.
// Scores live in a single JSON file; every mutation is flushed with a
// temp-file-then-atomic-rename so a crash never leaves a torn file.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vslusny/pitchcoach/internal/core"
	"github.com/vslusny/pitchcoach/internal/engine"
	"github.com/vslusny/pitchcoach/internal/metrics"
)

// ScoreEntry is a single persisted score with the time it was earned.
type ScoreEntry struct {
	Score int
	At    time.Time
}

type scoreEntryWire struct {
	Score     int     `json:"score"`
	Timestamp float64 `json:"timestamp"`
}

// MarshalJSON encodes the entry in the ledger wire format
// ({"score": n, "timestamp": <unix seconds>}).
func (e ScoreEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(scoreEntryWire{Score: e.Score, Timestamp: core.UnixSeconds(e.At)})
}

// UnmarshalJSON decodes the ledger wire format.
func (e *ScoreEntry) UnmarshalJSON(data []byte) error {
	var w scoreEntryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.Score = w.Score
	e.At = core.TimeFromUnixSeconds(w.Timestamp)
	return nil
}

// record is the in-memory state of one game.
type record struct {
	best       int
	totalGames int
	history    []ScoreEntry
}

// Store owns the mapping from game identifier to score record.
// All mutating operations are guarded so the read-modify-write on
// best/total/history stays a single critical section when the store is
// shared between a UI thread and the pitch-processing thread.
type Store struct {
	mu     sync.Mutex
	path   string
	games  map[string]*record
	logger *log.Logger
}

// Open creates a store backed by the JSON file at path, loading any
// existing ledger. A missing or unparsable file is not fatal: the store
// starts from defaults and the problem is logged.
func Open(path string) *Store {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ledger",
		Level:           log.GetLevel(),
	})

	// Expand ~ to home directory
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		} else {
			logger.Warn("cannot expand home directory", "error", err)
		}
	}

	s := &Store{
		path:   path,
		games:  defaultRecords(),
		logger: logger,
	}
	s.load()
	return s
}

func defaultRecords() map[string]*record {
	games := make(map[string]*record, len(gameSpecs))
	for id, spec := range gameSpecs {
		games[id] = &record{
			best:    spec.defaultBest,
			history: make([]ScoreEntry, 0),
		}
	}
	return games
}

// load reads the ledger file into memory. Defaults stay in place when the
// file is absent; a corrupt file is logged and ignored.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("cannot read ledger, starting fresh", "path", s.path, "error", err)
		}
		return
	}

	games, err := decodeLedger(data)
	if err != nil {
		s.logger.Warn("corrupt ledger, starting fresh", "path", s.path, "error", err)
		return
	}
	s.games = games
}

func decodeLedger(data []byte) (map[string]*record, error) {
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	games := defaultRecords()
	for id, spec := range gameSpecs {
		fields, ok := raw[id]
		if !ok {
			continue
		}
		rec := games[id]
		if v, ok := fields["total_games"]; ok {
			if err := json.Unmarshal(v, &rec.totalGames); err != nil {
				return nil, fmt.Errorf("ledger: %s.total_games: %w", id, err)
			}
		}
		if v, ok := fields["history"]; ok {
			if err := json.Unmarshal(v, &rec.history); err != nil {
				return nil, fmt.Errorf("ledger: %s.history: %w", id, err)
			}
			if rec.history == nil {
				rec.history = make([]ScoreEntry, 0)
			}
		}
		if v, ok := fields[spec.bestKey]; ok {
			if err := json.Unmarshal(v, &rec.best); err != nil {
				return nil, fmt.Errorf("ledger: %s.%s: %w", id, spec.bestKey, err)
			}
		}
	}
	return games, nil
}

func (s *Store) encodeLocked() ([]byte, error) {
	out := make(map[string]map[string]any, len(gameSpecs))
	for id, spec := range gameSpecs {
		rec := s.games[id]
		out[id] = map[string]any{
			"total_games": rec.totalGames,
			"history":     rec.history,
			spec.bestKey:  rec.best,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// SaveScore appends the score to the game's history, bumps the play
// counter, updates the best value when the score strictly beats it under
// the game's comparison rule, and flushes the ledger to disk.
// An unknown game identifier is a logged no-op.
func (s *Store) SaveScore(gameID string, score int, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	spec, ok := gameSpecs[gameID]
	if !ok {
		s.logger.Warn("score for unknown game dropped", "game", gameID, "score", score)
		return
	}

	rec := s.games[gameID]
	rec.history = append(rec.history, ScoreEntry{Score: score, At: at})
	if len(rec.history) > historyLimit {
		rec.history = rec.history[len(rec.history)-historyLimit:]
	}
	rec.totalGames++
	if spec.better(score, rec.best) {
		rec.best = score
	}

	metrics.Milestones.WithLabelValues(gameID).Inc()
	s.persistLocked()
}

// persistLocked writes the full ledger to a temp file in the target
// directory and renames it over the target. On failure the in-memory
// state stays authoritative; the next successful save reconciles.
func (s *Store) persistLocked() {
	data, err := s.encodeLocked()
	if err != nil {
		s.logger.Warn("cannot encode ledger, keeping in-memory state", "error", err)
		metrics.LedgerWriteFailures.Inc()
		return
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Warn("cannot create ledger directory, keeping in-memory state", "dir", dir, "error", err)
		metrics.LedgerWriteFailures.Inc()
		return
	}

	tmp, err := os.CreateTemp(dir, ".scores-*.json")
	if err != nil {
		s.logger.Warn("cannot create temp ledger, keeping in-memory state", "error", err)
		metrics.LedgerWriteFailures.Inc()
		return
	}

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), s.path)
	}
	if err != nil {
		os.Remove(tmp.Name())
		s.logger.Warn("cannot write ledger, keeping in-memory state", "path", s.path, "error", err)
		metrics.LedgerWriteFailures.Inc()
		return
	}

	metrics.LedgerWrites.Inc()
}

// HighScore returns the game's current best value: the win count for
// tic_tac_toe, cumulative/hit high scores for the scoring games, and the
// fewest-pitches value (sentinel 999 before any run) for around_world.
// Unknown games report 0.
func (s *Store) HighScore(gameID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.games[gameID]
	if !ok {
		return 0
	}
	return rec.best
}

// TotalGames returns how many scores were ever saved for the game,
// or 0 if the game is unknown.
func (s *Store) TotalGames(gameID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.games[gameID]
	if !ok {
		return 0
	}
	return rec.totalGames
}

// SessionScores returns the ordered history entries recorded at or after
// sessionStart.
func (s *Store) SessionScores(gameID string, sessionStart time.Time) []ScoreEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.games[gameID]
	if !ok {
		return nil
	}

	var entries []ScoreEntry
	for _, e := range rec.history {
		if !e.At.Before(sessionStart) {
			entries = append(entries, e)
		}
	}
	return entries
}

// History returns a copy of the game's full bounded score history.
func (s *Store) History(gameID string) []ScoreEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.games[gameID]
	if !ok {
		return nil
	}
	out := make([]ScoreEntry, len(rec.history))
	copy(out, rec.history)
	return out
}

// Ensure Store satisfies the saver contract engines persist through.
var _ engine.ScoreSaver = (*Store)(nil)
