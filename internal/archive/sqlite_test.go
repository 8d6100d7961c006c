package archive

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vslusny/pitchcoach/internal/core"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "sessions.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "sessions.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSessionLifecycle(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	started := time.Unix(1700000000, 0)
	id, err := store.StartSession(started)
	if err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}
	if id == "" {
		t.Fatal("StartSession() returned an empty id")
	}

	// Record a classified and an unclassified pitch
	err = store.RecordPitch(id, core.PitchEvent{
		Speed:  72.5,
		Strike: true,
		Zone:   core.Zone{Row: 1, Col: 2},
		Zoned:  true,
		At:     started.Add(5 * time.Second),
	})
	if err != nil {
		t.Fatalf("RecordPitch() failed: %v", err)
	}
	err = store.RecordPitch(id, core.PitchEvent{
		Strike: false,
		At:     started.Add(12 * time.Second),
	})
	if err != nil {
		t.Fatalf("RecordPitch() failed: %v", err)
	}

	err = store.FinishSession(id, Summary{
		EndedAt:    started.Add(time.Minute),
		PitchCount: 2,
		Strikes:    1,
		Balls:      1,
		Fastest:    72.5,
	})
	if err != nil {
		t.Fatalf("FinishSession() failed: %v", err)
	}

	// Verify the summary
	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(sessions))
	}
	s := sessions[0]
	if s.ID != id || s.PitchCount != 2 || s.Strikes != 1 || s.Balls != 1 {
		t.Errorf("Unexpected session summary: %+v", s)
	}
	if s.Fastest != 72.5 {
		t.Errorf("Expected fastest 72.5, got %v", s.Fastest)
	}
	if s.StartedAt.Unix() != started.Unix() {
		t.Errorf("Expected start %v, got %v", started, s.StartedAt)
	}
	if s.EndedAt.IsZero() {
		t.Error("Expected a recorded end time")
	}

	// Verify the pitches round-trip, including the absent zone
	pitches, err := store.SessionPitches(id)
	if err != nil {
		t.Fatalf("SessionPitches() failed: %v", err)
	}
	if len(pitches) != 2 {
		t.Fatalf("Expected 2 pitches, got %d", len(pitches))
	}
	if !pitches[0].Zoned || pitches[0].Zone != (core.Zone{Row: 1, Col: 2}) {
		t.Errorf("First pitch lost its zone: %+v", pitches[0])
	}
	if pitches[0].Speed != 72.5 {
		t.Errorf("First pitch lost its speed: %+v", pitches[0])
	}
	if pitches[1].Zoned {
		t.Errorf("Second pitch should stay unclassified: %+v", pitches[1])
	}
}

func TestRecorderBindsSession(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.StartSession(time.Unix(1700000000, 0))
	if err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}

	rec := store.Recorder(id)
	if err := rec.RecordPitch(core.PitchEvent{Strike: true}); err != nil {
		t.Fatalf("Recorder.RecordPitch() failed: %v", err)
	}

	pitches, err := store.SessionPitches(id)
	if err != nil {
		t.Fatalf("SessionPitches() failed: %v", err)
	}
	if len(pitches) != 1 {
		t.Errorf("Expected 1 recorded pitch, got %d", len(pitches))
	}
}

func TestRecentSessionsOrderAndLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	base := time.Unix(1700000000, 0)
	var ids []string
	for i := range 5 {
		id, err := store.StartSession(base.Add(time.Duration(i) * time.Hour))
		if err != nil {
			t.Fatalf("StartSession() failed: %v", err)
		}
		ids = append(ids, id)
	}

	sessions, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}
	// Most recently started first
	if sessions[0].ID != ids[4] || sessions[2].ID != ids[2] {
		t.Errorf("Sessions not in recency order: %v", sessions)
	}
}
