package dispatch

import (
	"errors"
	"testing"

	"github.com/vslusny/pitchcoach/internal/core"
	"github.com/vslusny/pitchcoach/internal/session"
)

type countingEngine struct {
	pitches int
}

func (e *countingEngine) Name() string                   { return "counting" }
func (e *countingEngine) HandlePitch(ev core.PitchEvent) { e.pitches++ }
func (e *countingEngine) Reset()                         { e.pitches = 0 }

type failingRecorder struct {
	calls int
}

func (r *failingRecorder) RecordPitch(ev core.PitchEvent) error {
	r.calls++
	return errors.New("disk full")
}

func TestTrackerAlwaysFed(t *testing.T) {
	tracker := session.NewTracker()
	d := New(tracker)

	d.HandlePitch(core.PitchEvent{Strike: true})
	d.HandlePitch(core.PitchEvent{Strike: false})

	if tracker.Count() != 2 {
		t.Errorf("Tracker should see every pitch, got %d", tracker.Count())
	}
}

func TestEngineOnlyFedWhenActive(t *testing.T) {
	tracker := session.NewTracker()
	d := New(tracker)
	eng := &countingEngine{}

	d.HandlePitch(core.PitchEvent{Strike: true}) // free practice

	d.SetEngine(eng)
	d.HandlePitch(core.PitchEvent{Strike: true})
	d.HandlePitch(core.PitchEvent{Strike: false})

	d.SetEngine(nil)
	d.HandlePitch(core.PitchEvent{Strike: true})

	if eng.pitches != 2 {
		t.Errorf("Engine should only see pitches while active, got %d", eng.pitches)
	}
	if tracker.Count() != 4 {
		t.Errorf("Tracker should see every pitch regardless, got %d", tracker.Count())
	}
}

func TestRecorderFailureDoesNotHaltStream(t *testing.T) {
	tracker := session.NewTracker()
	d := New(tracker)
	eng := &countingEngine{}
	rec := &failingRecorder{}

	d.SetEngine(eng)
	d.SetRecorder(rec)

	d.HandlePitch(core.PitchEvent{Strike: true})
	d.HandlePitch(core.PitchEvent{Strike: true})

	if rec.calls != 2 {
		t.Errorf("Recorder should still be offered every pitch, got %d", rec.calls)
	}
	if eng.pitches != 2 {
		t.Errorf("A failing recorder must not starve the engine, got %d", eng.pitches)
	}
	if tracker.Count() != 2 {
		t.Errorf("A failing recorder must not starve the tracker, got %d", tracker.Count())
	}
}
