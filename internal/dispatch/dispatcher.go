// Package dispatch routes each pitch event from the pipeline through the
// session tracker (always), the optional archive recorder, and the
// currently active game engine. One event is fully processed before the
// next is accepted; the dispatcher owns that serialization.
package dispatch

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vslusny/pitchcoach/internal/core"
	"github.com/vslusny/pitchcoach/internal/engine"
	"github.com/vslusny/pitchcoach/internal/metrics"
	"github.com/vslusny/pitchcoach/internal/session"
)

// PitchRecorder persists raw pitch observations for later review.
// Implemented by the archive's session recorder.
type PitchRecorder interface {
	RecordPitch(ev core.PitchEvent) error
}

// Dispatcher fans one pitch event out to the tracker, recorder, and
// active engine. Safe for concurrent callers.
type Dispatcher struct {
	mu       sync.Mutex
	tracker  *session.Tracker
	active   engine.Engine
	recorder PitchRecorder
	logger   *log.Logger
}

// New creates a dispatcher feeding the given session tracker.
func New(tracker *session.Tracker) *Dispatcher {
	return &Dispatcher{
		tracker: tracker,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "dispatch",
			Level:           log.GetLevel(),
		}),
	}
}

// SetEngine activates a game engine; nil returns to free practice.
func (d *Dispatcher) SetEngine(e engine.Engine) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active = e
}

// ActiveEngine returns the engine currently receiving pitches, or nil.
func (d *Dispatcher) ActiveEngine() engine.Engine {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// SetRecorder attaches an archive recorder; nil disables archiving.
func (d *Dispatcher) SetRecorder(r PitchRecorder) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.recorder = r
}

// Tracker returns the session tracker the dispatcher feeds.
func (d *Dispatcher) Tracker() *session.Tracker {
	return d.tracker
}

// HandlePitch processes one event: tracker first, then the archive,
// then the active engine. A recorder failure is logged and the pitch
// keeps flowing; nothing here may halt the stream.
func (d *Dispatcher) HandlePitch(ev core.PitchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	metrics.RecordPitch(ev.Strike)
	d.tracker.AddPitch(ev)

	if d.recorder != nil {
		if err := d.recorder.RecordPitch(ev); err != nil {
			d.logger.Warn("could not archive pitch", "error", err)
		}
	}

	if d.active != nil {
		d.active.HandlePitch(ev)
	}
}
