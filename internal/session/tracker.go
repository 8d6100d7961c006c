// Package session tracks every pitch of the current coaching session in
// memory and derives the rolling statistics the charts are built from.
// One tracker lives per session; it is discarded at the session boundary.
package session

import (
	"time"

	"github.com/vslusny/pitchcoach/internal/core"
)

// DefaultAccuracyWindow is the trailing-window size used for the strike
// accuracy trend when the caller does not choose one.
const DefaultAccuracyWindow = 10

// Point is one chart sample: the observation index paired with a value.
type Point struct {
	Index int
	Value float64
}

// Tracker is the append-only record of the current session's pitches.
// It is never truncated by size; only Clear empties it.
type Tracker struct {
	obs []observation
}

type observation struct {
	velocity float64
	strike   bool
	zone     core.Zone
	zoned    bool
	at       time.Time
}

// NewTracker returns an empty session tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// AddPitch appends one observation. A pitch without a measured speed is
// recorded with velocity 0.
func (t *Tracker) AddPitch(ev core.PitchEvent) {
	t.obs = append(t.obs, observation{
		velocity: ev.Speed,
		strike:   ev.Strike,
		zone:     ev.Zone,
		zoned:    ev.Zoned,
		at:       ev.At,
	})
}

// VelocityHistory returns (index, velocity) samples in insertion order.
// The result is re-derived from the stored sequence on every call.
func (t *Tracker) VelocityHistory() []Point {
	points := make([]Point, len(t.obs))
	for i, o := range t.obs {
		points[i] = Point{Index: i, Value: o.velocity}
	}
	return points
}

// StrikeAccuracyHistory returns, for each observation, the strike
// fraction over the trailing window of up to windowSize pitches ending at
// that observation. Early indices use all pitches seen so far.
// windowSize <= 0 selects DefaultAccuracyWindow.
func (t *Tracker) StrikeAccuracyHistory(windowSize int) []Point {
	if windowSize <= 0 {
		windowSize = DefaultAccuracyWindow
	}

	points := make([]Point, len(t.obs))
	strikes := 0
	for i, o := range t.obs {
		if o.strike {
			strikes++
		}
		start := i - windowSize + 1
		if start > 0 {
			// Slide the window: drop the pitch that fell out.
			if t.obs[start-1].strike {
				strikes--
			}
		} else {
			start = 0
		}
		points[i] = Point{Index: i, Value: float64(strikes) / float64(i-start+1)}
	}
	return points
}

// FastestPitch returns the maximum velocity seen, or 0 if the session is
// empty.
func (t *Tracker) FastestPitch() float64 {
	fastest := 0.0
	for _, o := range t.obs {
		if o.velocity > fastest {
			fastest = o.velocity
		}
	}
	return fastest
}

// StrikeBallRatio returns the strike count, ball count, and strike
// fraction for the session. An empty session reports (0, 0, 0).
func (t *Tracker) StrikeBallRatio() (strikes, balls int, fraction float64) {
	for _, o := range t.obs {
		if o.strike {
			strikes++
		} else {
			balls++
		}
	}
	if total := strikes + balls; total > 0 {
		fraction = float64(strikes) / float64(total)
	}
	return strikes, balls, fraction
}

// ZoneCounts returns how many zone-classified pitches landed in each
// cell of the 3x3 grid this session.
func (t *Tracker) ZoneCounts() [3][3]int {
	var counts [3][3]int
	for _, o := range t.obs {
		if o.zoned && o.zone.Valid() {
			counts[o.zone.Row][o.zone.Col]++
		}
	}
	return counts
}

// Count returns the number of pitches observed this session.
func (t *Tracker) Count() int {
	return len(t.obs)
}

// Clear empties the session.
func (t *Tracker) Clear() {
	t.obs = t.obs[:0]
}
