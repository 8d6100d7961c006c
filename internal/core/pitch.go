// Package core holds the shared value types of the coaching pipeline:
// pitch events, target zones, and the injected randomness/clock sources.
// It has no dependencies so every other package can import it.
package core

import (
	"encoding/json"
	"math"
	"time"
)

// Zone is one cell of the 3x3 grid laid over the strike area.
type Zone struct {
	Row int
	Col int
}

// Valid reports whether the zone indices are inside the 3x3 grid.
func (z Zone) Valid() bool {
	return z.Row >= 0 && z.Row <= 2 && z.Col >= 0 && z.Col <= 2
}

// PitchEvent is one observed pitch as delivered by the external
// pitch-processing pipeline. Immutable once created.
//
// Speed is in mph and is 0 when the radar could not measure it.
// Zone is only meaningful when Zoned is true; an unclassified pitch
// must be treated as a no-op by every zone-dependent rule.
type PitchEvent struct {
	Speed  float64
	Strike bool
	Zone   Zone
	Zoned  bool
	At     time.Time
}

// pitchWire is the JSON encoding used by the pitch pipeline.
// Pointers model the optional fields.
type pitchWire struct {
	Speed     *float64 `json:"speed_mph,omitempty"`
	Strike    bool     `json:"is_strike"`
	ZoneRow   *int     `json:"zone_row,omitempty"`
	ZoneCol   *int     `json:"zone_col,omitempty"`
	Timestamp float64  `json:"timestamp"`
}

// UnmarshalJSON decodes the pipeline wire format. A missing speed becomes 0;
// the zone is only considered classified when both row and column are present.
func (p *PitchEvent) UnmarshalJSON(data []byte) error {
	var w pitchWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = PitchEvent{
		Strike: w.Strike,
		At:     TimeFromUnixSeconds(w.Timestamp),
	}
	if w.Speed != nil {
		p.Speed = *w.Speed
	}
	if w.ZoneRow != nil && w.ZoneCol != nil {
		p.Zone = Zone{Row: *w.ZoneRow, Col: *w.ZoneCol}
		p.Zoned = true
	}
	return nil
}

// MarshalJSON encodes back into the pipeline wire format.
func (p PitchEvent) MarshalJSON() ([]byte, error) {
	w := pitchWire{
		Strike:    p.Strike,
		Timestamp: UnixSeconds(p.At),
	}
	if p.Speed != 0 {
		speed := p.Speed
		w.Speed = &speed
	}
	if p.Zoned {
		row, col := p.Zone.Row, p.Zone.Col
		w.ZoneRow = &row
		w.ZoneCol = &col
	}
	return json.Marshal(w)
}

// UnixSeconds converts a time to fractional seconds since the epoch,
// the timestamp representation used on every external boundary.
func UnixSeconds(t time.Time) float64 {
	if t.IsZero() {
		return 0
	}
	return float64(t.UnixNano()) / float64(time.Second)
}

// TimeFromUnixSeconds is the inverse of UnixSeconds.
func TimeFromUnixSeconds(sec float64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	s, frac := math.Modf(sec)
	return time.Unix(int64(s), int64(frac*float64(time.Second)))
}

// Rand is the pseudo-random source injected into engines so tests can
// supply a fixed seed or a deterministic stub. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Clock supplies the current time. Injected instead of calling
// time.Now inline so history and session-window tests are deterministic.
type Clock func() time.Time
