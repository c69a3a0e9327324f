// seehuhn.de/go/handwriting - render captured pen strokes as vector text
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package capture turns pointer events into glyph strokes.
//
// A [Session] collects the strokes for one glyph at a time.  Pointer
// samples are passed in using Down, Move and Up.  When the pen is lifted,
// the finished stroke is simplified.  Commit stores the glyph in a
// [font.Library].
package capture

import (
	"errors"
	"math"
	"time"

	"seehuhn.de/go/handwriting/font"
	"seehuhn.de/go/handwriting/glyph"
	"seehuhn.de/go/handwriting/internal/logger"
)

var (
	// ErrNoGlyph is returned when samples arrive before Begin was called.
	ErrNoGlyph = errors.New("no glyph selected")

	// ErrPenUp is returned by Move and Up when the pen is not down.
	ErrPenUp = errors.New("pen is not down")

	// ErrEmpty is returned by Commit when no strokes have been drawn.
	ErrEmpty = errors.New("no strokes captured")
)

// Guides describes the capture area, in pixels.
type Guides struct {
	Width, Height float64
}

// Metrics returns the positions of the writing guides drawn on a capture
// area of the given size.
func (g Guides) Metrics() glyph.Metrics {
	h := g.Height
	m := glyph.Metrics{
		Ascender:     0.15 * h,
		CapHeight:    0.25 * h,
		XHeight:      0.45 * h,
		Baseline:     0.7 * h,
		Descender:    0.9 * h,
		CaptureWidth: g.Width,
	}
	m.EmHeight = m.Descender - m.Ascender
	return m
}

// Sample is a single pointer event.
type Sample struct {
	X, Y float64

	// Time is the time of the event, measured from an arbitrary origin.
	Time time.Duration

	// Pressure is the pressure reported by the device, in the range (0, 1].
	// Zero means that the device does not report pressure; in this case a
	// pressure value is derived from the pen speed.
	Pressure float64
}

// Pressure simulation parameters.
const (
	slowPressure = 0.8 // pressure for a pen at rest
	fastPressure = 0.3 // pressure at or above fastSpeed
	fastSpeed    = 2.0 // pixels per millisecond
	smoothing    = 0.3 // weight of the new value in the running average
)

// Session is the state of a capture surface.
// A Session is not safe for concurrent use.
type Session struct {
	Guides Guides

	// Tolerance is the simplification tolerance applied to finished
	// strokes, in pixels.
	Tolerance float64

	key     string
	strokes []glyph.Stroke

	down     bool
	cur      []glyph.Point
	start    time.Duration
	last     Sample
	pressure float64
}

// NewSession returns a session for a capture area of the given size.
func NewSession(width, height float64) *Session {
	return &Session{
		Guides:    Guides{Width: width, Height: height},
		Tolerance: glyph.DefaultTolerance,
	}
}

// Begin starts capturing the glyph for key.  Strokes from an earlier glyph
// are discarded.
func (s *Session) Begin(key string) error {
	key, err := font.NormalizeKey(key)
	if err != nil {
		return err
	}
	s.key = key
	s.Clear()
	return nil
}

// Key returns the glyph key currently being captured.
func (s *Session) Key() string {
	return s.key
}

// Down starts a new stroke.  If a stroke is in progress, it is finished
// first.
func (s *Session) Down(p Sample) error {
	if s.key == "" {
		return ErrNoGlyph
	}
	if s.down {
		s.finish()
	}
	s.down = true
	s.start = p.Time
	s.pressure = glyph.DefaultPressure
	if p.Pressure > 0 {
		s.pressure = min(p.Pressure, 1)
	}
	s.cur = append(s.cur[:0], glyph.Point{X: p.X, Y: p.Y, Pressure: s.pressure})
	s.last = p
	return nil
}

// Move adds a sample to the current stroke.
func (s *Session) Move(p Sample) error {
	if !s.down {
		return ErrPenUp
	}
	s.cur = append(s.cur, glyph.Point{
		X:         p.X,
		Y:         p.Y,
		Pressure:  s.nextPressure(p),
		Timestamp: float64(p.Time-s.start) / float64(time.Millisecond),
	})
	s.last = p
	return nil
}

// Up finishes the current stroke.
func (s *Session) Up() error {
	if !s.down {
		return ErrPenUp
	}
	s.finish()
	return nil
}

func (s *Session) finish() {
	pts := glyph.Simplify(s.cur, s.Tolerance)
	s.strokes = append(s.strokes, glyph.Stroke{Points: pts})
	logger.Get().Debug("stroke captured",
		"key", s.key, "samples", len(s.cur), "points", len(pts))
	s.cur = s.cur[:0]
	s.down = false
}

// nextPressure returns the pressure for sample p.  Reported values are
// used directly.  Otherwise fast pen movement gives low pressure, and the
// result is smoothed with a running average.
func (s *Session) nextPressure(p Sample) float64 {
	if p.Pressure > 0 {
		s.pressure = min(p.Pressure, 1)
		return s.pressure
	}

	target := slowPressure
	dt := float64(p.Time-s.last.Time) / float64(time.Millisecond)
	if dt > 0 {
		speed := math.Hypot(p.X-s.last.X, p.Y-s.last.Y) / dt
		f := min(speed/fastSpeed, 1)
		target = slowPressure + f*(fastPressure-slowPressure)
	}
	s.pressure += smoothing * (target - s.pressure)
	return s.pressure
}

// Undo removes the most recently finished stroke.
// It reports whether there was a stroke to remove.
func (s *Session) Undo() bool {
	if s.down {
		s.cur = s.cur[:0]
		s.down = false
		return true
	}
	if len(s.strokes) == 0 {
		return false
	}
	s.strokes = s.strokes[:len(s.strokes)-1]
	return true
}

// Clear discards all strokes of the current glyph.
func (s *Session) Clear() {
	s.strokes = nil
	s.cur = s.cur[:0]
	s.down = false
}

// Strokes returns a copy of the finished strokes.
func (s *Session) Strokes() []glyph.Stroke {
	return glyph.Clone(s.strokes)
}

// Commit stores the captured glyph in lib and returns the new character.
// A stroke still in progress is finished first.  After a successful
// commit, the session is cleared.
func (s *Session) Commit(lib *font.Library) (*font.Character, error) {
	if s.key == "" {
		return nil, ErrNoGlyph
	}
	if s.down {
		s.finish()
	}
	if len(s.strokes) == 0 {
		return nil, ErrEmpty
	}

	m := s.Guides.Metrics()
	c := font.NewCharacter(s.strokes, &m)
	if err := lib.SetCharacter(s.key, c); err != nil {
		return nil, err
	}
	logger.Get().Info("glyph committed", "key", s.key, "strokes", len(c.Strokes))
	s.Clear()
	return c, nil
}
