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

package capture

import (
	"errors"
	"math"
	"testing"
	"time"

	"seehuhn.de/go/handwriting/font"
)

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func TestGuides(t *testing.T) {
	m := Guides{Width: 300, Height: 200}.Metrics()
	if m.Ascender != 30 || m.Baseline != 140 || m.Descender != 180 {
		t.Errorf("unexpected metrics %+v", m)
	}
	if m.EmHeight != 150 || m.CaptureWidth != 300 {
		t.Errorf("unexpected metrics %+v", m)
	}
	ratio, ok := m.BaselineRatio()
	if !ok || math.Abs(ratio-110.0/150) > 1e-12 {
		t.Errorf("baseline ratio %g", ratio)
	}
}

func TestSessionStates(t *testing.T) {
	s := NewSession(100, 100)
	if err := s.Down(Sample{}); !errors.Is(err, ErrNoGlyph) {
		t.Errorf("Down before Begin: %v", err)
	}
	if err := s.Begin("abc"); !errors.Is(err, font.ErrInvalidKey) {
		t.Errorf("Begin(abc): %v", err)
	}
	if err := s.Begin("a"); err != nil {
		t.Fatal(err)
	}
	if err := s.Move(Sample{}); !errors.Is(err, ErrPenUp) {
		t.Errorf("Move with pen up: %v", err)
	}
	if err := s.Up(); !errors.Is(err, ErrPenUp) {
		t.Errorf("Up with pen up: %v", err)
	}
	if _, err := s.Commit(font.NewLibrary(nil)); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty commit: %v", err)
	}
}

func TestSessionStroke(t *testing.T) {
	s := NewSession(100, 100)
	s.Begin("l")

	s.Down(Sample{X: 50, Y: 10, Time: ms(1000)})
	for i := 1; i <= 60; i++ {
		s.Move(Sample{X: 50, Y: 10 + float64(i), Time: ms(1000 + 16*i)})
	}
	s.Up()

	// a dot
	s.Down(Sample{X: 80, Y: 80, Time: ms(3000), Pressure: 0.9})
	s.Up()

	strokes := s.Strokes()
	if len(strokes) != 2 {
		t.Fatalf("%d strokes", len(strokes))
	}

	line := strokes[0].Points
	if len(line) != 2 {
		t.Errorf("straight line simplified to %d points", len(line))
	}
	if line[0].Timestamp != 0 || line[len(line)-1].Timestamp != 960 {
		t.Errorf("timestamps %g, %g", line[0].Timestamp, line[len(line)-1].Timestamp)
	}
	for _, p := range line {
		if p.Pressure <= 0 || p.Pressure > 1 {
			t.Errorf("pressure %g out of range", p.Pressure)
		}
	}

	dot := strokes[1].Points
	if len(dot) != 1 || dot[0].Pressure != 0.9 {
		t.Errorf("unexpected dot %v", dot)
	}
}

func TestSimulatedPressure(t *testing.T) {
	s := NewSession(100, 100)
	s.Begin("a")

	s.Down(Sample{X: 0, Y: 0, Time: 0})
	// slow movement raises the pressure
	for i := 1; i <= 20; i++ {
		s.Move(Sample{X: 0.1 * float64(i), Y: 0, Time: ms(10 * i)})
	}
	slow := s.pressure
	// fast movement lowers the pressure
	for i := 1; i <= 20; i++ {
		s.Move(Sample{X: 2 + 50*float64(i), Y: 0, Time: ms(200 + 10*i)})
	}
	fast := s.pressure
	s.Up()

	if slow <= 0.7 || fast >= 0.4 {
		t.Errorf("slow pressure %g, fast pressure %g", slow, fast)
	}
}

func TestUndoAndCommit(t *testing.T) {
	s := NewSession(100, 100)
	s.Begin("i")
	s.Down(Sample{X: 50, Y: 45})
	s.Move(Sample{X: 50, Y: 70, Time: ms(100)})
	s.Up()
	s.Down(Sample{X: 50, Y: 30, Time: ms(200)})
	s.Up()
	s.Down(Sample{X: 10, Y: 10, Time: ms(300)})
	s.Up()

	if !s.Undo() {
		t.Fatal("nothing to undo")
	}
	if n := len(s.Strokes()); n != 2 {
		t.Fatalf("%d strokes after undo", n)
	}

	lib := font.NewLibrary(nil)
	c, err := s.Commit(lib)
	if err != nil {
		t.Fatal(err)
	}
	if c.Metrics == nil || c.Metrics.Baseline != 70 {
		t.Errorf("metrics %+v", c.Metrics)
	}
	if c.Connectors == nil {
		t.Error("no connectors")
	}
	if !lib.Snapshot().Has("i") {
		t.Error("glyph not stored")
	}
	if len(s.Strokes()) != 0 {
		t.Error("session not cleared after commit")
	}
	if s.Undo() {
		t.Error("undo after commit")
	}
}
