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

package glyph

import (
	"math/rand/v2"

	"seehuhn.de/go/geom/matrix"
)

// Variation describes the range of random distortions applied to each
// rendered instance of a glyph.
type Variation struct {
	// PositionJitter is the maximal offset in either direction, in
	// normalized units.
	PositionJitter float64

	// RotationRange is the maximal rotation in either direction, in degrees.
	RotationRange float64

	// ScaleRange is the maximal relative deviation of the scale factor
	// from 1.
	ScaleRange float64
}

// IsZero reports whether v describes no variation at all.
func (v Variation) IsZero() bool {
	return v.PositionJitter == 0 && v.RotationRange == 0 && v.ScaleRange == 0
}

// Source is a source of uniformly distributed random numbers in [0, 1).
// A *rand.Rand from math/rand/v2 implements this interface.
type Source interface {
	Float64() float64
}

// Variator applies random affine distortions to glyph instances,
// so that repeated letters do not look identical.
//
// A Variator is not safe for concurrent use.
type Variator struct {
	Rand Source
}

// NewVariator returns a Variator using a PCG generator with the given seed.
// Equal seeds produce equal sequences of distortions.
func NewVariator(seed uint64) *Variator {
	return &Variator{
		Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Apply returns a randomly transformed copy of strokes.
//
// One rotation angle, one scale factor and one offset are drawn per call,
// and the same transformation is applied to every point: the strokes are
// scaled and rotated about the center of their bounding box, and then
// shifted by the offset.  Pressure and timestamps are preserved.
//
// If all ranges in v are zero, a copy of the input is returned and no random
// numbers are consumed.  Otherwise, the Rand field must be non-nil.
func (vr *Variator) Apply(strokes []Stroke, v Variation) []Stroke {
	if v.IsZero() {
		return Clone(strokes)
	}

	angle := vr.uniform(v.RotationRange)
	scale := 1 + vr.uniform(v.ScaleRange)
	dx := vr.uniform(v.PositionJitter)
	dy := vr.uniform(v.PositionJitter)

	c := BoundsOf(strokes).Center()
	M := matrix.Translate(-c.X, -c.Y).
		Mul(matrix.Scale(scale, scale)).
		Mul(matrix.RotateDeg(angle)).
		Mul(matrix.Translate(c.X+dx, c.Y+dy))

	res := make([]Stroke, len(strokes))
	for i, s := range strokes {
		pts := make([]Point, len(s.Points))
		for j, p := range s.Points {
			pts[j] = Point{
				X:         M[0]*p.X + M[2]*p.Y + M[4],
				Y:         M[1]*p.X + M[3]*p.Y + M[5],
				Pressure:  p.Pressure,
				Timestamp: p.Timestamp,
			}
		}
		res[i].Points = pts
	}
	return res
}

// uniform returns a random number in [-r, r].
func (vr *Variator) uniform(r float64) float64 {
	return (2*vr.Rand.Float64() - 1) * r
}
