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
	"math"

	"seehuhn.de/go/geom/vec"
)

// DefaultTolerance is the simplification tolerance used at capture time,
// in capture pixels.
const DefaultTolerance = 1.0

// Simplify reduces the number of points in a stroke using the
// Douglas-Peucker algorithm.  A point is kept if it is further than
// tolerance away from the chord between the neighbouring kept points.
//
// The first and last point are always kept.  Slices with at most two points
// are returned as a copy.  A tolerance which is negative or NaN is treated as
// zero, so that only exactly collinear points are removed.
func Simplify(points []Point, tolerance float64) []Point {
	if len(points) <= 2 {
		return append([]Point(nil), points...)
	}
	if !(tolerance > 0) {
		tolerance = 0
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true

	// The work stack holds index ranges [first, last] whose interior points
	// still need to be examined.
	type span struct{ first, last int }
	stack := []span{{0, len(points) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.last-s.first < 2 {
			continue
		}

		a := points[s.first].Vec()
		b := points[s.last].Vec()
		maxDist := -1.0
		maxIdx := s.first
		for i := s.first + 1; i < s.last; i++ {
			d := segmentDistance(points[i].Vec(), a, b)
			if d > maxDist {
				maxDist = d
				maxIdx = i
			}
		}

		if maxDist > tolerance {
			keep[maxIdx] = true
			stack = append(stack, span{maxIdx, s.last}, span{s.first, maxIdx})
		}
	}

	res := make([]Point, 0, len(points))
	for i, p := range points {
		if keep[i] {
			res = append(res, p)
		}
	}
	return res
}

// segmentDistance returns the perpendicular distance from p to the line
// through a and b.  If a and b coincide, the distance to a is returned.
func segmentDistance(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return p.Sub(a).Length()
	}
	// |cross(d, p-a)| / |d|
	q := p.Sub(a)
	dist := math.Abs(d.X*q.Y-d.Y*q.X) / l
	if math.IsNaN(dist) {
		return 0
	}
	return dist
}
