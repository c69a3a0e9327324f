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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Stroke renders the path with round caps and round joins, using Width
// as the line width.  Each flattened segment is outlined as a capsule and
// all capsules are filled together with the nonzero rule, so that the
// overlaps at the joins form the round joins.  A subpath of zero length
// produces a filled circle.
func (r *Rasteriser) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.resetEdges()
	radius := r.Width / 2
	if radius <= 0 {
		return
	}

	// Subpaths which never leave their start point become circles.
	var start vec.Vec2
	hasDraw, hasLength := false, false
	finish := func() {
		if hasDraw && !hasLength {
			r.addCircle(start, radius)
		}
	}
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish()
			start = p.Coords[k]
			hasDraw, hasLength = false, false
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo, path.CmdClose:
			hasDraw = true
			for _, c := range p.Coords[k : k+cmdArgs(cmd)] {
				if c.Sub(start).Length() >= zeroLengthThreshold {
					hasLength = true
				}
			}
		}
		k += cmdArgs(cmd)
	}
	finish()

	r.flatten(p, false, func(a, b vec.Vec2) {
		r.addCapsule(a, b, radius)
	})
	r.fillEdges(emit)
}

// Dot renders a filled circle.
func (r *Rasteriser) Dot(center vec.Vec2, radius float64, emit func(y, xMin int, coverage []float32)) {
	r.resetEdges()
	if radius <= 0 {
		return
	}
	r.addCircle(center, radius)
	r.fillEdges(emit)
}

func cmdArgs(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}

// addCapsule adds the outline of the segment a-b, widened by radius on
// both sides and capped with half circles.  All outlines are oriented
// counter-clockwise.
func (r *Rasteriser) addCapsule(a, b vec.Vec2, radius float64) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	T := d.Mul(1 / l)
	N := vec.Vec2{X: -T.Y, Y: T.X}

	r.poly = r.poly[:0]
	r.addArc(a, radius, N, math.Pi, true)
	r.addArc(b, radius, N.Mul(-1), math.Pi, true)
	r.addPolygon()
}

func (r *Rasteriser) addCircle(center vec.Vec2, radius float64) {
	r.poly = r.poly[:0]
	r.addArc(center, radius, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
	r.addPolygon()
}

// addPolygon adds the edges of the closed polygon in r.poly.
func (r *Rasteriser) addPolygon() {
	n := len(r.poly)
	if n < 3 {
		return
	}
	for i := range n {
		r.addEdge(r.poly[i], r.poly[(i+1)%n])
	}
}

// addArc appends points on a circular arc to r.poly.  startDir is the unit
// vector from center to the start of the arc, and sweep is the sweep angle
// in radians (positive is counter-clockwise).
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius, Y: 0}).Length(),
		r.transformLinear(vec.Vec2{X: 0, Y: radius}).Length())

	// A chord subtending the angle θ deviates from the circle by
	// radius*(1 - cos(θ/2)), which must not exceed the flatness.
	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}
	// a full circle needs at least a triangle
	if math.Abs(sweep) >= 2*math.Pi {
		n = max(n, 3)
	}

	dt := sweep / float64(n)
	first := 0
	if !includeStart {
		first = 1
	}
	for i := first; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.poly = append(r.poly, center.Add(dir.Mul(radius)))
	}
}
