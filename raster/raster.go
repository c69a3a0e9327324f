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

// Package raster converts laid out pages into anti-aliased images.
//
// The [Rasteriser] computes exact area coverage for each pixel, using a
// scanline algorithm with an active edge list.  Strokes are always drawn
// with round caps and round joins, matching the SVG and PDF output.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge represents a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts vector paths to pixel coverage values.
// Internal buffers are reused between calls.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates.  Must be non-empty
	// and have integer coordinates.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	cover     []float32
	area      []float32
	edges     []edge
	activeIdx []int
	crossings []float64
	poly      []vec.Vec2 // current outline polygon, user space

	bboxFirst        bool
	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewRasteriser returns a Rasteriser with the given clip rectangle, an
// identity CTM and unit stroke width.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,
	}
}

const (
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length of a stroke segment.
	zeroLengthThreshold = 1e-10
)

func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flatten walks p and calls emit for every line segment, with curves
// replaced by polygons within the flatness tolerance.  If closeAll is set,
// open subpaths are closed implicitly, as needed for filling.
func (r *Rasteriser) flatten(p *path.Data, closeAll bool, emit func(a, b vec.Vec2)) {
	var current, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if closeAll && open && current != start {
				emit(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			emit(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], emit)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], emit)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				emit(current, start)
			}
			current = start
			open = false
		}
	}
	if closeAll && open && current != start {
		emit(current, start)
	}
}

// flattenQuadratic splits a quadratic Bézier curve into n segments, where
// n is chosen from the device space deviation (p0 - 2p1 + p2)/4.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := r.transformLinear(e).Length()

	n := 1
	if errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic uses Wang's formula to choose the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)).Length()

	n := 1
	if m := max(d1, d2); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Fill rasterises the path using the nonzero winding rule.  Open subpaths
// are closed implicitly.  Coverage is delivered row by row; the slice
// passed to emit is only valid during the call.
func (r *Rasteriser) Fill(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.resetEdges()
	r.flatten(p, true, r.addEdge)
	r.fillEdges(emit)
}

func (r *Rasteriser) resetEdges() {
	r.edges = r.edges[:0]
	r.bboxFirst = true
}

// addEdge adds an edge given in user space coordinates.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	M := r.CTM
	x0 := M[0]*p0.X + M[2]*p0.Y + M[4]
	y0 := M[1]*p0.X + M[3]*p0.Y + M[5]
	x1 := M[0]*p1.X + M[2]*p1.Y + M[4]
	y1 := M[1]*p1.X + M[3]*p1.Y + M[5]

	dy := y1 - y0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})

	if r.bboxFirst {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
		r.bboxFirst = false
	} else {
		r.devXMin = min(r.devXMin, x0, x1)
		r.devXMax = max(r.devXMax, x0, x1)
		r.devYMin = min(r.devYMin, y0, y1)
		r.devYMax = max(r.devYMax, y0, y1)
	}
}

// Coverage accumulation:
//
// For each pixel of a scanline we track
//
//	cover: signed vertical extent of the edges crossing the pixel
//	area:  cover weighted by the horizontal position within the pixel
//
// The coverage of pixel i is then the running sum of cover[0:i] plus
// area[i], clamped to [0, 1] after taking the absolute value.

// fillEdges scans the collected edges using an active edge list.
func (r *Rasteriser) fillEdges(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf, yfNext := float64(y), float64(y+1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yfNext {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			if r.accumulateEdge(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// accumulateEdge adds the contribution of e within scanline y to the cover
// and area buffers, which are indexed by x - xMin.  Edges left of the
// buffer contribute to its first pixel; edges right of it are ignored.
func (r *Rasteriser) accumulateEdge(e *edge, y, xMin, xMax int) bool {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	// Split the edge at integer x positions, so that each piece lies in a
	// single pixel column.
	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xa, xb)))
	pixRight := int(math.Floor(max(xa, xb)))

	r.crossings = append(r.crossings[:0], yTop, yBot)
	if pixLeft != pixRight {
		dydx := 1 / e.dxdy
		for x := pixLeft + 1; x <= pixRight; x++ {
			yx := e.y0 + dydx*(float64(x)-e.x0)
			if yx > yTop && yx < yBot {
				r.crossings = append(r.crossings, yx)
			}
		}
		slices.Sort(r.crossings)
	}

	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		c := sign * float32(y1-y0)

		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		pix := int(math.Floor(xMid))
		switch {
		case pix < xMin:
			r.cover[0] += c
			r.area[0] += c
		case pix < xMax:
			frac := xMid - float64(pix)
			r.cover[pix-xMin] += c
			r.area[pix-xMin] += c * float32(1-frac)
		}
	}
	return true
}

// integrateNonZero converts cover and area values to coverage, in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero part of coverage and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}
