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
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/handwriting/layout"
)

// DrawPage renders page on a white background.  One unit of page space
// maps to scale pixels.
func DrawPage(page *layout.Page, scale float64) *image.RGBA {
	if !(scale > 0) {
		scale = 1
	}
	w := max(int(math.Ceil(page.Width*scale)), 1)
	h := max(int(math.Ceil(page.Height*scale)), 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = matrix.Scale(scale, scale)

	paint := func(y, xMin int, coverage []float32) {
		blendRow(img, y, xMin, coverage, page.Color)
	}
	for _, line := range page.Lines {
		for _, m := range line.Marks {
			switch m.Kind {
			case layout.DotMark:
				r.Dot(m.Center, m.Width/2, paint)
			default:
				if m.Path == nil {
					continue
				}
				r.Width = m.Width
				r.Stroke(m.Path, paint)
			}
		}
	}
	return img
}

// blendRow composites col over one row of img, weighted by coverage.
func blendRow(img *image.RGBA, y, xMin int, coverage []float32, col color.RGBA) {
	alpha := float32(col.A) / 255
	src := [3]float32{float32(col.R), float32(col.G), float32(col.B)}
	off := img.PixOffset(xMin, y)
	for i, c := range coverage {
		a := c * alpha
		if a <= 0 {
			continue
		}
		px := img.Pix[off+4*i : off+4*i+4 : off+4*i+4]
		for j := range 3 {
			v := float32(px[j])*(1-a) + src[j]*a
			px[j] = uint8(min(max(v+0.5, 0), 255))
		}
		da := float32(px[3])*(1-a) + 255*a
		px[3] = uint8(min(max(da+0.5, 0), 255))
	}
}

// Thumbnail scales img down so that neither side exceeds maxSize pixels.
// Images which already fit are copied unchanged.
func Thumbnail(img image.Image, maxSize int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		f := float64(maxSize) / float64(max(w, h))
		w = max(int(math.Round(float64(w)*f)), 1)
		h = max(int(math.Round(float64(h)*f)), 1)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
