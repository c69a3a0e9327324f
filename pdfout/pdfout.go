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

// Package pdfout writes laid out pages as single-page PDF documents.
//
// Strokes are drawn with round caps and joins.  Quadratic segments are
// converted to cubic Bézier curves, since PDF has no quadratic curves.
package pdfout

import (
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/handwriting/internal/meta"
	"seehuhn.de/go/handwriting/layout"
)

// Version is the PDF version of the generated files.
var Version = pdf.V1_7

// Write writes page to w as a PDF document.  One unit of page space
// becomes one PDF point.
func Write(w io.Writer, page *layout.Page) error {
	paper := &pdf.Rectangle{
		URx: page.Width,
		URy: page.Height,
	}
	doc, err := document.WriteSinglePage(w, paper, Version, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; page coordinates have y pointing down.
	doc.Transform(matrix.Matrix{1, 0, 0, -1, 0, page.Height})

	col := color.DeviceRGB(
		float64(page.Color.R)/255,
		float64(page.Color.G)/255,
		float64(page.Color.B)/255)
	doc.SetStrokeColor(col)
	doc.SetFillColor(col)
	doc.SetLineCap(graphics.LineCapRound)
	doc.SetLineJoin(graphics.LineJoinRound)

	for _, line := range page.Lines {
		for _, m := range line.Marks {
			switch m.Kind {
			case layout.DotMark:
				doc.Circle(m.Center.X, m.Center.Y, m.Width/2)
				doc.Fill()
			default:
				if m.Path == nil || len(m.Path.Cmds) == 0 {
					continue
				}
				doc.SetLineWidth(m.Width)
				drawPath(doc, m.Path)
				doc.Stroke()
			}
		}
	}

	if err := writeMetadata(doc, &page.Info); err != nil {
		return err
	}
	return doc.Close()
}

func drawPath(doc *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			doc.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			doc.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			doc.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			doc.ClosePath()
		}
	}
}

// writeMetadata embeds the XMP packet for info as the document metadata
// stream.
func writeMetadata(doc *document.Page, info *meta.Info) error {
	ref := doc.Out.Alloc()
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	stm, err := doc.Out.OpenStream(ref, dict)
	if err != nil {
		return err
	}
	opt := &xmp.PacketOptions{
		Pretty: true,
	}
	err = info.Packet().Write(stm, opt)
	if err != nil {
		return err
	}
	err = stm.Close()
	if err != nil {
		return err
	}

	doc.Out.GetMeta().Catalog.Metadata = ref
	return nil
}
