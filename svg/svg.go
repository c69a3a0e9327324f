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

// Package svg writes laid out pages as SVG documents.
package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/handwriting/internal/meta"
	"seehuhn.de/go/handwriting/layout"
)

// Precision is the number of decimal places used for coordinates.
const Precision = 2

func format(x float64) string {
	s := strconv.FormatFloat(x, 'f', Precision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// PathData converts p into the value of an SVG "d" attribute.
func PathData(p *path.Data) string {
	sb := &strings.Builder{}
	writePathData(sb, p)
	return sb.String()
}

func writePathData(w *strings.Builder, p *path.Data) {
	k := 0
	for i, cmd := range p.Cmds {
		if i > 0 {
			w.WriteByte(' ')
		}
		switch cmd {
		case path.CmdMoveTo:
			fmt.Fprintf(w, "M%s,%s", format(p.Coords[k].X), format(p.Coords[k].Y))
			k++
		case path.CmdLineTo:
			fmt.Fprintf(w, "L%s,%s", format(p.Coords[k].X), format(p.Coords[k].Y))
			k++
		case path.CmdQuadTo:
			fmt.Fprintf(w, "Q%s,%s %s,%s",
				format(p.Coords[k].X), format(p.Coords[k].Y),
				format(p.Coords[k+1].X), format(p.Coords[k+1].Y))
			k += 2
		case path.CmdCubeTo:
			fmt.Fprintf(w, "C%s,%s %s,%s %s,%s",
				format(p.Coords[k].X), format(p.Coords[k].Y),
				format(p.Coords[k+1].X), format(p.Coords[k+1].Y),
				format(p.Coords[k+2].X), format(p.Coords[k+2].Y))
			k += 3
		case path.CmdClose:
			w.WriteByte('Z')
		}
	}
}

func attr(s string) string {
	sb := &strings.Builder{}
	xml.EscapeText(sb, []byte(s))
	return sb.String()
}

// Write writes page as an SVG 1.1 document.
func Write(w io.Writer, page *layout.Page) error {
	out := bufio.NewWriter(w)

	width, height := format(page.Width), format(page.Height)
	color := attr(page.ColorName)
	if color == "" {
		color = fmt.Sprintf("#%02x%02x%02x", page.Color.R, page.Color.G, page.Color.B)
	}

	fmt.Fprintln(out, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(out, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		width, height, width, height)

	fmt.Fprintln(out, "<metadata>")
	info := page.Info
	if err := meta.Write(out, &info); err != nil {
		return err
	}
	fmt.Fprintln(out, "</metadata>")

	for _, line := range page.Lines {
		fmt.Fprintf(out, `<g fill="none" stroke="%s" stroke-linecap="round" stroke-linejoin="round">`+"\n", color)
		for _, m := range line.Marks {
			switch m.Kind {
			case layout.DotMark:
				fmt.Fprintf(out, `<circle cx="%s" cy="%s" r="%s" fill="%s" stroke="none"/>`+"\n",
					format(m.Center.X), format(m.Center.Y), format(m.Width/2), color)
			default:
				if m.Path == nil {
					continue
				}
				fmt.Fprintf(out, `<path d="%s" stroke-width="%s"/>`+"\n",
					PathData(m.Path), format(m.Width))
			}
		}
		fmt.Fprintln(out, "</g>")
	}
	fmt.Fprintln(out, "</svg>")

	return out.Flush()
}
