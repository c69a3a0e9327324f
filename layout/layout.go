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

// Package layout arranges glyphs from a handwriting font into lines and
// pages.
//
// Output coordinates use a y-down system with the origin at the top left
// of the page, in the same units as [Config.FontSize].
package layout

import (
	"errors"
	"image/color"
	"slices"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/handwriting/font"
	"seehuhn.de/go/handwriting/glyph"
	"seehuhn.de/go/handwriting/internal/logger"
	"seehuhn.de/go/handwriting/internal/meta"
)

// FallbackBaselineRatio is the position of the baseline below the top of a
// glyph, in units of the font size, for glyphs captured without metrics.
const FallbackBaselineRatio = 0.7

// Advances, in units of the font size.
const (
	spaceAdvance   = 0.3
	missingAdvance = 0.5
	emptyAdvance   = 0.6
)

// ErrEmptyText is returned when there is nothing to render.
var ErrEmptyText = errors.New("empty text")

// MarkKind distinguishes the kinds of marks on a page.
type MarkKind int

const (
	// StrokeMark is a stroke of a glyph.
	StrokeMark MarkKind = iota

	// DotMark is a single-point stroke, drawn as a filled circle.
	DotMark

	// JoinMark is a straight segment connecting two cursive glyphs.
	JoinMark
)

// Mark is a single drawing operation.
type Mark struct {
	Kind MarkKind

	// Path is the outline of a stroke or join.  This is nil for dots.
	Path *path.Data

	// Center is the position of a dot.
	Center vec.Vec2

	// Width is the stroke width.  For dots, this is the diameter.
	Width float64

	// Key is the glyph key the mark belongs to.  For joins, this is the key
	// of the glyph the join leads to.
	Key string
}

// LineResult is the result of laying out a single line.
type LineResult struct {
	Marks []Mark

	// Advance is the horizontal distance covered by the line.
	Advance float64

	// Missing lists the keys for which no glyph was found, sorted and
	// without duplicates.
	Missing []string
}

// Line is a laid out line of text.
type Line struct {
	Text     string
	Baseline float64
	LineResult
}

// Page is a laid out document.
type Page struct {
	Width, Height float64
	Lines         []Line

	// Missing lists the keys for which no glyph was found, over all lines.
	Missing []string

	// Color is the stroke color.  ColorName is the color as given in the
	// configuration, for use in SVG output.
	Color     color.RGBA
	ColorName string

	Info meta.Info
}

// Engine lays out text using the glyphs from a font document.
// An Engine is not safe for concurrent use.
type Engine struct {
	cfg    Config
	doc    *font.Document
	lookup *Lookup
	vary   *glyph.Variator

	// Now returns the creation time recorded in page metadata.
	Now func() time.Time
}

// NewEngine returns an engine for the given document.  The document must
// not be modified while the engine is in use.  If v is nil, glyphs are
// not varied regardless of cfg.Variation.
func NewEngine(doc *font.Document, cfg Config, v *glyph.Variator) *Engine {
	return &Engine{
		cfg:    cfg,
		doc:    doc,
		lookup: NewLookup(doc.Keys()),
		vary:   v,
		Now:    time.Now,
	}
}

// LayoutLine lays out a single line of text, starting with the baseline at
// origin.
func (e *Engine) LayoutLine(text string, origin vec.Vec2) LineResult {
	log := logger.Get()
	fs := e.cfg.FontSize
	variation := e.cfg.GlyphVariation()
	if e.vary == nil {
		variation = glyph.Variation{}
	}

	var res LineResult
	missing := map[string]bool{}
	x := origin.X

	// previous cursive exit point, nil if the chain is broken
	var prevExit *vec.Vec2
	var prevWidth float64

	runes := []rune(norm.NFC.String(text))
	for pos := 0; pos < len(runes); {
		if unicode.IsSpace(runes[pos]) {
			x += spaceAdvance * fs
			prevExit = nil
			pos++
			continue
		}

		key, n := e.lookup.Match(runes, pos)
		if n == 0 {
			key = string(runes[pos])
			missing[key] = true
			x += missingAdvance * fs
			prevExit = nil
			log.Debug("glyph missing", "key", key)
			pos++
			continue
		}
		pos += n

		c := e.doc.Characters[key]
		b := c.Bounds
		if b.IsZero() {
			b = glyph.BoundsOf(c.Strokes)
		}
		strokes := glyph.Normalize(c.Strokes, b, c.Metrics)
		if e.vary != nil {
			strokes = e.vary.Apply(strokes, variation)
		}
		conn := glyph.ExtractConnectors(strokes)

		ratio := FallbackBaselineRatio
		if r, ok := c.Metrics.BaselineRatio(); ok {
			ratio = r
		}
		top := vec.Vec2{X: x, Y: origin.Y - ratio*fs}
		at := func(p vec.Vec2) vec.Vec2 {
			return top.Add(p.Mul(fs))
		}

		if e.cfg.ConnectCursive && prevExit != nil && conn != nil {
			join := (&path.Data{}).MoveTo(*prevExit).LineTo(at(conn.Entry))
			res.Marks = append(res.Marks, Mark{
				Kind:  JoinMark,
				Path:  join,
				Width: prevWidth,
				Key:   key,
			})
		}

		for _, s := range strokes {
			w := glyph.WidthFor(s, e.cfg.Widths)
			switch len(s.Points) {
			case 0:
				continue
			case 1:
				res.Marks = append(res.Marks, Mark{
					Kind:   DotMark,
					Center: at(s.Points[0].Vec()),
					Width:  w,
					Key:    key,
				})
			default:
				res.Marks = append(res.Marks, Mark{
					Kind:  StrokeMark,
					Path:  glyph.PathFor(s.Points, fs, top),
					Width: w,
					Key:   key,
				})
			}
		}

		prevExit = nil
		if conn != nil {
			exit := at(conn.Exit)
			prevExit = &exit
			prevWidth = glyph.WidthFor(strokes[len(strokes)-1], e.cfg.Widths)
		}

		advance := glyph.BoundsOf(strokes).Width * fs
		if advance == 0 {
			advance = emptyAdvance * fs
		}
		x += advance + e.cfg.LetterSpacing

		log.Debug("glyph placed", "key", key, "x", top.X, "advance", advance)
	}

	res.Advance = x - origin.X
	if len(missing) > 0 {
		res.Missing = make([]string, 0, len(missing))
		for key := range missing {
			res.Missing = append(res.Missing, key)
		}
		slices.Sort(res.Missing)
	}
	return res
}

// splitLines splits text at "\r\n", "\n" and "\r".
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// Assemble lays out a complete, possibly multi-line text.
//
// The page size is an estimate based on the number of characters in the
// longest line.  Glyphs wider than average may extend beyond the right
// margin.
func (e *Engine) Assemble(text string) (*Page, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	col, err := ParseColor(e.cfg.StrokeColor)
	if err != nil {
		return nil, &ConfigError{Field: "StrokeColor", Value: e.cfg.StrokeColor, Err: err}
	}

	fs := e.cfg.FontSize
	pad := e.cfg.Padding
	lineStep := fs * e.cfg.LineHeight

	lines := splitLines(norm.NFC.String(text))
	longest := 0
	for _, l := range lines {
		longest = max(longest, len([]rune(l)))
	}

	page := &Page{
		Width:     float64(longest)*(fs*0.6+e.cfg.LetterSpacing) + 2*pad,
		Height:    float64(len(lines))*lineStep + 2*pad,
		Color:     col,
		ColorName: e.cfg.StrokeColor,
	}

	missing := map[string]bool{}
	for i, l := range lines {
		y := pad + lineStep*float64(i+1)
		res := e.LayoutLine(l, vec.Vec2{X: pad, Y: y})
		for _, key := range res.Missing {
			missing[key] = true
		}
		page.Lines = append(page.Lines, Line{
			Text:       l,
			Baseline:   y,
			LineResult: res,
		})
	}
	for key := range missing {
		page.Missing = append(page.Missing, key)
	}
	slices.Sort(page.Missing)

	if len(page.Missing) > 0 {
		logger.Get().Warn("glyphs missing from font", "keys", page.Missing)
	}

	page.Info = meta.Info{
		Generator:   meta.Generator,
		Created:     e.Now(),
		FontVersion: e.doc.Metadata.Version,
		Title:       lines[0],
		Author:      e.doc.Metadata.Author,
		Missing:     page.Missing,
	}
	return page, nil
}
