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

// Package handwriting renders text using glyphs captured from a pen.
//
// Glyphs are recorded with a [capture.Session] and collected in a
// [font.Library].  A [Renderer] lays out text using the current font
// document and writes the result as SVG, PDF or PNG.
//
// By default the packages in this module log nothing.  Use [SetLogger] to
// enable log output.
package handwriting

//go:generate go run ./testcases/export

import (
	"errors"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"time"

	"seehuhn.de/go/handwriting/font"
	"seehuhn.de/go/handwriting/glyph"
	"seehuhn.de/go/handwriting/internal/logger"
	"seehuhn.de/go/handwriting/layout"
	"seehuhn.de/go/handwriting/pdfout"
	"seehuhn.de/go/handwriting/raster"
	"seehuhn.de/go/handwriting/svg"
)

var (
	// ErrEmptyText is returned when the text to render contains no
	// printable characters.
	ErrEmptyText = layout.ErrEmptyText

	// ErrNoDocument is returned when no font document has been loaded.
	ErrNoDocument = errors.New("no font document loaded")
)

// SetLogger installs l as the logger for all packages of this module.
// Passing nil disables logging.
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger.Get()
}

// Renderer renders text with the glyphs of a font library.
//
// A Renderer is not safe for concurrent use.  Separate renderers may share
// a library.
type Renderer struct {
	Library *font.Library
	Config  layout.Config

	// Variator provides the random variation of glyph instances.
	// If nil, glyphs are drawn exactly as stored.
	Variator *glyph.Variator

	// Now, if set, replaces time.Now for the creation time recorded in
	// the output metadata.
	Now func() time.Time
}

// NewRenderer returns a renderer using the given library and
// configuration.  The seed initialises the random variation of glyphs.
func NewRenderer(lib *font.Library, cfg layout.Config, seed uint64) *Renderer {
	return &Renderer{
		Library:  lib,
		Config:   cfg,
		Variator: glyph.NewVariator(seed),
	}
}

// Render lays out text using the current document of the library.
// Missing glyphs are not an error; they are listed in the Missing field
// of the returned page.
func (r *Renderer) Render(text string) (*layout.Page, error) {
	var doc *font.Document
	if r.Library != nil {
		doc = r.Library.Snapshot()
	}
	if doc == nil {
		return nil, ErrNoDocument
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}

	e := layout.NewEngine(doc, r.Config, r.Variator)
	if r.Now != nil {
		e.Now = r.Now
	}
	page, err := e.Assemble(text)
	if err != nil {
		return nil, err
	}
	logger.Get().Debug("text rendered",
		"lines", len(page.Lines), "width", page.Width, "height", page.Height)
	return page, nil
}

// RenderSVG renders text and writes the result to w as an SVG document.
func (r *Renderer) RenderSVG(w io.Writer, text string) (*layout.Page, error) {
	page, err := r.Render(text)
	if err != nil {
		return nil, err
	}
	return page, svg.Write(w, page)
}

// RenderPDF renders text and writes the result to w as a PDF document.
func (r *Renderer) RenderPDF(w io.Writer, text string) (*layout.Page, error) {
	page, err := r.Render(text)
	if err != nil {
		return nil, err
	}
	return page, pdfout.Write(w, page)
}

// RenderPNG renders text and writes the result to w as a PNG image.
// One unit of page space maps to scale pixels.
func (r *Renderer) RenderPNG(w io.Writer, text string, scale float64) (*layout.Page, error) {
	page, err := r.Render(text)
	if err != nil {
		return nil, err
	}
	return page, png.Encode(w, raster.DrawPage(page, scale))
}
