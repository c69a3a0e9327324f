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

// Command hwrender renders text with a handwriting font.
//
// Usage:
//
//	hwrender -font glyphs.json [flags] text...
//
// The text is taken from the -text flag or from the remaining command line
// arguments.  If the text is "-", it is read from standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/handwriting"
	"seehuhn.de/go/handwriting/font"
	"seehuhn.de/go/handwriting/font/archive"
	"seehuhn.de/go/handwriting/layout"
	"seehuhn.de/go/handwriting/raster"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hwrender:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := layout.DefaultConfig()

	fontFile := flag.String("font", "", "load the font from this JSON `file`")
	archiveFile := flag.String("archive", "", "load the font from this glyph archive `file`")
	text := flag.String("text", "", "the `text` to render")
	outFile := flag.String("o", "", "write output to `file` (default stdout)")
	format := flag.String("format", "", "output format: svg, pdf or png (default from -o, else svg)")
	scale := flag.Float64("scale", 2, "pixels per unit for png output")
	thumb := flag.Int("thumb", 0, "limit png output to `n` pixels per side")
	seed := flag.Uint64("seed", 1, "random seed for glyph variation")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Float64Var(&cfg.FontSize, "size", cfg.FontSize, "font size")
	flag.Float64Var(&cfg.LetterSpacing, "spacing", cfg.LetterSpacing, "extra space between letters")
	flag.Float64Var(&cfg.LineHeight, "line-height", cfg.LineHeight, "line height, relative to the font size")
	flag.Float64Var(&cfg.Variation, "variation", cfg.Variation, "amount of random glyph variation, 0-10")
	flag.BoolVar(&cfg.ConnectCursive, "cursive", cfg.ConnectCursive, "connect neighbouring glyphs")
	flag.StringVar(&cfg.StrokeColor, "color", cfg.StrokeColor, "stroke color, as #rrggbb or SVG color name")
	flag.Parse()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		handwriting.SetLogger(slog.New(h))
	}

	var store font.Store
	switch {
	case *fontFile != "" && *archiveFile != "":
		return errors.New("-font and -archive are mutually exclusive")
	case *fontFile != "":
		store = &font.FileStore{Path: *fontFile}
	case *archiveFile != "":
		store = &archive.Store{Path: *archiveFile}
	default:
		return errors.New("no font given, use -font or -archive")
	}
	lib := font.NewLibrary(store)
	if err := lib.Load(); err != nil {
		return err
	}

	s := *text
	if s == "" {
		s = strings.Join(flag.Args(), " ")
	}
	if s == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		s = string(data)
	}

	kind := *format
	if kind == "" {
		kind = "svg"
		for _, ext := range []string{"pdf", "png"} {
			if strings.HasSuffix(strings.ToLower(*outFile), "."+ext) {
				kind = ext
			}
		}
	}
	switch kind {
	case "svg", "pdf", "png":
	default:
		return fmt.Errorf("unknown output format %q", kind)
	}

	var out io.Writer = os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	} else if kind != "svg" && term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("refusing to write %s data to a terminal, use -o", kind)
	}

	r := handwriting.NewRenderer(lib, cfg, *seed)
	var page *layout.Page
	var err error
	switch kind {
	case "svg":
		page, err = r.RenderSVG(out, s)
	case "pdf":
		page, err = r.RenderPDF(out, s)
	case "png":
		page, err = r.Render(s)
		if err == nil {
			img := raster.DrawPage(page, *scale)
			if *thumb > 0 {
				img = raster.Thumbnail(img, *thumb)
			}
			err = png.Encode(out, img)
		}
	}
	if err != nil {
		return err
	}

	if len(page.Missing) > 0 {
		fmt.Fprintf(os.Stderr, "hwrender: missing glyphs: %s\n", strings.Join(page.Missing, " "))
	}
	if f, ok := out.(*os.File); ok && f != os.Stdout {
		return f.Close()
	}
	return nil
}
