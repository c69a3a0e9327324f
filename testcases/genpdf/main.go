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

// Command genpdf renders the sample texts with the sample font.
//
// For every sample, an SVG, a PDF and a PNG file are written.  With the
// -gs flag, the PDF files are also rendered using Ghostscript, to allow a
// visual comparison with the built-in rasteriser.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"seehuhn.de/go/handwriting"
	"seehuhn.de/go/handwriting/font"
	"seehuhn.de/go/handwriting/layout"
	"seehuhn.de/go/handwriting/testcases"
)

func main() {
	dir := flag.String("dir", "testdata/samples", "output directory")
	gs := flag.Bool("gs", false, "also render the PDF files with Ghostscript")
	seed := flag.Uint64("seed", 1, "seed for the glyph variation")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		log.Fatal(err)
	}

	lib := font.NewLibrary(nil)
	lib.Replace(testcases.Font())

	for _, s := range testcases.Samples() {
		base := filepath.Join(*dir, s.Name)
		if err := generate(lib, s, *seed, base); err != nil {
			log.Fatalf("%s: %v", s.Name, err)
		}
		if *gs {
			if err := renderPNG(base+".pdf", base+"-gs.png"); err != nil {
				log.Fatalf("%s: %v", s.Name, err)
			}
		}
	}
}

func generate(lib *font.Library, s testcases.Sample, seed uint64, base string) error {
	type renderFunc func(r *handwriting.Renderer, w io.Writer) (*layout.Page, error)
	outputs := []struct {
		ext    string
		render renderFunc
	}{
		{".svg", func(r *handwriting.Renderer, w io.Writer) (*layout.Page, error) {
			return r.RenderSVG(w, s.Text)
		}},
		{".pdf", func(r *handwriting.Renderer, w io.Writer) (*layout.Page, error) {
			return r.RenderPDF(w, s.Text)
		}},
		{".png", func(r *handwriting.Renderer, w io.Writer) (*layout.Page, error) {
			return r.RenderPNG(w, s.Text, 2)
		}},
	}

	for _, out := range outputs {
		// a fresh renderer per file, so that all formats show the same
		// glyph variation
		r := handwriting.NewRenderer(lib, s.Config, seed)
		r.Now = func() time.Time { return testcases.Created }

		f, err := os.Create(base + out.ext)
		if err != nil {
			return err
		}
		page, err := out.render(r, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		if len(page.Missing) > 0 && out.ext == ".svg" {
			fmt.Printf("%s: missing glyphs %q\n", s.Name, page.Missing)
		}
	}
	return nil
}

func renderPNG(pdfPath, pngPath string) error {
	// -r144: two pixels per point, matching the built-in PNG output
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r144",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
