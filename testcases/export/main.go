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

// Command export writes the sample font to testdata, both as a JSON font
// document and as an SSTable archive.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"seehuhn.de/go/handwriting/font"
	"seehuhn.de/go/handwriting/font/archive"
	"seehuhn.de/go/handwriting/testcases"
)

func main() {
	dir := flag.String("dir", "testdata", "output directory")
	flag.Parse()

	if err := run(*dir); err != nil {
		log.Fatal(err)
	}
}

func run(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	doc := testcases.Font()

	js := &font.FileStore{Path: filepath.Join(dir, "sample-font.json")}
	if err := js.Save(doc); err != nil {
		return err
	}

	ar := &archive.Store{Path: filepath.Join(dir, "sample-font.sst")}
	return ar.Save(doc)
}
