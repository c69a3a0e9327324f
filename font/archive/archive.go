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

// Package archive stores font documents as sorted string tables.
//
// Every glyph is kept in its own table entry under the key "char:" followed
// by the glyph key, and the document metadata is stored under "meta".
// Values are JSON encoded.  Single glyphs can be read from an archive
// without decoding the whole document.
package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/leveldb/db"
	"github.com/golang/leveldb/table"

	"seehuhn.de/go/handwriting/font"
)

const (
	charPrefix = "char:"
	metaKey    = "meta"
)

// Store is a [font.Store] backed by an SSTable file.
type Store struct {
	Path string
}

// Load implements the [font.Store] interface.
func (s *Store) Load() (*font.Document, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	r := table.NewReader(f, nil)
	defer r.Close()

	doc := &font.Document{
		Characters: make(map[string]*font.Character),
	}
	hasMeta := false
	it := r.Find(nil, nil)
	for it.Next() {
		key := string(it.Key())
		switch {
		case key == metaKey:
			if err := json.Unmarshal(it.Value(), &doc.Metadata); err != nil {
				it.Close()
				return nil, s.malformed("", err)
			}
			hasMeta = true
		case strings.HasPrefix(key, charPrefix):
			glyphKey := strings.TrimPrefix(key, charPrefix)
			c := &font.Character{}
			if err := json.Unmarshal(it.Value(), c); err != nil {
				it.Close()
				return nil, s.malformed(glyphKey, err)
			}
			doc.Characters[glyphKey] = c
		}
	}
	if err := it.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}

	if !hasMeta {
		return nil, s.malformed("", errors.New("missing metadata entry"))
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return doc, nil
}

// Lookup reads a single glyph from the archive.
// If the glyph is not present, [font.ErrNotFound] is returned.
func (s *Store) Lookup(key string) (*font.Character, error) {
	key, err := font.NormalizeKey(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	r := table.NewReader(f, nil)
	defer r.Close()

	val, err := r.Get([]byte(charPrefix+key), nil)
	if errors.Is(err, db.ErrNotFound) {
		return nil, font.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	c := &font.Character{}
	if err := json.Unmarshal(val, c); err != nil {
		return nil, s.malformed(key, err)
	}
	if err := c.Validate(); err != nil {
		return nil, s.malformed(key, err)
	}
	return c, nil
}

// Save implements the [font.Store] interface.
// The table is written to a temporary file which then replaces the
// archive.
func (s *Store) Save(doc *font.Document) error {
	dir, base := filepath.Split(s.Path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	err = writeTable(tmp, doc)
	if err == nil {
		err = os.Rename(tmpName, s.Path)
	}
	if err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// writeTable writes all entries in key order and closes f.
func writeTable(f *os.File, doc *font.Document) error {
	w := table.NewWriter(f, nil)

	// "char:..." sorts before "meta"
	for _, key := range doc.Keys() {
		val, err := json.Marshal(doc.Characters[key])
		if err == nil {
			err = w.Set([]byte(charPrefix+key), val, nil)
		}
		if err != nil {
			w.Close()
			return err
		}
	}
	val, err := json.Marshal(doc.Metadata)
	if err == nil {
		err = w.Set([]byte(metaKey), val, nil)
	}
	if err2 := w.Close(); err == nil {
		err = err2
	}
	return err
}

func (s *Store) malformed(key string, err error) error {
	return fmt.Errorf("%s: %w", s.Path, &font.MalformedError{Key: key, Err: err})
}
