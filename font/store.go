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

package font

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is a persistence backend for font documents.
type Store interface {
	// Load reads the stored document.  If nothing has been stored yet,
	// Load returns (nil, nil).
	Load() (*Document, error)

	// Save replaces the stored document.
	Save(*Document) error
}

// FileStore keeps a font document in a JSON file.
type FileStore struct {
	Path string
}

// Load implements the [Store] interface.
func (s *FileStore) Load() (*Document, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return doc, nil
}

// Save implements the [Store] interface.
// The file is replaced atomically: the document is written to a temporary
// file in the same directory, which is then renamed.
func (s *FileStore) Save(doc *Document) error {
	dir, base := filepath.Split(s.Path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	err = Encode(tmp, doc)
	if err2 := tmp.Close(); err == nil {
		err = err2
	}
	if err == nil {
		err = os.Rename(tmpName, s.Path)
	}
	if err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
