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
	"io"
	"sync"
	"sync/atomic"

	"seehuhn.de/go/handwriting/internal/logger"
)

// Library holds the current font document of an application.
//
// Readers obtain an immutable snapshot of the document using
// [Library.Snapshot].  Writers never modify a published document in place;
// they publish a modified copy instead.  All methods are safe for
// concurrent use.
type Library struct {
	cur   atomic.Pointer[Document]
	mu    sync.Mutex // serializes writers
	store Store
}

// NewLibrary returns an empty library backed by the given store.
// The store may be nil, in which case Load and Save do nothing.
func NewLibrary(store Store) *Library {
	return &Library{store: store}
}

// Snapshot returns the current document, or nil if no document has been
// loaded.  The returned document must not be modified.
func (l *Library) Snapshot() *Document {
	return l.cur.Load()
}

// Replace makes doc the current document.
// The caller must not modify doc afterwards.
func (l *Library) Replace(doc *Document) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cur.Store(doc)
}

// Import reads a JSON font document and replaces the current document
// with it.  If the data is malformed, the current document is kept.
func (l *Library) Import(r io.Reader) error {
	doc, err := Decode(r)
	if err != nil {
		logger.Get().Warn("font import rejected", "error", err)
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.cur.Store(doc)
	logger.Get().Info("font imported", "glyphs", doc.Len(), "version", doc.Metadata.Version)
	return nil
}

// SetCharacter stores c under key in a copy of the current document, and
// publishes the copy.  If no document is loaded, a new one is created.
func (l *Library) SetCharacter(key string, c *Character) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var doc *Document
	if old := l.cur.Load(); old != nil {
		doc = old.Clone()
	} else {
		doc = New()
	}
	if err := doc.Set(key, c); err != nil {
		return err
	}
	l.cur.Store(doc)
	logger.Get().Debug("glyph stored", "key", key, "strokes", len(c.Strokes))
	return nil
}

// DeleteCharacter removes key from a copy of the current document, and
// publishes the copy.
func (l *Library) DeleteCharacter(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	old := l.cur.Load()
	if old == nil {
		return ErrNotFound
	}
	doc := old.Clone()
	if err := doc.Delete(key); err != nil {
		return err
	}
	l.cur.Store(doc)
	return nil
}

// Load reads the document from the store.  If the store is empty, the
// current document is left unchanged.
func (l *Library) Load() error {
	if l.store == nil {
		return nil
	}
	doc, err := l.store.Load()
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.cur.Store(doc)
	logger.Get().Info("font loaded", "glyphs", doc.Len())
	return nil
}

// Save writes the current document to the store.
func (l *Library) Save() error {
	doc := l.cur.Load()
	if l.store == nil || doc == nil {
		return nil
	}
	if err := l.store.Save(doc); err != nil {
		return err
	}
	logger.Get().Info("font saved", "glyphs", doc.Len())
	return nil
}
