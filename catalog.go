package textparity

import (
	"fmt"
	"os"
)

// DefaultFontPaths is the catalog used by cmd/paritydump, relative to the
// working directory. Order is significant: it fixes every font index.
var DefaultFontPaths = []string{
	"fonts/Inter-Regular.ttf",
	"fonts/NotoSans-Regular.ttf",
	"fonts/NotoSansHebrew.ttf",
	"fonts/NotoSansArabic.ttf",
}

// FontCatalog maps face handles to stable small-integer indices.
// Indices follow file order, then the face order the store reports
// within a file.
type FontCatalog struct {
	faces []FaceID
	index map[FaceID]int
	paths []string
}

// NewFontCatalog reads every path in order and registers it with store.
// Any unreadable or unloadable file is fatal and reported as *FontLoadError.
func NewFontCatalog(store FontStore, paths []string) (*FontCatalog, error) {
	if len(paths) == 0 {
		return nil, ErrNoFonts
	}
	sources := make([][]byte, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, &FontLoadError{Path: p, Err: fmt.Errorf("read: %w", err)}
		}
		sources = append(sources, data)
	}
	return newCatalog(store, paths, sources)
}

// NewFontCatalogFromData registers in-memory font files. Names label the
// sources in errors and logs and must have the same length as sources.
func NewFontCatalogFromData(store FontStore, names []string, sources [][]byte) (*FontCatalog, error) {
	if len(sources) == 0 {
		return nil, ErrNoFonts
	}
	if len(names) != len(sources) {
		return nil, fmt.Errorf("textparity: %d names for %d font sources", len(names), len(sources))
	}
	return newCatalog(store, names, sources)
}

func newCatalog(store FontStore, names []string, sources [][]byte) (*FontCatalog, error) {
	c := &FontCatalog{
		index: make(map[FaceID]int),
		paths: append([]string(nil), names...),
	}
	for i, data := range sources {
		ids, err := store.LoadFontData(data)
		if err != nil {
			return nil, &FontLoadError{Path: names[i], Err: err}
		}
		if len(ids) == 0 {
			return nil, &FontLoadError{Path: names[i], Err: ErrNoFaces}
		}
		for _, id := range ids {
			if _, dup := c.index[id]; dup {
				continue
			}
			c.index[id] = len(c.faces)
			c.faces = append(c.faces, id)
		}
		Logger().Info("font loaded", "source", names[i], "faces", len(ids))
	}
	return c, nil
}

// IndexOf returns the catalog position of face, or -1 if it was never
// loaded through this catalog.
func (c *FontCatalog) IndexOf(face FaceID) int {
	if c == nil || face == nil {
		return -1
	}
	if i, ok := c.index[face]; ok {
		return i
	}
	return -1
}

// Len returns the number of faces in the catalog.
func (c *FontCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.faces)
}

// Face returns the face at index i.
func (c *FontCatalog) Face(i int) (FaceID, bool) {
	if c == nil || i < 0 || i >= len(c.faces) {
		return nil, false
	}
	return c.faces[i], true
}

// Sources returns the source names in load order.
func (c *FontCatalog) Sources() []string {
	return append([]string(nil), c.paths...)
}
