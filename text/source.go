package text

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/textparity"
)

// FaceHandle identifies a face loaded into an Engine. It is the
// textparity.FaceID the engine hands out.
type FaceHandle struct {
	id uint32
}

// loadedFace is one registered face.
type loadedFace struct {
	handle FaceHandle
	face   *font.Face
	outl   *sfnt.Font
	family string
	upem   float32
	buf    sfnt.Buffer
}

// LoadFontData implements textparity.FontStore.
// The data is parsed twice: once for shaping with go-text/typesetting and
// once with x/image/font/sfnt for family names and glyph outlines.
func (e *Engine) LoadFontData(data []byte) ([]textparity.FaceID, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	outl, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font outlines: %w", err)
	}

	lf := &loadedFace{
		handle: FaceHandle{id: uint32(len(e.faces))}, //nolint:gosec // face count is tiny
		face:   face,
		outl:   outl,
		upem:   float32(face.Upem()),
	}
	lf.family = familyName(outl, &lf.buf)
	if lf.upem <= 0 {
		lf.upem = float32(outl.UnitsPerEm())
	}

	e.faces = append(e.faces, lf)
	key := normalizeFamily(lf.family)
	e.byFamily[key] = append(e.byFamily[key], lf)

	e.logger.Debug("face registered", "family", lf.family, "upem", lf.upem, "glyphs", outl.NumGlyphs())
	return []textparity.FaceID{lf.handle}, nil
}

// Families returns the family name of every loaded face in load order.
func (e *Engine) Families() []string {
	out := make([]string, len(e.faces))
	for i, f := range e.faces {
		out[i] = f.family
	}
	return out
}

func (e *Engine) lookup(id textparity.FaceID) (*loadedFace, bool) {
	h, ok := id.(FaceHandle)
	if !ok || int(h.id) >= len(e.faces) {
		return nil, false
	}
	return e.faces[h.id], true
}

// familyName prefers the typographic family over the legacy family name.
func familyName(f *sfnt.Font, buf *sfnt.Buffer) string {
	if name, err := f.Name(buf, sfnt.NameIDTypographicFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

func normalizeFamily(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
