package text

import "unicode"

// fontMap resolves the face used for each rune of a paragraph.
//
// The requested family is tried first, then every other face in load
// order. Combining marks stay on the face of their base character so that
// clusters are never split across faces. Runes no face covers go to the
// primary face and shape as .notdef.
type fontMap struct {
	primary *loadedFace
	order   []*loadedFace
}

func (e *Engine) newFontMap(family string) fontMap {
	var primary *loadedFace
	if faces := e.byFamily[normalizeFamily(family)]; len(faces) > 0 {
		primary = faces[0]
	} else {
		primary = e.faces[0]
		e.logger.Warn("family not loaded, using first face", "family", family, "fallback", primary.family)
	}
	order := make([]*loadedFace, 0, len(e.faces))
	order = append(order, primary)
	for _, f := range e.faces {
		if f != primary {
			order = append(order, f)
		}
	}
	return fontMap{primary: primary, order: order}
}

// resolve returns the face for every rune.
func (m fontMap) resolve(runes []rune) []*loadedFace {
	out := make([]*loadedFace, len(runes))
	for i, r := range runes {
		if i > 0 && isClusterContinuation(r) {
			out[i] = out[i-1]
			continue
		}
		out[i] = m.faceFor(r)
	}
	return out
}

func (m fontMap) faceFor(r rune) *loadedFace {
	if isDefaultIgnorable(r) {
		return m.primary
	}
	for _, f := range m.order {
		if _, ok := f.face.NominalGlyph(r); ok {
			return f
		}
	}
	return m.primary
}

func isClusterContinuation(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Me) || r == '\u200d'
}

// isDefaultIgnorable reports control characters the primary face should
// keep even when it has no glyph for them.
func isDefaultIgnorable(r rune) bool {
	return r == '\t' || unicode.Is(unicode.Cc, r)
}
