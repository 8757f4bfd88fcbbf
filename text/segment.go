package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// run is a maximal range of runes sharing bidi level, script and face.
type run struct {
	start, end int // rune indices, end exclusive
	level      uint8
	script     language.Script
	face       *loadedFace
}

func (r run) direction() di.Direction {
	if r.level%2 == 1 {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// paragraphRTL reports whether the first strong character within the first
// depth runes is right-to-left. depth < 1 inspects the whole paragraph.
func paragraphRTL(runes []rune, depth int) bool {
	for i, r := range runes {
		if depth > 0 && i >= depth {
			break
		}
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return false
		case bidi.R, bidi.AL:
			return true
		}
	}
	return false
}

// bidiLevels computes the embedding level of every rune. The paragraph level
// is 0 for LTR and 1 for RTL; runs against the paragraph direction sit one
// level above it.
func bidiLevels(text string, n int, rtl bool) []uint8 {
	base := uint8(0)
	defaultDir := bidi.LeftToRight
	if rtl {
		base = 1
		defaultDir = bidi.RightToLeft
	}

	levels := make([]uint8, n)
	for i := range levels {
		levels[i] = base
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(defaultDir)); err != nil {
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// run.Pos() returns rune indices, end inclusive.
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		start, end := r.Pos()
		runRTL := r.Direction() == bidi.RightToLeft
		level := base
		if runRTL != rtl {
			level = base + 1
		}
		for j := start; j <= end && j < n; j++ {
			levels[j] = level
		}
	}
	return levels
}

// scripts detects the script of every rune and resolves Common and
// Inherited runes from their neighbours.
func scripts(runes []rune) []language.Script {
	out := make([]language.Script, len(runes))
	for i, r := range runes {
		out[i] = language.LookupScript(r)
	}

	last := language.Common
	for i := range out {
		switch out[i] {
		case language.Inherited:
			out[i] = last
		case language.Common:
		default:
			last = out[i]
		}
	}

	last = language.Common
	for i := range out {
		if out[i] != language.Common {
			last = out[i]
			continue
		}
		out[i] = resolveCommonScript(last, nextConcreteScript(out, i+1))
	}
	return out
}

// nextConcreteScript finds the next non-Common, non-Inherited script starting at index start.
func nextConcreteScript(s []language.Script, start int) language.Script {
	for j := start; j < len(s); j++ {
		if s[j] != language.Common && s[j] != language.Inherited {
			return s[j]
		}
	}
	return language.Common
}

// resolveCommonScript determines what script a Common character should inherit.
func resolveCommonScript(prev, next language.Script) language.Script {
	switch {
	case prev != language.Common:
		return prev
	case next != language.Common:
		return next
	default:
		return language.Latin
	}
}

// segment splits a paragraph into shaping runs.
func segment(runes []rune, levels []uint8, scr []language.Script, faces []*loadedFace) []run {
	if len(runes) == 0 {
		return nil
	}

	runs := make([]run, 0, 4)
	cur := run{start: 0, level: levels[0], script: scr[0], face: faces[0]}
	for i := 1; i < len(runes); i++ {
		if levels[i] == cur.level && scr[i] == cur.script && faces[i] == cur.face {
			continue
		}
		cur.end = i
		runs = append(runs, cur)
		cur = run{start: i, level: levels[i], script: scr[i], face: faces[i]}
	}
	cur.end = len(runes)
	return append(runs, cur)
}
