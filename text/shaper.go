package text

import (
	"sort"

	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textparity"
)

// shapedParagraph is the Engine's ShapedLine.
//
// Runs are shaped at one em per pixel, so every fixed-point metric in outs
// is a font unit times 64.
type shapedParagraph struct {
	engine  *Engine
	text    string
	runes   []rune
	offsets []int // byte offset of each rune, plus len(text)
	rtl     bool
	weight  uint16
	meta    uint
	runs    []run
	outs    []shaping.Output
	glyphs  []textparity.ShapedGlyph
}

func (p *shapedParagraph) RTL() bool { return p.rtl }

func (p *shapedParagraph) Glyphs() []textparity.ShapedGlyph { return p.glyphs }

// Shape implements textparity.Engine.
func (e *Engine) Shape(req textparity.ShapeRequest) (textparity.ShapedLine, error) {
	if len(e.faces) == 0 {
		return nil, ErrNoFaces
	}

	runes := []rune(req.Text)
	p := &shapedParagraph{
		engine:  e,
		text:    req.Text,
		runes:   runes,
		offsets: runeOffsets(req.Text, runes),
		rtl:     paragraphRTL(runes, req.DirectionDepth),
		weight:  req.Weight,
		meta:    req.Metadata,
	}
	if len(runes) == 0 {
		return p, nil
	}

	levels := bidiLevels(req.Text, len(runes), p.rtl)
	faces := e.newFontMap(req.Family).resolve(runes)
	p.runs = segment(runes, levels, scripts(runes), faces)

	p.outs = make([]shaping.Output, len(p.runs))
	for i, r := range p.runs {
		p.outs[i] = e.shapeRun(runes, r)
		p.glyphs = appendLogical(p.glyphs, p, r, p.outs[i])
	}
	return p, nil
}

func (e *Engine) shapeRun(runes []rune, r run) shaping.Output {
	input := shaping.Input{
		Text:      runes,
		RunStart:  r.start,
		RunEnd:    r.end,
		Direction: r.direction(),
		Face:      r.face.face,
		Size:      fixed.I(int(r.face.upem)),
		Script:    r.script,
		Language:  e.lang,
	}
	out := e.shaper.Shape(input)
	out.Glyphs = append([]shaping.Glyph(nil), out.Glyphs...)
	e.expandTabs(&out, runes, r.face)
	return out
}

// expandTabs gives every tab glyph the advance of tabWidth spaces.
func (e *Engine) expandTabs(out *shaping.Output, runes []rune, f *loadedFace) {
	changed := false
	for i := range out.Glyphs {
		g := &out.Glyphs[i]
		if g.ClusterIndex < 0 || g.ClusterIndex >= len(runes) || runes[g.ClusterIndex] != '\t' {
			continue
		}
		g.Advance = fixed.Int26_6(float32(e.cfg.tabWidth) * spaceAdvance(f) * 64)
		g.XAdvance = g.Advance
		changed = true
	}
	if changed {
		out.RecomputeAdvance()
	}
}

// spaceAdvance returns the advance of U+0020 in font units.
func spaceAdvance(f *loadedFace) float32 {
	gid, ok := f.face.NominalGlyph(' ')
	if !ok {
		return f.upem / 4
	}
	return f.face.HorizontalAdvance(gid)
}

// appendLogical converts a shaped run to logical-order glyphs.
// go-text emits right-to-left runs in visual order, so they are reversed.
func appendLogical(dst []textparity.ShapedGlyph, p *shapedParagraph, r run, out shaping.Output) []textparity.ShapedGlyph {
	ends := clusterEnds(out.Glyphs, r.end)
	n := len(out.Glyphs)
	for k := 0; k < n; k++ {
		i := k
		if isRTL(out.Direction) {
			i = n - 1 - k
		}
		g := out.Glyphs[i]
		dst = append(dst, textparity.ShapedGlyph{
			Start:    p.offsets[g.ClusterIndex],
			End:      p.offsets[ends[g.ClusterIndex]],
			Face:     r.face.handle,
			GlyphID:  uint32(g.GlyphID),
			XAdvance: toEm(g.Advance, r.face),
			YAdvance: toEm(g.YAdvance, r.face),
			XOffset:  toEm(g.XOffset, r.face),
			YOffset:  toEm(g.YOffset, r.face),
			Metadata: p.meta,
		})
	}
	return dst
}

// clusterEnds maps each cluster start rune to the rune index where the
// cluster ends: the next cluster start, or runEnd for the last cluster.
func clusterEnds(glyphs []shaping.Glyph, runEnd int) map[int]int {
	starts := make([]int, 0, len(glyphs))
	seen := make(map[int]int, len(glyphs))
	for _, g := range glyphs {
		if _, ok := seen[g.ClusterIndex]; !ok {
			seen[g.ClusterIndex] = 0
			starts = append(starts, g.ClusterIndex)
		}
	}
	sort.Ints(starts)
	for i, s := range starts {
		end := runEnd
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		seen[s] = end
	}
	return seen
}

// toEm converts a metric shaped at one em per pixel to em units.
func toEm(v fixed.Int26_6, f *loadedFace) float32 {
	return float32(v) / 64 / f.upem
}

// runeOffsets returns the byte offset of every rune plus a final len(text).
func runeOffsets(text string, runes []rune) []int {
	offsets := make([]int, 0, len(runes)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	return append(offsets, len(text))
}
