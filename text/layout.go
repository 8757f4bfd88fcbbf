package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textparity"
)

// layoutUnitsPerPixel is the wrapper resolution. The go-text wrapper
// compares whole 26.6 units against an integer width, so runs are scaled
// by this factor to keep sub-pixel widths meaningful.
const layoutUnitsPerPixel = 64

// piece is the part of a shaped run that landed on one line.
type piece struct {
	run    int
	start  int // rune index
	end    int // rune index, exclusive
	level  uint8
	glyphs []shaping.Glyph // visual order, font units
}

// Layout implements textparity.Engine.
func (e *Engine) Layout(line textparity.ShapedLine, req textparity.LayoutRequest) ([]textparity.Line, error) {
	p, ok := line.(*shapedParagraph)
	if !ok || p.engine != e {
		return nil, ErrForeignLine
	}
	if len(p.runs) == 0 {
		return nil, nil
	}

	var lines [][]piece
	if wraps(req) {
		width, _ := req.Width.Get()
		wrapped, err := e.wrap(p, req.FontSize, width, req.Wrap)
		if err != nil {
			return nil, err
		}
		lines = wrapped
	} else {
		whole := make([]piece, len(p.runs))
		for i, r := range p.runs {
			whole[i] = piece{run: i, start: r.start, end: r.end, level: r.level, glyphs: p.outs[i].Glyphs}
		}
		lines = [][]piece{whole}
	}

	out := make([]textparity.Line, 0, len(lines))
	for _, pieces := range lines {
		out = append(out, p.position(visualOrder(pieces), req))
	}
	return out, nil
}

// wrap breaks the paragraph with the go-text line wrapper and maps each
// wrapped run back to the unscaled glyphs it covers.
func (e *Engine) wrap(p *shapedParagraph, fontSize, width float32, policy textparity.WrapPolicy) ([][]piece, error) {
	scaled := make([]shaping.Output, len(p.outs))
	for i, out := range p.outs {
		scaled[i] = scaleOutput(out, fontSize*layoutUnitsPerPixel/p.runs[i].face.upem)
	}

	cfg := shaping.WrapConfig{BreakPolicy: breakPolicy(policy)}
	wrapped, _ := e.wrapper.WrapParagraph(cfg, maxWidthUnits(width), p.runes, shaping.NewSliceIterator(scaled))

	lines := make([][]piece, 0, len(wrapped))
	for _, wl := range wrapped {
		pieces := make([]piece, 0, len(wl))
		for _, o := range wl {
			pc, err := p.pieceFor(o.Runes.Offset, o.Runes.Count)
			if err != nil {
				return nil, err
			}
			pieces = append(pieces, pc)
		}
		lines = append(lines, pieces)
	}
	return lines, nil
}

// pieceFor selects the unscaled glyphs of the run covering [offset, offset+count).
func (p *shapedParagraph) pieceFor(offset, count int) (piece, error) {
	for i, r := range p.runs {
		if offset < r.start || offset+count > r.end {
			continue
		}
		pc := piece{run: i, start: offset, end: offset + count, level: r.level}
		for _, g := range p.outs[i].Glyphs {
			if g.ClusterIndex >= offset && g.ClusterIndex < offset+count {
				pc.glyphs = append(pc.glyphs, g)
			}
		}
		return pc, nil
	}
	return piece{}, &RunMappingError{RuneOffset: offset, RuneCount: count}
}

// scaleOutput returns a copy of out with advances and offsets multiplied
// by factor. The wrapper reads nothing else.
func scaleOutput(out shaping.Output, factor float32) shaping.Output {
	s := out
	s.Glyphs = make([]shaping.Glyph, len(out.Glyphs))
	for i, g := range out.Glyphs {
		g.Advance = scaleFixed(g.Advance, factor)
		g.XOffset = scaleFixed(g.XOffset, factor)
		g.YOffset = scaleFixed(g.YOffset, factor)
		s.Glyphs[i] = g
	}
	s.Size = scaleFixed(out.Size, factor)
	s.RecomputeAdvance()
	return s
}

func scaleFixed(v fixed.Int26_6, factor float32) fixed.Int26_6 {
	f := float32(v) * factor
	if f < 0 {
		return fixed.Int26_6(f - 0.5)
	}
	return fixed.Int26_6(f + 0.5)
}

// visualOrder reorders the pieces of one line for display: from the
// highest level down to the lowest odd level, every maximal sequence at or
// above that level is reversed.
func visualOrder(pieces []piece) []piece {
	out := append([]piece(nil), pieces...)
	if len(out) < 2 {
		return out
	}
	var hi, loOdd uint8 = 0, 255
	for _, pc := range out {
		if pc.level > hi {
			hi = pc.level
		}
		if pc.level%2 == 1 && pc.level < loOdd {
			loOdd = pc.level
		}
	}
	if loOdd == 255 {
		return out
	}
	for lvl := hi; lvl >= loOdd && lvl > 0; lvl-- {
		for i := 0; i < len(out); {
			if out[i].level < lvl {
				i++
				continue
			}
			j := i
			for j < len(out) && out[j].level >= lvl {
				j++
			}
			for a, b := i, j-1; a < b; a, b = a+1, b-1 {
				out[a], out[b] = out[b], out[a]
			}
			i = j
		}
	}
	return out
}

// position places the glyphs of one line. Pen positions advance left to
// right in pixels; offsets stay in em.
func (p *shapedParagraph) position(pieces []piece, req textparity.LayoutRequest) textparity.Line {
	var line textparity.Line
	var x float32
	flags := textparity.FlagsFor(req.Hinting)
	for _, pc := range pieces {
		r := p.runs[pc.run]
		ends := clusterEnds(p.outs[pc.run].Glyphs, r.end)
		for _, g := range pc.glyphs {
			w := toEm(g.Advance, r.face) * req.FontSize
			line.Glyphs = append(line.Glyphs, textparity.LayoutGlyph{
				Start:      p.offsets[g.ClusterIndex],
				End:        p.offsets[ends[g.ClusterIndex]],
				Face:       r.face.handle,
				GlyphID:    uint32(g.GlyphID),
				FontSize:   req.FontSize,
				FontWeight: p.weight,
				X:          x,
				W:          w,
				Level:      pc.level,
				XOffset:    toEm(g.XOffset, r.face),
				YOffset:    toEm(g.YOffset, r.face),
				CacheFlags: flags,
				Metadata:   p.meta,
			})
			x += w
		}
	}
	line.W = x
	return line
}

// isRTL reports whether a go-text direction runs right to left.
func isRTL(d di.Direction) bool {
	return d == di.DirectionRTL
}
