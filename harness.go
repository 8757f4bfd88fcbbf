package textparity

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
)

// layoutScale and layoutOffset fix the physical glyph transform used for
// cache keys.
const (
	layoutScale   = 1.0
	layoutOffsetX = 0.0
	layoutOffsetY = 0.0
)

// Harness drives cases through an Engine and writes records.
//
// A Harness owns the engine context for the whole run: cases execute
// strictly in order against the same engine. Harness is not safe for
// concurrent use.
type Harness struct {
	engine  Engine
	catalog *FontCatalog
	out     io.Writer
	emit    *Emitter
	opts    harnessOptions

	caseBuf bytes.Buffer // records of the case in progress
	pending bytes.Buffer // records of completed cases not yet flushed
}

// NewHarness creates a harness writing records to w.
func NewHarness(engine Engine, catalog *FontCatalog, w io.Writer, opts ...Option) *Harness {
	o := defaultHarnessOptions()
	for _, opt := range opts {
		opt(&o)
	}
	h := &Harness{
		engine:  engine,
		catalog: catalog,
		out:     w,
		opts:    o,
	}
	h.emit = NewEmitter(&h.caseBuf)
	return h
}

func (h *Harness) logger() *slog.Logger {
	if h.opts.logger != nil {
		return h.opts.logger
	}
	return Logger()
}

// Run processes cases in order and writes the record stream. It stops at
// the first error, and then nothing is written: every unflushed record,
// including those of earlier cases, is discarded.
func (h *Harness) Run(cases []ParityCase) error {
	if h.engine == nil {
		return ErrNilEngine
	}
	if err := checkUnique(cases); err != nil {
		return err
	}
	h.logger().Info("run started", "cases", len(cases), "fonts", h.catalog.Len())
	for _, c := range cases {
		if err := h.RunCase(c); err != nil {
			h.pending.Reset()
			return err
		}
	}
	if err := h.Flush(); err != nil {
		return fmt.Errorf("textparity: flush records: %w", err)
	}
	h.logger().Info("run finished", "cases", len(cases))
	return nil
}

// RunCase emits the records of a single case. The records are kept back
// until the case completes; a failing case leaves no records behind.
// Callers running cases one by one must call Flush when done.
func (h *Harness) RunCase(c ParityCase) error {
	if h.engine == nil {
		return ErrNilEngine
	}
	h.caseBuf.Reset()
	h.emit.Reset(&h.caseBuf)
	defer h.caseBuf.Reset()

	c = h.opts.variant.apply(c)
	if err := c.Validate(); err != nil {
		return &CaseError{CaseID: c.ID, Stage: StageValidate, Err: err}
	}

	h.emit.Case(c, h.opts.variant.IsPerCase())

	shaped, err := h.shape(c)
	if err != nil {
		return &CaseError{CaseID: c.ID, Stage: StageShape, Err: err}
	}

	lines, err := h.engine.Layout(shaped, LayoutRequest{
		FontSize: c.FontSize,
		Width:    c.Width,
		Wrap:     c.Wrap,
		Hinting:  HintingDisabled,
	})
	if err != nil {
		return &CaseError{CaseID: c.ID, Stage: StageLayout, Err: err}
	}
	if err := h.emitLayout(c, lines); err != nil {
		return err
	}

	if err := h.emit.Flush(); err != nil {
		return &CaseError{CaseID: c.ID, Stage: StageEmit, Err: err}
	}
	h.pending.Write(h.caseBuf.Bytes())
	h.logger().Debug("case done",
		"case", c.ID,
		"rtl", shaped.RTL(),
		"glyphs", len(shaped.Glyphs()),
		"lines", len(lines))
	return nil
}

// Flush writes the records of every completed case to the output.
func (h *Harness) Flush() error {
	_, err := h.pending.WriteTo(h.out)
	return err
}

func (h *Harness) shape(c ParityCase) (ShapedLine, error) {
	shaped, err := h.engine.Shape(ShapeRequest{
		Text:           c.Text,
		Family:         c.Family,
		Weight:         WeightNormal,
		DirectionDepth: h.opts.directionDepth,
		Metadata:       h.opts.metadata,
	})
	if err != nil {
		return nil, err
	}

	glyphs := shaped.Glyphs()
	h.emit.Shape(c.ID, shaped.RTL(), len(glyphs))
	for i, g := range glyphs {
		h.emit.ShapeGlyph(c.ID, ShapeGlyphRecord{
			Index:    i,
			Start:    UTF16Offset(c.Text, g.Start),
			End:      UTF16Offset(c.Text, g.End),
			Font:     h.fontIndex(c.ID, g.Face),
			Glyph:    g.GlyphID,
			XAdvance: g.XAdvance,
			YAdvance: g.YAdvance,
			XOffset:  g.XOffset,
			YOffset:  g.YOffset,
			Metadata: g.Metadata,
		})
	}
	return shaped, nil
}

func (h *Harness) emitLayout(c ParityCase, lines []Line) error {
	for li, line := range lines {
		h.emit.Line(c.ID, li, line.W, len(line.Glyphs))
		for gi, g := range line.Glyphs {
			font := h.fontIndex(c.ID, g.Face)
			phys := Physical(g, layoutOffsetX, layoutOffsetY, layoutScale)
			img, err := h.engine.ProbeImage(phys.Key)
			if err != nil {
				return &CaseError{CaseID: c.ID, Stage: StageProbe, Err: err}
			}
			h.emit.LayoutGlyph(c.ID, LayoutGlyphRecord{
				Line:       li,
				Index:      gi,
				Start:      UTF16Offset(c.Text, g.Start),
				End:        UTF16Offset(c.Text, g.End),
				Font:       font,
				Glyph:      g.GlyphID,
				X:          g.X,
				Y:          g.Y,
				W:          g.W,
				Level:      g.Level,
				Metadata:   g.Metadata,
				CacheFont:  font,
				CacheGID:   phys.Key.GlyphID,
				SizeBits:   phys.Key.FontSizeBits,
				XBin:       phys.Key.XBin,
				YBin:       phys.Key.YBin,
				Weight:     phys.Key.FontWeight,
				CacheFlags: phys.Key.Flags,
				Image:      img,
			})
		}
	}
	return nil
}

func (h *Harness) fontIndex(caseID string, face FaceID) int {
	i := h.catalog.IndexOf(face)
	if i < 0 {
		h.logger().Warn("face not in catalog", "case", caseID)
	}
	return i
}

func checkUnique(cases []ParityCase) error {
	seen := make(map[string]struct{}, len(cases))
	for _, c := range cases {
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateCase, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}
