package textparity

import (
	"bufio"
	"io"
	"strconv"
)

// Record tags.
const (
	TagCase  = "CASE"
	TagShape = "SHAPE"
	TagSG    = "SG"
	TagLL    = "LL"
	TagLG    = "LG"
)

// NoneWidth is the rendering of an absent width.
const NoneWidth = "none"

// FormatFloat renders v with exactly six fractional digits.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 6, 32)
}

// FormatBool renders v as 0 or 1.
func FormatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// FormatWidth renders w as a float or "none".
func FormatWidth(w Width) string {
	if v, ok := w.Get(); ok {
		return FormatFloat(v)
	}
	return NoneWidth
}

// ShapeGlyphRecord is the payload of an SG record. Offsets are UTF-16.
type ShapeGlyphRecord struct {
	Index    int
	Start    int
	End      int
	Font     int
	Glyph    uint32
	XAdvance float32
	YAdvance float32
	XOffset  float32
	YOffset  float32
	Metadata uint
}

// LayoutGlyphRecord is the payload of an LG record. Offsets are UTF-16.
type LayoutGlyphRecord struct {
	Line       int
	Index      int
	Start      int
	End        int
	Font       int
	Glyph      uint32
	X          float32
	Y          float32
	W          float32
	Level      uint8
	Metadata   uint
	CacheFont  int
	CacheGID   uint32
	SizeBits   uint32
	XBin       SubpixelBin
	YBin       SubpixelBin
	Weight     uint16
	CacheFlags CacheKeyFlags
	Image      bool
}

// Emitter writes tagged records. The first write error is sticky: later
// calls are no-ops and Flush returns it.
type Emitter struct {
	w   *bufio.Writer
	err error
}

// NewEmitter returns an Emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriter(w)}
}

// Case writes a CASE record. Family and font size are written only when
// perCase is true.
func (e *Emitter) Case(c ParityCase, perCase bool) {
	e.begin(TagCase)
	e.field("case", c.ID)
	if perCase {
		e.field("family", c.Family)
		e.field("font_size", FormatFloat(c.FontSize))
	}
	e.field("wrap", c.Wrap.String())
	e.field("width", FormatWidth(c.Width))
	e.end()
}

// Shape writes a SHAPE record.
func (e *Emitter) Shape(caseID string, rtl bool, count int) {
	e.begin(TagShape)
	e.field("case", caseID)
	e.field("rtl", FormatBool(rtl))
	e.field("count", strconv.Itoa(count))
	e.end()
}

// ShapeGlyph writes an SG record.
func (e *Emitter) ShapeGlyph(caseID string, g ShapeGlyphRecord) {
	e.begin(TagSG)
	e.field("case", caseID)
	e.field("index", strconv.Itoa(g.Index))
	e.field("start", strconv.Itoa(g.Start))
	e.field("end", strconv.Itoa(g.End))
	e.field("font", strconv.Itoa(g.Font))
	e.field("glyph", strconv.FormatUint(uint64(g.Glyph), 10))
	e.field("xa", FormatFloat(g.XAdvance))
	e.field("ya", FormatFloat(g.YAdvance))
	e.field("xo", FormatFloat(g.XOffset))
	e.field("yo", FormatFloat(g.YOffset))
	e.field("meta", strconv.FormatUint(uint64(g.Metadata), 10))
	e.end()
}

// Line writes an LL record.
func (e *Emitter) Line(caseID string, line int, w float32, count int) {
	e.begin(TagLL)
	e.field("case", caseID)
	e.field("line", strconv.Itoa(line))
	e.field("w", FormatFloat(w))
	e.field("count", strconv.Itoa(count))
	e.end()
}

// LayoutGlyph writes an LG record.
func (e *Emitter) LayoutGlyph(caseID string, g LayoutGlyphRecord) {
	e.begin(TagLG)
	e.field("case", caseID)
	e.field("line", strconv.Itoa(g.Line))
	e.field("index", strconv.Itoa(g.Index))
	e.field("start", strconv.Itoa(g.Start))
	e.field("end", strconv.Itoa(g.End))
	e.field("font", strconv.Itoa(g.Font))
	e.field("glyph", strconv.FormatUint(uint64(g.Glyph), 10))
	e.field("x", FormatFloat(g.X))
	e.field("y", FormatFloat(g.Y))
	e.field("w", FormatFloat(g.W))
	e.field("level", strconv.Itoa(int(g.Level)))
	e.field("meta", strconv.FormatUint(uint64(g.Metadata), 10))
	e.field("ck_font", strconv.Itoa(g.CacheFont))
	e.field("ck_gid", strconv.FormatUint(uint64(g.CacheGID), 10))
	e.field("ck_size_bits", strconv.FormatUint(uint64(g.SizeBits), 10))
	e.field("ck_x_bin", FormatFloat(g.XBin.Float()))
	e.field("ck_y_bin", FormatFloat(g.YBin.Float()))
	e.field("ck_weight", strconv.Itoa(int(g.Weight)))
	e.field("ck_flags", strconv.FormatUint(uint64(g.CacheFlags), 10))
	e.field("img", FormatBool(g.Image))
	e.end()
}

// Reset discards any buffered records and the sticky error, and directs
// further output to w.
func (e *Emitter) Reset(w io.Writer) {
	e.w.Reset(w)
	e.err = nil
}

// Err returns the first write error, if any.
func (e *Emitter) Err() error { return e.err }

// Flush writes any buffered records to the underlying writer.
func (e *Emitter) Flush() error {
	if e.err != nil {
		return e.err
	}
	e.err = e.w.Flush()
	return e.err
}

func (e *Emitter) begin(tag string) {
	e.write(tag)
}

func (e *Emitter) field(key, value string) {
	if e.err != nil {
		return
	}
	if e.err = e.w.WriteByte('\t'); e.err != nil {
		return
	}
	e.write(key)
	if e.err == nil {
		e.err = e.w.WriteByte('=')
	}
	e.write(value)
}

func (e *Emitter) end() {
	if e.err == nil {
		e.err = e.w.WriteByte('\n')
	}
}

func (e *Emitter) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.WriteString(s)
}
