package textparity

// FaceID is an opaque, engine-defined handle for a loaded font face.
// Dynamic values must be comparable. Face handles are never written to
// the record stream; they are projected through a FontCatalog.
type FaceID any

// FontStore registers raw font files.
type FontStore interface {
	// LoadFontData parses one font file and returns the handles of the
	// faces it contains, in file order.
	LoadFontData(data []byte) ([]FaceID, error)
}

// Engine is the shaping and layout collaborator driven by the harness.
type Engine interface {
	FontStore

	// Shape shapes one paragraph with full OpenType shaping.
	Shape(req ShapeRequest) (ShapedLine, error)

	// Layout positions a shaped paragraph into visual lines.
	Layout(line ShapedLine, req LayoutRequest) ([]Line, error)

	// ProbeImage reports whether a glyph image can be produced for key
	// without consulting any image cache.
	ProbeImage(key CacheKey) (bool, error)
}

// Fixed shaping parameters.
const (
	// WeightNormal is the font weight requested for every case.
	WeightNormal = 400

	// DefaultDirectionDepth bounds the number of characters inspected when
	// detecting the paragraph direction.
	DefaultDirectionDepth = 8
)

// ShapeRequest is the input to Engine.Shape.
type ShapeRequest struct {
	Text           string
	Family         string
	Weight         uint16
	DirectionDepth int
	Metadata       uint
}

// ShapedLine is the engine's shaping result for one paragraph.
type ShapedLine interface {
	// RTL reports whether the paragraph's base direction is right-to-left.
	RTL() bool

	// Glyphs returns every glyph in logical order.
	Glyphs() []ShapedGlyph
}

// ShapedGlyph is one glyph in logical order. Advances and offsets are in
// em units. Start and End are byte offsets into the source text.
type ShapedGlyph struct {
	Start    int
	End      int
	Face     FaceID
	GlyphID  uint32
	XAdvance float32
	YAdvance float32
	XOffset  float32
	YOffset  float32
	Metadata uint
}

// Hinting controls glyph outline hinting during layout.
type Hinting int

const (
	// HintingDisabled lays glyphs out with unhinted metrics.
	HintingDisabled Hinting = iota

	// HintingEnabled lays glyphs out with hinted metrics.
	HintingEnabled
)

// String returns the string representation of the hinting mode.
func (h Hinting) String() string {
	switch h {
	case HintingDisabled:
		return "Disabled"
	case HintingEnabled:
		return "Enabled"
	default:
		return unknownStr
	}
}

// LayoutRequest is the input to Engine.Layout.
type LayoutRequest struct {
	FontSize float32
	Width    Width
	Wrap     WrapPolicy
	Hinting  Hinting
}

// LayoutGlyph is one glyph positioned on a line, in visual order.
// X, Y and W are in pixels; XOffset and YOffset are in em units.
// Start and End are byte offsets and are not monotonic within a line.
type LayoutGlyph struct {
	Start      int
	End        int
	Face       FaceID
	GlyphID    uint32
	FontSize   float32
	FontWeight uint16
	X          float32
	Y          float32
	W          float32
	Level      uint8
	XOffset    float32
	YOffset    float32
	CacheFlags CacheKeyFlags
	Metadata   uint
}

// Line is one visual line of a layout.
type Line struct {
	Glyphs []LayoutGlyph
	W      float32
}
