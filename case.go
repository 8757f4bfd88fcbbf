package textparity

import (
	"fmt"
	"math"
)

// WrapPolicy selects where a line may break.
type WrapPolicy int

const (
	// WrapNone never breaks; the text stays on one line regardless of width.
	WrapNone WrapPolicy = iota

	// WrapGlyph breaks at any glyph boundary once the width is exceeded.
	WrapGlyph

	// WrapWord breaks only at word boundaries. Overlong words overflow.
	WrapWord

	// WrapWordOrGlyph prefers word boundaries and falls back to glyph
	// boundaries for words wider than the line.
	WrapWordOrGlyph
)

// String returns the record spelling of the wrap policy.
func (w WrapPolicy) String() string {
	switch w {
	case WrapNone:
		return "None"
	case WrapGlyph:
		return "Glyph"
	case WrapWord:
		return "Word"
	case WrapWordOrGlyph:
		return "WordOrGlyph"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// ParseWrapPolicy is the inverse of WrapPolicy.String.
func ParseWrapPolicy(s string) (WrapPolicy, error) {
	switch s {
	case "None":
		return WrapNone, nil
	case "Glyph":
		return WrapGlyph, nil
	case "Word":
		return WrapWord, nil
	case "WordOrGlyph":
		return WrapWordOrGlyph, nil
	}
	return WrapNone, fmt.Errorf("textparity: unknown wrap policy %q", s)
}

// Width is an optional maximum line width in pixels.
// The zero value is unconstrained.
type Width struct {
	value float32
	set   bool
}

// Unconstrained is the absent width.
var Unconstrained = Width{}

// MaxWidth returns a width constraint of w pixels.
func MaxWidth(w float32) Width {
	return Width{value: w, set: true}
}

// Get returns the width and whether it is set.
func (w Width) Get() (float32, bool) {
	return w.value, w.set
}

// IsSet reports whether a constraint is present.
func (w Width) IsSet() bool { return w.set }

// ParityCase is one entry of the case matrix.
type ParityCase struct {
	ID       string
	Text     string
	Family   string
	FontSize float32
	Wrap     WrapPolicy
	Width    Width
}

// Validate checks the field constraints of a case.
func (c ParityCase) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidCase)
	}
	if !(c.FontSize > 0) || math.IsInf(float64(c.FontSize), 0) {
		return fmt.Errorf("%w: %s: font size %v", ErrInvalidCase, c.ID, c.FontSize)
	}
	if w, ok := c.Width.Get(); ok && (!(w > 0) || math.IsInf(float64(w), 0)) {
		return fmt.Errorf("%w: %s: width %v", ErrInvalidCase, c.ID, w)
	}
	if c.Wrap < WrapNone || c.Wrap > WrapWordOrGlyph {
		return fmt.Errorf("%w: %s: wrap %d", ErrInvalidCase, c.ID, int(c.Wrap))
	}
	return nil
}
