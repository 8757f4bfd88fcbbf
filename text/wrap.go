package text

import (
	"math"

	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/textparity"
)

// breakPolicy maps a wrap policy to the go-text line breaking policy.
//   - WrapGlyph: break inside words whenever a glyph would overflow
//   - WrapWord: never break inside a word
//   - WrapWordOrGlyph: break inside a word only when it cannot fit a line alone
func breakPolicy(w textparity.WrapPolicy) shaping.LineBreakPolicy {
	switch w {
	case textparity.WrapGlyph:
		return shaping.Always
	case textparity.WrapWord:
		return shaping.Never
	default:
		return shaping.WhenNecessary
	}
}

// wraps reports whether a request needs the line wrapper at all.
func wraps(req textparity.LayoutRequest) bool {
	if req.Wrap == textparity.WrapNone {
		return false
	}
	return req.Width.IsSet()
}

// maxWidthUnits converts a pixel width to the wrapper's integer units.
// Layout runs are scaled so that one wrapper unit is 1/64 px.
func maxWidthUnits(width float32) int {
	u := math.Floor(float64(width) * layoutUnitsPerPixel)
	if u > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(u)
}
