package textparity

import (
	"math"
	"strconv"
)

// SubpixelBin is a quarter-pixel position bin used in glyph cache keys.
type SubpixelBin uint8

// Sub-pixel bins in quarter-pixel steps.
const (
	SubpixelZero SubpixelBin = iota
	SubpixelOne
	SubpixelTwo
	SubpixelThree
)

// Float returns the fractional offset the bin represents.
//   - SubpixelZero: 0.0
//   - SubpixelOne: 0.25
//   - SubpixelTwo: 0.5
//   - SubpixelThree: 0.75
func (b SubpixelBin) Float() float32 {
	switch b {
	case SubpixelOne:
		return 0.25
	case SubpixelTwo:
		return 0.5
	case SubpixelThree:
		return 0.75
	default:
		return 0
	}
}

// String returns the string representation of the bin.
func (b SubpixelBin) String() string {
	return strconv.FormatFloat(float64(b.Float()), 'f', 2, 32)
}

// Quantize splits pos into an integer pixel and the nearest quarter-pixel
// bin. Positions within 1/8 px of the next integer carry into it.
//
// For example:
//   - pos=10.1 returns (10, SubpixelZero)
//   - pos=10.3 returns (10, SubpixelOne)
//   - pos=10.9 returns (11, SubpixelZero)
//   - pos=-0.3 returns (-1, SubpixelThree)
func Quantize(pos float32) (int32, SubpixelBin) {
	trunc := int32(pos)
	fract := pos - float32(trunc)

	if math.Signbit(float64(pos)) {
		switch {
		case fract > -0.125:
			return trunc, SubpixelZero
		case fract > -0.375:
			return trunc - 1, SubpixelThree
		case fract > -0.625:
			return trunc - 1, SubpixelTwo
		case fract > -0.875:
			return trunc - 1, SubpixelOne
		default:
			return trunc - 1, SubpixelZero
		}
	}

	switch {
	case fract < 0.125:
		return trunc, SubpixelZero
	case fract < 0.375:
		return trunc, SubpixelOne
	case fract < 0.625:
		return trunc, SubpixelTwo
	case fract < 0.875:
		return trunc, SubpixelThree
	default:
		return trunc + 1, SubpixelZero
	}
}

// CacheKeyFlags are rasterization flags carried in a cache key.
type CacheKeyFlags uint32

// Cache key flag bits.
const (
	FlagFakeItalic     CacheKeyFlags = 1 << 0
	FlagDisableHinting CacheKeyFlags = 1 << 1
	FlagPixelFont      CacheKeyFlags = 1 << 2
)

// FlagsFor returns the cache flags implied by a hinting mode.
func FlagsFor(h Hinting) CacheKeyFlags {
	if h == HintingDisabled {
		return FlagDisableHinting
	}
	return 0
}

// CacheKey identifies one rasterized glyph image.
type CacheKey struct {
	Face         FaceID
	GlyphID      uint32
	FontSizeBits uint32
	XBin         SubpixelBin
	YBin         SubpixelBin
	FontWeight   uint16
	Flags        CacheKeyFlags
}

// PhysicalGlyph is a glyph resolved to device pixels.
type PhysicalGlyph struct {
	Key CacheKey
	X   int32
	Y   int32
}

// Physical resolves g to device space at the given pen offset and scale.
// The horizontal position keeps its sub-pixel bin; the vertical position is
// truncated to whole pixels before binning.
func Physical(g LayoutGlyph, offsetX, offsetY, scale float32) PhysicalGlyph {
	xOff := g.FontSize * g.XOffset
	yOff := g.FontSize * g.YOffset

	px := (g.X+xOff)*scale + offsetX
	py := float32(math.Trunc(float64((g.Y-yOff)*scale + offsetY)))

	x, xBin := Quantize(px)
	y, yBin := Quantize(py)

	return PhysicalGlyph{
		Key: CacheKey{
			Face:         g.Face,
			GlyphID:      g.GlyphID,
			FontSizeBits: math.Float32bits(g.FontSize * scale),
			XBin:         xBin,
			YBin:         yBin,
			FontWeight:   g.FontWeight,
			Flags:        g.CacheFlags,
		},
		X: x,
		Y: y,
	}
}
