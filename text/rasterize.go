package text

import (
	"image"
	"image/draw"
	"math"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/textparity"
	"github.com/gogpu/textparity/internal/cache"
)

// GlyphMask is a rasterized glyph.
type GlyphMask struct {
	// Mask is the coverage of the glyph. Whitespace glyphs have an empty mask.
	Mask *image.Alpha

	// Origin is the position of the mask's top-left corner relative to the
	// glyph origin on the baseline, in whole pixels. Y grows downwards.
	Origin image.Point
}

// RasterStats holds rasterization statistics.
type RasterStats struct {
	// Probes is the number of ProbeImage calls.
	Probes uint64

	// Images is the number of probes that produced an image.
	Images uint64

	// BlankGlyphs is the number of glyphs known to have an empty outline.
	BlankGlyphs uint

	// MissingGlyphs is the number of glyphs whose outline failed to load.
	MissingGlyphs uint

	// Cache describes the mask cache.
	Cache cache.Stats
}

// maskKey is a CacheKey with the face handle resolved to a concrete type.
type maskKey struct {
	face     FaceHandle
	gid      uint32
	sizeBits uint32
	xBin     textparity.SubpixelBin
	yBin     textparity.SubpixelBin
	flags    textparity.CacheKeyFlags
}

// glyphSets records per-face outline facts that hold at every size and
// sub-pixel offset.
type glyphSets struct {
	blank   bitset.BitSet // outline loads but has no segments
	missing bitset.BitSet // outline cannot be loaded
}

// rasterizer renders glyph masks and keeps rendered masks in an LRU cache.
// Blank and missing glyphs never reach the cache: the per-face sets answer
// them without loading the outline again.
type rasterizer struct {
	masks  *cache.Cache[maskKey, *GlyphMask]
	sets   map[FaceHandle]*glyphSets
	blank  *GlyphMask
	probes uint64
	images uint64
}

func newRasterizer(cacheSize int) *rasterizer {
	return &rasterizer{
		masks: cache.New[maskKey, *GlyphMask](cacheSize),
		sets:  make(map[FaceHandle]*glyphSets),
		blank: &GlyphMask{Mask: image.NewAlpha(image.Rectangle{})},
	}
}

// ProbeImage implements textparity.Engine. It reports whether a glyph image
// is available for key, rendering it on a cache miss.
func (e *Engine) ProbeImage(key textparity.CacheKey) (bool, error) {
	e.raster.probes++
	f, ok := e.lookup(key.Face)
	if !ok {
		return false, nil
	}
	if e.raster.mask(f, key) == nil {
		return false, nil
	}
	e.raster.images++
	return true, nil
}

// GlyphImage returns the mask for key, rendering it on a cache miss.
// It returns nil if the face is unknown or the glyph has no outline.
func (e *Engine) GlyphImage(key textparity.CacheKey) *GlyphMask {
	f, ok := e.lookup(key.Face)
	if !ok {
		return nil
	}
	return e.raster.mask(f, key)
}

func (r *rasterizer) mask(f *loadedFace, key textparity.CacheKey) *GlyphMask {
	size := math.Float32frombits(key.FontSizeBits)
	if !(size > 0) || math.IsInf(float64(size), 0) {
		return nil
	}
	set := r.setFor(f.handle)
	gid := uint(key.GlyphID)
	switch {
	case set.missing.Test(gid):
		return nil
	case set.blank.Test(gid):
		return r.blank
	}
	return r.masks.GetOrCreate(newMaskKey(f, key), func() (*GlyphMask, bool) {
		m := r.render(f, key, size)
		return m, m != nil && m != r.blank
	})
}

func (r *rasterizer) setFor(h FaceHandle) *glyphSets {
	s := r.sets[h]
	if s == nil {
		s = &glyphSets{}
		r.sets[h] = s
	}
	return s
}

func newMaskKey(f *loadedFace, key textparity.CacheKey) maskKey {
	return maskKey{
		face:     f.handle,
		gid:      key.GlyphID,
		sizeBits: key.FontSizeBits,
		xBin:     key.XBin,
		yBin:     key.YBin,
		flags:    key.Flags,
	}
}

func (r *rasterizer) stats() RasterStats {
	s := RasterStats{
		Probes: r.probes,
		Images: r.images,
		Cache:  r.masks.Stats(),
	}
	for _, set := range r.sets {
		s.BlankGlyphs += set.blank.Count()
		s.MissingGlyphs += set.missing.Count()
	}
	return s
}

// render rasterizes one glyph at the given size and the key's sub-pixel
// offset. Glyphs without segments return the shared blank mask.
func (r *rasterizer) render(f *loadedFace, key textparity.CacheKey, size float32) *GlyphMask {
	ppem := fixed.Int26_6(size*64 + 0.5)
	gid := uint(key.GlyphID)

	segs, err := f.outl.LoadGlyph(&f.buf, sfnt.GlyphIndex(key.GlyphID), ppem, nil)
	if err != nil {
		r.setFor(f.handle).missing.Set(gid)
		return nil
	}
	if len(segs) == 0 {
		r.setFor(f.handle).blank.Set(gid)
		return r.blank
	}

	dx, dy := key.XBin.Float(), key.YBin.Float()
	bounds := outlineBounds(segs, dx, dy)
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return &GlyphMask{Mask: image.NewAlpha(image.Rectangle{}), Origin: bounds.Min}
	}

	tx := dx - float32(bounds.Min.X)
	ty := dy - float32(bounds.Min.Y)
	rast := vector.NewRasterizer(w, h)
	rast.DrawOp = draw.Over
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			rast.MoveTo(tx+float32(seg.Args[0].X)/64, ty+float32(seg.Args[0].Y)/64)
		case sfnt.SegmentOpLineTo:
			rast.LineTo(tx+float32(seg.Args[0].X)/64, ty+float32(seg.Args[0].Y)/64)
		case sfnt.SegmentOpQuadTo:
			rast.QuadTo(
				tx+float32(seg.Args[0].X)/64, ty+float32(seg.Args[0].Y)/64,
				tx+float32(seg.Args[1].X)/64, ty+float32(seg.Args[1].Y)/64,
			)
		case sfnt.SegmentOpCubeTo:
			rast.CubeTo(
				tx+float32(seg.Args[0].X)/64, ty+float32(seg.Args[0].Y)/64,
				tx+float32(seg.Args[1].X)/64, ty+float32(seg.Args[1].Y)/64,
				tx+float32(seg.Args[2].X)/64, ty+float32(seg.Args[2].Y)/64,
			)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return &GlyphMask{Mask: mask, Origin: bounds.Min}
}

// outlineBounds returns the whole-pixel box covering every control point,
// shifted by the sub-pixel offset.
func outlineBounds(segs sfnt.Segments, dx, dy float32) image.Rectangle {
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	for _, seg := range segs {
		n := 1
		switch seg.Op {
		case sfnt.SegmentOpQuadTo:
			n = 2
		case sfnt.SegmentOpCubeTo:
			n = 3
		}
		for i := 0; i < n; i++ {
			x := float32(seg.Args[i].X)/64 + dx
			y := float32(seg.Args[i].Y)/64 + dy
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	return image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
}
