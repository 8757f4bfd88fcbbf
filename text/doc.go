// Package text implements textparity.Engine on top of go-text/typesetting.
//
// The pipeline for one paragraph is:
//
//   - FontStore: font files are parsed with go-text (shaping) and
//     golang.org/x/image/font/sfnt (names, outlines)
//   - Segmentation: bidi levels from golang.org/x/text/unicode/bidi, script
//     runs, and per-rune face resolution with fallback in load order
//   - Shaping: every run is shaped by HarfBuzz at a size of one em, so glyph
//     metrics come out in font units and convert to em without rounding
//   - Layout: runs are scaled to the requested size and wrapped by the go-text
//     line wrapper, then reordered visually per line
//   - Rasterization: glyph images are produced with golang.org/x/image/vector
//
// # Example usage
//
//	engine := text.NewEngine(text.WithTabWidth(8))
//	ids, err := engine.LoadFontData(ttf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	line, err := engine.Shape(textparity.ShapeRequest{Text: "Hello", Family: "Go"})
//
// Engine is not safe for concurrent use. The go-text shaper, line wrapper
// and font faces all carry mutable state.
package text
