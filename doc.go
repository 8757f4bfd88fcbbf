// Package textparity generates deterministic reference fixtures for a text
// shaping and line-layout pipeline.
//
// # Overview
//
// A fixed battery of cases (see [Cases]) is driven through glyph shaping and
// visual line layout. Every glyph-level and line-level attribute is written
// out as a tagged, tab-separated record stream. An independent shaping stack
// can then be checked for parity against the stream with the record package.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/textparity"
//	    "github.com/gogpu/textparity/text"
//	)
//
//	engine := text.NewEngine()
//	catalog, err := textparity.NewFontCatalog(engine, textparity.DefaultFontPaths)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h := textparity.NewHarness(engine, catalog, os.Stdout)
//	if err := h.Run(textparity.Cases()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Records
//
// Five record kinds are emitted, each on its own line:
//   - CASE: the case parameters
//   - SHAPE and SG: the shaped line and its glyphs in logical order
//   - LL and LG: each laid out line and its glyphs in visual order
//
// Fields are written as key=value pairs separated by tabs. Floats carry six
// fractional digits, booleans are 0 or 1, and an absent width is "none".
//
// # Engines
//
// The harness only talks to the [Engine] and [FontStore] interfaces. The
// text sub-package provides an implementation on top of go-text/typesetting.
package textparity

// Version is the fixture format version.
const Version = "0.1.0"
