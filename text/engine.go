package text

import (
	"log/slog"

	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/textparity"
)

// Engine shapes, lays out and rasterizes text with go-text/typesetting.
// Engine is not safe for concurrent use.
type Engine struct {
	cfg    engineConfig
	logger *slog.Logger
	lang   language.Language

	faces    []*loadedFace
	byFamily map[string][]*loadedFace

	shaper  shaping.HarfbuzzShaper
	wrapper shaping.LineWrapper
	raster  *rasterizer
}

var _ textparity.Engine = (*Engine)(nil)

// NewEngine creates an engine with no fonts loaded.
func NewEngine(opts ...EngineOption) *Engine {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = textparity.NopLogger()
	}
	return &Engine{
		cfg:      cfg,
		logger:   logger,
		lang:     language.NewLanguage(cfg.language),
		byFamily: make(map[string][]*loadedFace),
		raster:   newRasterizer(cfg.rasterCacheSize),
	}
}

// RasterStats returns statistics of the glyph mask cache.
func (e *Engine) RasterStats() RasterStats {
	return e.raster.stats()
}

// LogStats writes raster cache statistics at debug level.
func (e *Engine) LogStats() {
	s := e.raster.stats()
	e.logger.Debug("raster cache",
		"probes", s.Probes,
		"images", s.Images,
		"blank_glyphs", s.BlankGlyphs,
		"missing_glyphs", s.MissingGlyphs,
		"cached", s.Cache.Len,
		"hits", s.Cache.Hits,
		"misses", s.Cache.Misses)
}
