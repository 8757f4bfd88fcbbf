package text

import "log/slog"

// EngineOption configures Engine creation.
type EngineOption func(*engineConfig)

// engineConfig holds configuration for Engine.
type engineConfig struct {
	tabWidth        int
	rasterCacheSize int
	language        string
	logger          *slog.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() engineConfig {
	return engineConfig{
		tabWidth:        8,
		rasterCacheSize: 1024,
		language:        "en",
	}
}

// WithTabWidth sets the advance of a tab in multiples of the space advance.
// Values below 1 are ignored.
func WithTabWidth(n int) EngineOption {
	return func(c *engineConfig) {
		if n > 0 {
			c.tabWidth = n
		}
	}
}

// WithRasterCacheSize sets the soft limit of the glyph mask cache.
// A value of 0 means unlimited.
func WithRasterCacheSize(n int) EngineOption {
	return func(c *engineConfig) {
		if n >= 0 {
			c.rasterCacheSize = n
		}
	}
}

// WithLanguage sets the BCP 47 language passed to the shaper.
func WithLanguage(tag string) EngineOption {
	return func(c *engineConfig) {
		c.language = tag
	}
}

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l *slog.Logger) EngineOption {
	return func(c *engineConfig) {
		c.logger = l
	}
}
