// Command paritydump writes the text shaping and layout reference fixture
// to stdout.
//
// Fonts are read from ./fonts relative to the working directory. Log output
// goes to stderr; set TEXTPARITY_LOG to debug, info, warn or error to
// choose the level.
package main

import (
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/textparity"
	"github.com/gogpu/textparity/text"
)

func main() {
	logger := newLogger(os.Getenv("TEXTPARITY_LOG"))
	textparity.SetLogger(logger)

	engine := text.NewEngine(text.WithLogger(logger))
	catalog, err := textparity.NewFontCatalog(engine, textparity.DefaultFontPaths)
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	h := textparity.NewHarness(engine, catalog, os.Stdout)
	if err := h.Run(textparity.Cases()); err != nil {
		log.Fatalf("Failed to dump: %v", err)
	}
	engine.LogStats()
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
