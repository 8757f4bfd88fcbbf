package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFaces is returned when shaping is attempted before any font is loaded.
	ErrNoFaces = errors.New("text: no faces loaded")

	// ErrForeignLine is returned when Layout receives a line shaped by
	// another engine.
	ErrForeignLine = errors.New("text: shaped line was not produced by this engine")
)

// RunMappingError is returned when a wrapped line cannot be mapped back to
// the shaped runs it was cut from.
type RunMappingError struct {
	RuneOffset int
	RuneCount  int
}

func (e *RunMappingError) Error() string {
	return fmt.Sprintf("text: no shaped run covers runes [%d,%d)", e.RuneOffset, e.RuneOffset+e.RuneCount)
}
