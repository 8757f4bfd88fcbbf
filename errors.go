package textparity

import (
	"errors"
	"fmt"
)

// Sentinel errors for the textparity package.
var (
	// ErrNoFonts is returned when a catalog is created without font paths.
	ErrNoFonts = errors.New("textparity: no font paths")

	// ErrNoFaces is returned when a font file yields no faces.
	ErrNoFaces = errors.New("textparity: font file contains no faces")

	// ErrNilEngine is returned when a harness is run without an engine.
	ErrNilEngine = errors.New("textparity: nil engine")

	// ErrDuplicateCase is returned when two cases share an ID.
	ErrDuplicateCase = errors.New("textparity: duplicate case id")

	// ErrInvalidCase is returned for a case with a non-positive font size or width.
	ErrInvalidCase = errors.New("textparity: invalid case")
)

// FontLoadError is returned when a catalog font file cannot be read or
// registered with the font store. It is always fatal.
type FontLoadError struct {
	Path string
	Err  error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("textparity: failed to load font %q: %v", e.Path, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }

// Stage names the pipeline step a CaseError happened in.
type Stage string

// Pipeline stages.
const (
	StageValidate Stage = "validate"
	StageShape    Stage = "shape"
	StageLayout   Stage = "layout"
	StageProbe    Stage = "probe"
	StageEmit     Stage = "emit"
)

// CaseError wraps an error raised while processing a single case.
type CaseError struct {
	CaseID string
	Stage  Stage
	Err    error
}

func (e *CaseError) Error() string {
	return fmt.Sprintf("textparity: case %s: %s: %v", e.CaseID, e.Stage, e.Err)
}

func (e *CaseError) Unwrap() error { return e.Err }
