package textparity

import "log/slog"

// Option configures a Harness during creation.
//
// Example:
//
//	h := textparity.NewHarness(engine, catalog, os.Stdout,
//	    textparity.WithVariant(textparity.Variant{Family: "Inter", FontSize: 14}))
type Option func(*harnessOptions)

// harnessOptions holds optional configuration for Harness creation.
type harnessOptions struct {
	variant        Variant
	directionDepth int
	metadata       uint
	logger         *slog.Logger
}

// defaultHarnessOptions returns the default harness options.
func defaultHarnessOptions() harnessOptions {
	return harnessOptions{
		directionDepth: DefaultDirectionDepth,
	}
}

// Variant overrides family and font size for every case. The zero value
// keeps the per-case values. A variant run omits family and font_size from
// CASE records since they no longer vary per case.
type Variant struct {
	Family   string
	FontSize float32
}

// IsPerCase reports whether the variant leaves cases untouched.
func (v Variant) IsPerCase() bool {
	return v.Family == "" && v.FontSize == 0
}

// apply returns c with the variant's overrides applied.
func (v Variant) apply(c ParityCase) ParityCase {
	if v.Family != "" {
		c.Family = v.Family
	}
	if v.FontSize > 0 {
		c.FontSize = v.FontSize
	}
	return c
}

// WithVariant fixes family and/or font size for all cases.
func WithVariant(v Variant) Option {
	return func(o *harnessOptions) {
		o.variant = v
	}
}

// WithDirectionDepth sets the number of characters inspected when detecting
// paragraph direction. Values below 1 are ignored.
func WithDirectionDepth(depth int) Option {
	return func(o *harnessOptions) {
		if depth > 0 {
			o.directionDepth = depth
		}
	}
}

// WithMetadata sets the opaque metadata value attached to every shaped glyph.
func WithMetadata(meta uint) Option {
	return func(o *harnessOptions) {
		o.metadata = meta
	}
}

// WithLogger sets a logger for this harness instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *harnessOptions) {
		o.logger = l
	}
}
