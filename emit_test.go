package textparity

import (
	"bytes"
	"errors"
	"testing"
)

func TestFormatting(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"float", FormatFloat(16), "16.000000"},
		{"float fraction", FormatFloat(198.2132), "198.213196"},
		{"float negative zero", FormatFloat(float32(negZero())), "-0.000000"},
		{"float negative", FormatFloat(-1.5), "-1.500000"},
		{"bool true", FormatBool(true), "1"},
		{"bool false", FormatBool(false), "0"},
		{"width none", FormatWidth(Unconstrained), "none"},
		{"width", FormatWidth(MaxWidth(4)), "4.000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func negZero() float64 {
	z := 0.0
	return -z
}

func TestEmitterRecords(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)

	c := ParityCase{ID: "c1", Text: "ab", Family: "Inter", FontSize: 16, Wrap: WrapWordOrGlyph, Width: MaxWidth(50)}
	e.Case(c, true)
	e.Case(c, false)
	e.Shape("c1", true, 2)
	e.ShapeGlyph("c1", ShapeGlyphRecord{Index: 1, Start: 1, End: 2, Font: -1, Glyph: 7, XAdvance: 0.5, YOffset: -0.25, Metadata: 3})
	e.Line("c1", 0, 12.5, 2)
	e.LayoutGlyph("c1", LayoutGlyphRecord{
		Line: 0, Index: 1, Start: 1, End: 2, Font: 0, Glyph: 7,
		X: 8, Y: 0, W: 4.5, Level: 1, Metadata: 3,
		CacheFont: 0, CacheGID: 7, SizeBits: 1098907648,
		XBin: SubpixelThree, YBin: SubpixelZero, Weight: 400, CacheFlags: FlagDisableHinting, Image: true,
	})
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := "CASE\tcase=c1\tfamily=Inter\tfont_size=16.000000\twrap=WordOrGlyph\twidth=50.000000\n" +
		"CASE\tcase=c1\twrap=WordOrGlyph\twidth=50.000000\n" +
		"SHAPE\tcase=c1\trtl=1\tcount=2\n" +
		"SG\tcase=c1\tindex=1\tstart=1\tend=2\tfont=-1\tglyph=7\txa=0.500000\tya=0.000000\txo=0.000000\tyo=-0.250000\tmeta=3\n" +
		"LL\tcase=c1\tline=0\tw=12.500000\tcount=2\n" +
		"LG\tcase=c1\tline=0\tindex=1\tstart=1\tend=2\tfont=0\tglyph=7\tx=8.000000\ty=0.000000\tw=4.500000\tlevel=1\tmeta=3" +
		"\tck_font=0\tck_gid=7\tck_size_bits=1098907648\tck_x_bin=0.750000\tck_y_bin=0.000000\tck_weight=400\tck_flags=2\timg=1\n"
	if got := buf.String(); got != want {
		t.Errorf("records mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestEmitterStickyError(t *testing.T) {
	e := NewEmitter(failingWriter{})
	e.Shape("c", false, 0)
	if err := e.Flush(); !errors.Is(err, errWrite) {
		t.Fatalf("Flush = %v, want %v", err, errWrite)
	}
	e.Shape("c", false, 0)
	if err := e.Err(); !errors.Is(err, errWrite) {
		t.Errorf("Err = %v, want sticky %v", err, errWrite)
	}
}
