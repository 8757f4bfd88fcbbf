package text

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/textparity"
)

func TestParagraphRTL(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		depth int
		want  bool
	}{
		{"empty", "", 8, false},
		{"spaces", "       ", 8, false},
		{"latin", "hello", 8, false},
		{"hebrew", "שלום", 8, true},
		{"arabic", "خالصة", 8, true},
		{"latin then hebrew", "Many ... שרה", 8, false},
		{"hebrew then latin", "אב abc def", 8, true},
		{"digits then arabic", "12 خالصة", 8, true},
		{"strong beyond depth", "          خالصة", 8, false},
		{"unbounded depth", "          خالصة", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := paragraphRTL([]rune(tt.text), tt.depth); got != tt.want {
				t.Errorf("paragraphRTL(%q, %d) = %v, want %v", tt.text, tt.depth, got, tt.want)
			}
		})
	}
}

func TestBidiLevels(t *testing.T) {
	tests := []struct {
		name string
		text string
		rtl  bool
		want []uint8
	}{
		{"ltr", "ab", false, []uint8{0, 0}},
		{"rtl", "אב", true, []uint8{1, 1}},
		{"rtl in ltr", "a אב", false, []uint8{0, 0, 1, 1}},
		{"ltr in rtl", "אב a", true, []uint8{1, 1, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runes := []rune(tt.text)
			got := bidiLevels(tt.text, len(runes), tt.rtl)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				// Neutral space between runs may resolve either way.
				if runes[i] == ' ' {
					continue
				}
				if got[i] != tt.want[i] {
					t.Errorf("level[%d] = %d, want %d (all %v)", i, got[i], tt.want[i], got)
				}
			}
		})
	}
}

func TestScripts(t *testing.T) {
	got := scripts([]rune("ab אב!"))
	want := []language.Script{
		language.Latin, language.Latin, language.Latin,
		language.Hebrew, language.Hebrew, language.Hebrew,
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("script[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSegment(t *testing.T) {
	a, b := &loadedFace{}, &loadedFace{}
	runes := []rune("abcd")
	levels := []uint8{0, 0, 1, 1}
	scr := []language.Script{language.Latin, language.Latin, language.Latin, language.Latin}
	faces := []*loadedFace{a, a, a, b}

	runs := segment(runes, levels, scr, faces)
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	want := [][2]int{{0, 2}, {2, 3}, {3, 4}}
	for i, r := range runs {
		if r.start != want[i][0] || r.end != want[i][1] {
			t.Errorf("run %d = [%d,%d), want %v", i, r.start, r.end, want[i])
		}
	}
	if !isRTL(runs[1].direction()) {
		t.Error("odd level run should be RTL")
	}
	if segment(nil, nil, nil, nil) != nil {
		t.Error("segment(nil) should be nil")
	}
}

func TestVisualOrder(t *testing.T) {
	tests := []struct {
		name   string
		levels []uint8
		want   []int
	}{
		{"single", []uint8{0}, []int{0}},
		{"all ltr", []uint8{0, 0, 0}, []int{0, 1, 2}},
		{"rtl middle", []uint8{0, 1, 1, 0}, []int{0, 2, 1, 3}},
		{"all rtl", []uint8{1, 1, 1}, []int{2, 1, 0}},
		{"ltr inside rtl", []uint8{1, 2, 2, 1}, []int{3, 1, 2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces := make([]piece, len(tt.levels))
			for i, l := range tt.levels {
				pieces[i] = piece{run: i, level: l}
			}
			got := visualOrder(pieces)
			for i, pc := range got {
				if pc.run != tt.want[i] {
					t.Errorf("visualOrder(%v) = %v, want %v", tt.levels, runsOf(got), tt.want)
					break
				}
			}
			if pieces[0].run != 0 {
				t.Error("visualOrder modified its input")
			}
		})
	}
}

func runsOf(p []piece) []int {
	out := make([]int, len(p))
	for i := range p {
		out[i] = p[i].run
	}
	return out
}

func TestBreakPolicy(t *testing.T) {
	tests := []struct {
		wrap textparity.WrapPolicy
		want shaping.LineBreakPolicy
	}{
		{textparity.WrapGlyph, shaping.Always},
		{textparity.WrapWord, shaping.Never},
		{textparity.WrapWordOrGlyph, shaping.WhenNecessary},
	}
	for _, tt := range tests {
		if got := breakPolicy(tt.wrap); got != tt.want {
			t.Errorf("breakPolicy(%v) = %v, want %v", tt.wrap, got, tt.want)
		}
	}
}

func TestWraps(t *testing.T) {
	tests := []struct {
		req  textparity.LayoutRequest
		want bool
	}{
		{textparity.LayoutRequest{Wrap: textparity.WrapNone, Width: textparity.MaxWidth(10)}, false},
		{textparity.LayoutRequest{Wrap: textparity.WrapWord}, false},
		{textparity.LayoutRequest{Wrap: textparity.WrapWord, Width: textparity.MaxWidth(10)}, true},
	}
	for _, tt := range tests {
		if got := wraps(tt.req); got != tt.want {
			t.Errorf("wraps(%+v) = %v, want %v", tt.req, got, tt.want)
		}
	}
}

func TestMaxWidthUnits(t *testing.T) {
	tests := []struct {
		width float32
		want  int
	}{
		{4, 256},
		{80, 5120},
		{198.2132, 12685},
		{1e12, 1<<31 - 1},
	}
	for _, tt := range tests {
		if got := maxWidthUnits(tt.width); got != tt.want {
			t.Errorf("maxWidthUnits(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}
