package textparity

import (
	"strings"
	"testing"
)

func TestCasesValid(t *testing.T) {
	cases := Cases()
	if len(cases) != 47 {
		t.Fatalf("len(Cases()) = %d, want 47", len(cases))
	}
	seen := map[string]bool{}
	for _, c := range cases {
		if seen[c.ID] {
			t.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true
		if err := c.Validate(); err != nil {
			t.Errorf("%s: %v", c.ID, err)
		}
	}
	if err := checkUnique(cases); err != nil {
		t.Errorf("checkUnique: %v", err)
	}
}

func TestCasesOrderAndCopy(t *testing.T) {
	cases := Cases()
	if cases[0].ID != "ascii_sentence" || cases[len(cases)-1].ID != "stability_tabs_glyph_20" {
		t.Errorf("unexpected order: first %q, last %q", cases[0].ID, cases[len(cases)-1].ID)
	}
	cases[0].ID = "mutated"
	if Cases()[0].ID != "ascii_sentence" {
		t.Error("Cases() exposes the matrix")
	}
}

func TestCasesCoverage(t *testing.T) {
	var wraps [4]int
	var empty, whitespace, tabs, hebrew, arabic, subpixel, unconstrained bool
	for _, c := range Cases() {
		wraps[c.Wrap]++
		switch {
		case c.Text == "":
			empty = true
		case strings.TrimSpace(c.Text) == "":
			whitespace = true
		}
		tabs = tabs || strings.Contains(c.Text, "\t")
		hebrew = hebrew || strings.ContainsRune(c.Text, 'ש')
		arabic = arabic || strings.ContainsRune(c.Text, 'ل')
		if w, ok := c.Width.Get(); ok && w != float32(int(w)) {
			subpixel = true
		}
		unconstrained = unconstrained || !c.Width.IsSet()
	}
	for w, n := range wraps {
		if n == 0 {
			t.Errorf("no case uses wrap %v", WrapPolicy(w))
		}
	}
	for name, ok := range map[string]bool{
		"empty": empty, "whitespace": whitespace, "tabs": tabs, "hebrew": hebrew,
		"arabic": arabic, "sub-pixel width": subpixel, "unconstrained width": unconstrained,
	} {
		if !ok {
			t.Errorf("matrix has no %s case", name)
		}
	}
}

func TestCaseByID(t *testing.T) {
	c, ok := CaseByID("wrap_word")
	if !ok {
		t.Fatal("wrap_word not found")
	}
	if c.Text != "אב abc def" || c.Wrap != WrapWord {
		t.Errorf("wrap_word = %+v", c)
	}
	if w, _ := c.Width.Get(); w != 30 {
		t.Errorf("width = %v, want 30", w)
	}
	if _, ok := CaseByID("nope"); ok {
		t.Error("CaseByID(nope) found a case")
	}
}

func TestWrapPolicyString(t *testing.T) {
	for _, w := range []WrapPolicy{WrapNone, WrapGlyph, WrapWord, WrapWordOrGlyph} {
		got, err := ParseWrapPolicy(w.String())
		if err != nil || got != w {
			t.Errorf("ParseWrapPolicy(%q) = %v, %v", w.String(), got, err)
		}
	}
	if WrapPolicy(9).String() != unknownStr {
		t.Error("out of range policy should be Unknown")
	}
	if _, err := ParseWrapPolicy("Hyphen"); err == nil {
		t.Error("ParseWrapPolicy(Hyphen) succeeded")
	}
}

func TestValidate(t *testing.T) {
	base := ParityCase{ID: "x", FontSize: 12}
	tests := []struct {
		name string
		mod  func(*ParityCase)
		ok   bool
	}{
		{"valid", func(*ParityCase) {}, true},
		{"empty id", func(c *ParityCase) { c.ID = "" }, false},
		{"zero size", func(c *ParityCase) { c.FontSize = 0 }, false},
		{"negative width", func(c *ParityCase) { c.Width = MaxWidth(-1) }, false},
		{"zero width", func(c *ParityCase) { c.Width = MaxWidth(0) }, false},
		{"bad wrap", func(c *ParityCase) { c.Wrap = 7 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mod(&c)
			if err := c.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
