package textparity

import "testing"

func TestUTF16Offset(t *testing.T) {
	tests := []struct {
		name string
		text string
		off  int
		want int
	}{
		{"empty", "", 0, 0},
		{"ascii start", "abc", 0, 0},
		{"ascii middle", "abc", 2, 2},
		{"ascii end", "abc", 3, 3},
		{"past end", "abc", 10, 3},
		{"hebrew", "שרה", 4, 2},
		{"hebrew end", "שרה", 6, 3},
		{"inside multibyte", "שרה", 1, 1},
		{"astral", "a😀b", 5, 3},
		{"astral end", "a😀b", 6, 4},
		{"tabs", "A\tB\tC", 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UTF16Offset(tt.text, tt.off); got != tt.want {
				t.Errorf("UTF16Offset(%q, %d) = %d, want %d", tt.text, tt.off, got, tt.want)
			}
		})
	}
}

func TestUTF16OffsetMonotonic(t *testing.T) {
	for _, c := range Cases() {
		prev := 0
		for i := 0; i <= len(c.Text); i++ {
			got := UTF16Offset(c.Text, i)
			if got < prev {
				t.Fatalf("%s: UTF16Offset(%d) = %d < %d", c.ID, i, got, prev)
			}
			prev = got
		}
		if prev != UTF16Len(c.Text) {
			t.Errorf("%s: final offset %d != UTF16Len %d", c.ID, prev, UTF16Len(c.Text))
		}
	}
}
