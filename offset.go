package textparity

import (
	"unicode/utf16"
	"unicode/utf8"
)

// UTF16Offset converts a byte offset into text to a UTF-16 code-unit offset.
// It sums the UTF-16 length of every character that starts strictly before
// byteOffset. Offsets inside a multi-byte character count that character,
// offsets past the end yield the full UTF-16 length.
func UTF16Offset(text string, byteOffset int) int {
	n := 0
	for i, r := range text {
		if i >= byteOffset {
			break
		}
		if r == utf8.RuneError {
			// Invalid bytes decode to U+FFFD, one code unit.
			n++
			continue
		}
		n += utf16.RuneLen(r)
	}
	return n
}

// UTF16Len returns the length of text in UTF-16 code units.
func UTF16Len(text string) int {
	return UTF16Offset(text, len(text))
}
