// Package record parses textparity record streams and compares two of them
// field by field.
package record

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/textparity"
)

// Fields are the key=value pairs of one record, without the tag.
type Fields map[string]string

// Case holds the records of one case, grouped by tag in stream order.
type Case struct {
	ID   string
	Tags map[string][]Fields
}

// Records returns the records of tag.
func (c *Case) Records(tag string) []Fields {
	return c.Tags[tag]
}

// Dump is a parsed record stream.
type Dump struct {
	// Order lists case IDs in order of first appearance.
	Order []string
	Cases map[string]*Case
}

// Len returns the number of cases.
func (d *Dump) Len() int { return len(d.Order) }

// Case returns the case with the given ID.
func (d *Dump) Case(id string) (*Case, bool) {
	c, ok := d.Cases[id]
	return c, ok
}

// Parse reads a record stream. Lines with unknown tags, fields without '='
// and records without a case field are skipped. Only read errors are
// returned.
func Parse(r io.Reader) (*Dump, error) {
	d := &Dump{Cases: make(map[string]*Case)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		tag := parts[0]
		if _, known := specs[tag]; !known {
			continue
		}
		fields := make(Fields, len(parts)-1)
		for _, part := range parts[1:] {
			key, value, ok := strings.Cut(part, "=")
			if !ok {
				continue
			}
			fields[key] = value
		}
		id, ok := fields["case"]
		if !ok {
			continue
		}
		c := d.Cases[id]
		if c == nil {
			c = &Case{ID: id, Tags: make(map[string][]Fields)}
			d.Cases[id] = c
			d.Order = append(d.Order, id)
		}
		c.Tags[tag] = append(c.Tags[tag], fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("record: read stream: %w", err)
	}
	return d, nil
}

// fieldSpec lists the compared fields of one tag by kind.
type fieldSpec struct {
	str  []string
	ints []string
	flts []string
}

// tagOrder is the order tags are compared in.
var tagOrder = []string{
	textparity.TagCase,
	textparity.TagShape,
	textparity.TagSG,
	textparity.TagLL,
	textparity.TagLG,
}

var specs = map[string]fieldSpec{
	textparity.TagCase: {
		str:  []string{"family", "wrap"},
		flts: []string{"font_size"},
	},
	textparity.TagShape: {
		str:  []string{"rtl"},
		ints: []string{"count"},
	},
	textparity.TagSG: {
		ints: []string{"index", "start", "end", "font", "glyph", "meta"},
		flts: []string{"xa", "ya", "xo", "yo"},
	},
	textparity.TagLL: {
		ints: []string{"line", "count"},
		flts: []string{"w"},
	},
	textparity.TagLG: {
		str: []string{"img"},
		ints: []string{
			"line", "index", "start", "end", "font", "glyph", "level", "meta",
			"ck_font", "ck_gid", "ck_size_bits", "ck_weight", "ck_flags",
		},
		flts: []string{"x", "y", "w", "ck_x_bin", "ck_y_bin"},
	},
}
