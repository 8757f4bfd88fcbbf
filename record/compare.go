package record

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gogpu/textparity"
)

// DefaultEpsilon is the float tolerance used by cmd/paritydiff.
const DefaultEpsilon = 1e-4

// MaxMismatches bounds the mismatch list; Compare stops after it is exceeded
// and appends a KindTruncated entry.
const MaxMismatches = 500

// Kind classifies a Mismatch.
type Kind int

const (
	// KindValue is a field whose values differ.
	KindValue Kind = iota
	// KindParse is a numeric field that failed to parse on either side.
	KindParse
	// KindMissing is a float field absent on either side.
	KindMissing
	// KindCount is a tag with a different number of records.
	KindCount
	// KindOnlyRef lists cases present only in the reference.
	KindOnlyRef
	// KindOnlyCandidate lists cases present only in the candidate.
	KindOnlyCandidate
	// KindTruncated marks the end of a truncated mismatch list.
	KindTruncated
)

// Mismatch is one difference between a reference and a candidate dump.
type Mismatch struct {
	Kind  Kind
	Case  string
	Tag   string
	Index int
	Field string
	Ref   string
	Cand  string
}

// String formats the mismatch for reports.
func (m Mismatch) String() string {
	switch m.Kind {
	case KindOnlyRef:
		return "cases only in reference: " + m.Ref
	case KindOnlyCandidate:
		return "cases only in candidate: " + m.Cand
	case KindTruncated:
		return "too many mismatches, truncated"
	case KindCount:
		return fmt.Sprintf("%s.%s: record-count ref=%s cand=%s", m.Case, m.Tag, m.Ref, m.Cand)
	case KindParse:
		return fmt.Sprintf("%s.%s[%d].%s: parse failed ref=%q cand=%q", m.Case, m.Tag, m.Index, m.Field, m.Ref, m.Cand)
	case KindMissing:
		return fmt.Sprintf("%s.%s[%d].%s: missing value ref=%q cand=%q", m.Case, m.Tag, m.Index, m.Field, m.Ref, m.Cand)
	default:
		return fmt.Sprintf("%s.%s[%d].%s: ref=%s cand=%s", m.Case, m.Tag, m.Index, m.Field, m.Ref, m.Cand)
	}
}

// Compare checks cand against ref. Cases are matched by ID and compared
// in sorted order; within a case, records are matched by position per tag.
// Strings must be equal, integers numerically equal, and floats within eps.
// A CASE width of "none" only matches "none".
func Compare(ref, cand *Dump, eps float64) []Mismatch {
	c := comparer{eps: eps}

	onlyRef := missingFrom(ref, cand)
	onlyCand := missingFrom(cand, ref)
	if len(onlyRef) > 0 {
		c.out = append(c.out, Mismatch{Kind: KindOnlyRef, Ref: strings.Join(onlyRef, ", ")})
	}
	if len(onlyCand) > 0 {
		c.out = append(c.out, Mismatch{Kind: KindOnlyCandidate, Cand: strings.Join(onlyCand, ", ")})
	}

	shared := make([]string, 0, len(ref.Cases))
	for id := range ref.Cases {
		if _, ok := cand.Cases[id]; ok {
			shared = append(shared, id)
		}
	}
	sort.Strings(shared)

	for _, id := range shared {
		rc, cc := ref.Cases[id], cand.Cases[id]
		for _, tag := range tagOrder {
			rl, cl := rc.Tags[tag], cc.Tags[tag]
			if len(rl) != len(cl) {
				c.out = append(c.out, Mismatch{
					Kind: KindCount, Case: id, Tag: tag,
					Ref: strconv.Itoa(len(rl)), Cand: strconv.Itoa(len(cl)),
				})
				continue
			}
			for i := range rl {
				c.record(id, tag, i, rl[i], cl[i])
				if len(c.out) > MaxMismatches {
					return append(c.out, Mismatch{Kind: KindTruncated})
				}
			}
		}
	}
	return c.out
}

func missingFrom(a, b *Dump) []string {
	var ids []string
	for id := range a.Cases {
		if _, ok := b.Cases[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

type comparer struct {
	eps float64
	out []Mismatch
}

func (c *comparer) add(kind Kind, id, tag string, index int, field, ref, cand string) {
	c.out = append(c.out, Mismatch{Kind: kind, Case: id, Tag: tag, Index: index, Field: field, Ref: ref, Cand: cand})
}

func (c *comparer) record(id, tag string, index int, ref, cand Fields) {
	spec := specs[tag]

	for _, key := range spec.str {
		rv, rok := ref[key]
		cv, cok := cand[key]
		if rok != cok || rv != cv {
			c.add(KindValue, id, tag, index, key, rv, cv)
		}
	}

	for _, key := range spec.ints {
		rv, rok := ref[key]
		cv, cok := cand[key]
		if !rok && !cok {
			continue
		}
		ri, rerr := parseInt(rv, rok)
		ci, cerr := parseInt(cv, cok)
		if rerr != nil || cerr != nil {
			c.add(KindParse, id, tag, index, key, rv, cv)
			continue
		}
		if rok != cok || ri != ci {
			c.add(KindValue, id, tag, index, key, rv, cv)
		}
	}

	for _, key := range spec.flts {
		c.float(id, tag, index, key, ref, cand)
	}

	if tag == textparity.TagCase {
		c.width(id, index, ref, cand)
	}
}

func (c *comparer) float(id, tag string, index int, key string, ref, cand Fields) {
	rv, rok := ref[key]
	cv, cok := cand[key]
	if !rok && !cok {
		return
	}
	rf, rerr := parseFloat(rv, rok)
	cf, cerr := parseFloat(cv, cok)
	if rerr != nil || cerr != nil {
		c.add(KindParse, id, tag, index, key, rv, cv)
		return
	}
	if !rok || !cok {
		c.add(KindMissing, id, tag, index, key, rv, cv)
		return
	}
	if math.Abs(rf-cf) > c.eps {
		c.add(KindValue, id, tag, index, key, rv, cv)
	}
}

func (c *comparer) width(id string, index int, ref, cand Fields) {
	const key = "width"
	rv, rok := ref[key]
	cv, cok := cand[key]
	if !rok || !cok {
		c.add(KindMissing, id, textparity.TagCase, index, key, rv, cv)
		return
	}
	if rv == textparity.NoneWidth && cv == textparity.NoneWidth {
		return
	}
	if rv == textparity.NoneWidth || cv == textparity.NoneWidth {
		c.add(KindValue, id, textparity.TagCase, index, key, rv, cv)
		return
	}
	c.float(id, textparity.TagCase, index, key, ref, cand)
}

func parseInt(s string, present bool) (int64, error) {
	if !present {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

func parseFloat(s string, present bool) (float64, error) {
	if !present {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
