package record

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "CASE\tcase=a\tfamily=Inter\tfont_size=16.000000\twrap=None\twidth=none\n" +
	"SHAPE\tcase=a\trtl=0\tcount=1\n" +
	"SG\tcase=a\tindex=0\tstart=0\tend=1\tfont=0\tglyph=36\txa=0.600000\tya=0.000000\txo=0.000000\tyo=0.000000\tmeta=0\n" +
	"LL\tcase=a\tline=0\tw=9.600000\tcount=1\n" +
	"LG\tcase=a\tline=0\tindex=0\tstart=0\tend=1\tfont=0\tglyph=36\tx=0.000000\ty=0.000000\tw=9.600000\tlevel=0\tmeta=0" +
	"\tck_font=0\tck_gid=36\tck_size_bits=1098907648\tck_x_bin=0.000000\tck_y_bin=0.000000\tck_weight=400\tck_flags=2\timg=1\n" +
	"CASE\tcase=b\tfamily=Inter\tfont_size=18.000000\twrap=Word\twidth=80.000000\n" +
	"SHAPE\tcase=b\trtl=0\tcount=0\n"

func mustParse(t *testing.T, s string) *Dump {
	t.Helper()
	d, err := Parse(strings.NewReader(s))
	require.NoError(t, err)
	return d
}

func TestParse(t *testing.T) {
	d := mustParse(t, sample)

	require.Equal(t, []string{"a", "b"}, d.Order)
	assert.Equal(t, 2, d.Len())

	a, ok := d.Case("a")
	require.True(t, ok)
	for _, tag := range tagOrder {
		assert.Len(t, a.Records(tag), 1, tag)
	}
	assert.Equal(t, "36", a.Records("LG")[0]["ck_gid"])

	b, ok := d.Case("b")
	require.True(t, ok)
	assert.Empty(t, b.Records("LL"))
}

func TestParseSkipsNoise(t *testing.T) {
	in := "\n" +
		"BOGUS\tcase=a\tx=1\n" +
		"SHAPE\trtl=0\tcount=1\n" +
		"SHAPE\tcase=z\tgarbage\trtl=1\tcount=2\n" +
		"   \n"
	d := mustParse(t, in)

	require.Equal(t, []string{"z"}, d.Order)
	z, _ := d.Case("z")
	require.Len(t, z.Records("SHAPE"), 1)
	assert.Equal(t, Fields{"case": "z", "rtl": "1", "count": "2"}, z.Records("SHAPE")[0])
}

func TestCompareIdentical(t *testing.T) {
	assert.Empty(t, Compare(mustParse(t, sample), mustParse(t, sample), DefaultEpsilon))
}

func TestCompareVariantCase(t *testing.T) {
	const variant = "CASE\tcase=a\twrap=None\twidth=none\n" +
		"SHAPE\tcase=a\trtl=0\tcount=0\n"
	assert.Empty(t, Compare(mustParse(t, variant), mustParse(t, variant), DefaultEpsilon))

	perCase := mustParse(t, "CASE\tcase=a\tfont_size=16.000000\twrap=None\twidth=none\n"+
		"SHAPE\tcase=a\trtl=0\tcount=0\n")
	got := Compare(perCase, mustParse(t, variant), DefaultEpsilon)
	require.Len(t, got, 1)
	assert.Equal(t, KindMissing, got[0].Kind)
	assert.Equal(t, "font_size", got[0].Field)
}

func TestCompareFloatTolerance(t *testing.T) {
	ref := mustParse(t, sample)

	within := mustParse(t, strings.Replace(sample, "w=9.600000\tcount=1", "w=9.600050\tcount=1", 1))
	assert.Empty(t, Compare(ref, within, DefaultEpsilon))

	beyond := mustParse(t, strings.Replace(sample, "w=9.600000\tcount=1", "w=9.601000\tcount=1", 1))
	got := Compare(ref, beyond, DefaultEpsilon)
	require.Len(t, got, 1)
	assert.Equal(t, KindValue, got[0].Kind)
	assert.Equal(t, "LL", got[0].Tag)
	assert.Equal(t, "w", got[0].Field)
}

func TestCompareWidth(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"none vs value", "width=none", "width=12.000000", 1},
		{"value vs none", "width=80.000000", "width=none", 1},
		{"value within eps", "width=80.000000", "width=80.000010", 0},
		{"value beyond eps", "width=80.000000", "width=80.100000", 1},
		{"unparsable", "width=80.000000", "width=wide", 1},
	}
	ref := mustParse(t, sample)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand := mustParse(t, strings.Replace(sample, tt.from, tt.to, 1))
			if tt.from == "width=none" {
				// Compare in the other direction so the reference carries the value.
				assert.Len(t, Compare(cand, ref, DefaultEpsilon), tt.want)
				return
			}
			assert.Len(t, Compare(ref, cand, DefaultEpsilon), tt.want)
		})
	}
}

func TestCompareCountsAndCases(t *testing.T) {
	ref := mustParse(t, sample)
	cand := mustParse(t, strings.Replace(sample, "SHAPE\tcase=b\trtl=0\tcount=0\n", "", 1)+
		"CASE\tcase=c\tfamily=Inter\tfont_size=18.000000\twrap=Word\twidth=none\n")

	got := Compare(ref, cand, DefaultEpsilon)
	require.Len(t, got, 2)
	assert.Equal(t, KindOnlyCandidate, got[0].Kind)
	assert.Equal(t, "c", got[0].Cand)
	assert.Equal(t, KindCount, got[1].Kind)
	assert.Equal(t, "b.SHAPE: record-count ref=1 cand=0", got[1].String())
}

func TestCompareParseFailure(t *testing.T) {
	ref := mustParse(t, sample)
	cand := mustParse(t, strings.Replace(sample, "glyph=36\txa", "glyph=x\txa", 1))

	got := Compare(ref, cand, DefaultEpsilon)
	require.Len(t, got, 1)
	assert.Equal(t, KindParse, got[0].Kind)
	assert.Equal(t, "glyph", got[0].Field)
}

func TestCompareTruncates(t *testing.T) {
	var ref, cand strings.Builder
	for i := 0; i < MaxMismatches+10; i++ {
		ref.WriteString("LL\tcase=a\tline=0\tw=1.000000\tcount=1\n")
		cand.WriteString("LL\tcase=a\tline=0\tw=2.000000\tcount=1\n")
	}
	got := Compare(mustParse(t, ref.String()), mustParse(t, cand.String()), DefaultEpsilon)

	require.Len(t, got, MaxMismatches+2)
	assert.Equal(t, KindTruncated, got[len(got)-1].Kind)
}
