package textparity

// Family names used by the matrix.
const (
	familyInter = "Inter"
	familyNoto  = "Noto Sans"
)

// Texts shared by several cases.
const (
	textLorem     = "Lorem ipsum dolor sit amet, qui minim labore adipisicing minim sint cillum sint consectetur cupidatat."
	textMixArabic = "I like to render اللغة العربية in Rust!"
	textShalom    = "שָׁלוֹם עָלֵיכֶם"
	textSalaam    = "السَّلَامُ عَلَيْكُمْ"
)

// matrix is the fixed case battery. Declaration order is the output order.
var matrix = []ParityCase{
	{ID: "ascii_sentence", Text: "Move the mouse to see the circle follow your cursor.", Family: familyInter, FontSize: 16, Wrap: WrapNone, Width: Unconstrained},
	{ID: "ascii_tabs", Text: "A\tB\tC", Family: familyInter, FontSize: 16, Wrap: WrapNone, Width: Unconstrained},
	{ID: "mix_hebrew", Text: "Many computer programs fail to display bidirectional text correctly: שרה", Family: familyInter, FontSize: 16, Wrap: WrapNone, Width: Unconstrained},
	{ID: "mix_arabic", Text: textMixArabic, Family: familyInter, FontSize: 16, Wrap: WrapNone, Width: Unconstrained},
	{ID: "wrap_word_or_glyph", Text: textLorem, Family: familyInter, FontSize: 16, Wrap: WrapWordOrGlyph, Width: MaxWidth(50)},
	{ID: "wrap_word", Text: "אב abc def", Family: familyInter, FontSize: 16, Wrap: WrapWord, Width: MaxWidth(30)},
	{ID: "hebrew_word_noto", Text: "בדיקה", Family: familyNoto, FontSize: 36, Wrap: WrapNone, Width: Unconstrained},
	{ID: "hebrew_paragraph_noto", Text: "השועל החום המהיר קופץ מעל הכלב העצלן", Family: familyNoto, FontSize: 36, Wrap: WrapWordOrGlyph, Width: MaxWidth(210)},
	{ID: "english_hebrew_paragraph_noto", Text: "Many computer programs fail to display bidirectional text correctly. For example, this page is mostly LTR English script, and here is the RTL Hebrew name Sarah: שרה, spelled sin (ש) on the right, resh (ר) in the middle, and heh (ה) on the left.", Family: familyNoto, FontSize: 16, Wrap: WrapWordOrGlyph, Width: MaxWidth(200)},
	{ID: "arabic_word_noto", Text: "خالصة", Family: familyNoto, FontSize: 36, Wrap: WrapNone, Width: Unconstrained},
	{ID: "arabic_paragraph_noto", Text: "الثعلب البني السريع يقفز فوق الكلب الكسول", Family: familyNoto, FontSize: 36, Wrap: WrapWordOrGlyph, Width: MaxWidth(210)},
	{ID: "english_arabic_paragraph_noto", Text: textMixArabic, Family: familyNoto, FontSize: 36, Wrap: WrapWordOrGlyph, Width: MaxWidth(190)},
	{ID: "stability_empty_wordorglyph_none", Text: "", Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: Unconstrained},
	{ID: "stability_space_wordorglyph_none", Text: " ", Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: Unconstrained},
	{ID: "stability_space_wordorglyph_4", Text: " ", Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: MaxWidth(4)},
	{ID: "stability_spaces7_wordorglyph_4", Text: "       ", Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: MaxWidth(4)},
	{ID: "stability_hello_word_word_80", Text: "hello world", Family: familyInter, FontSize: 18, Wrap: WrapWord, Width: MaxWidth(80)},
	{ID: "stability_long_latin_wordorglyph_80", Text: textLorem, Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: MaxWidth(80)},
	{ID: "stability_long_latin_glyph_20", Text: textLorem, Family: familyInter, FontSize: 18, Wrap: WrapGlyph, Width: MaxWidth(20)},
	{ID: "stability_hebrew_wordorglyph_none", Text: textShalom, Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: Unconstrained},
	{ID: "stability_hebrew_wordorglyph_80", Text: textShalom, Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: MaxWidth(80)},
	{ID: "stability_arabic_wordorglyph_none", Text: textSalaam, Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: Unconstrained},
	{ID: "stability_arabic_wordorglyph_80", Text: textSalaam, Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: MaxWidth(80)},
	{ID: "stability_mix_arabic_wordorglyph_80", Text: textMixArabic, Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: MaxWidth(80)},
	{ID: "stability_mix_arabic_word_80", Text: textMixArabic, Family: familyInter, FontSize: 18, Wrap: WrapWord, Width: MaxWidth(80)},
	{ID: "stability_mix_arabic_word_198", Text: textMixArabic, Family: familyInter, FontSize: 18, Wrap: WrapWord, Width: MaxWidth(198.2132)},
	{ID: "stability_hebrew_wordorglyph_40", Text: textShalom, Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: MaxWidth(40)},
	{ID: "stability_hebrew_wordorglyph_20", Text: textShalom, Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: MaxWidth(20)},
	{ID: "stability_hebrew_word_80", Text: textShalom, Family: familyInter, FontSize: 18, Wrap: WrapWord, Width: MaxWidth(80)},
	{ID: "stability_hebrew_glyph_20", Text: textShalom, Family: familyInter, FontSize: 18, Wrap: WrapGlyph, Width: MaxWidth(20)},
	{ID: "stability_arabic_wordorglyph_40", Text: textSalaam, Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: MaxWidth(40)},
	{ID: "stability_arabic_wordorglyph_20", Text: textSalaam, Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: MaxWidth(20)},
	{ID: "stability_arabic_word_80", Text: textSalaam, Family: familyInter, FontSize: 18, Wrap: WrapWord, Width: MaxWidth(80)},
	{ID: "stability_arabic_glyph_20", Text: textSalaam, Family: familyInter, FontSize: 18, Wrap: WrapGlyph, Width: MaxWidth(20)},
	{ID: "stability_mix_arabic_wordorglyph_198", Text: textMixArabic, Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: MaxWidth(198.2132)},
	{ID: "stability_mix_arabic_wordorglyph_20", Text: textMixArabic, Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: MaxWidth(20)},
	{ID: "stability_mix_arabic_glyph_20", Text: textMixArabic, Family: familyInter, FontSize: 18, Wrap: WrapGlyph, Width: MaxWidth(20)},
	{ID: "stability_mix_arabic_none", Text: textMixArabic, Family: familyInter, FontSize: 18, Wrap: WrapNone, Width: Unconstrained},
	{ID: "stability_long_latin_none", Text: textLorem, Family: familyInter, FontSize: 18, Wrap: WrapNone, Width: Unconstrained},
	{ID: "stability_long_latin_word_80", Text: textLorem, Family: familyInter, FontSize: 18, Wrap: WrapWord, Width: MaxWidth(80)},
	{ID: "stability_long_latin_word_20", Text: textLorem, Family: familyInter, FontSize: 18, Wrap: WrapWord, Width: MaxWidth(20)},
	{ID: "stability_long_latin_wordorglyph_20", Text: textLorem, Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: MaxWidth(20)},
	{ID: "stability_spaces7_word_4", Text: "       ", Family: familyInter, FontSize: 18, Wrap: WrapWord, Width: MaxWidth(4)},
	{ID: "stability_spaces3_word_5", Text: "   ", Family: familyInter, FontSize: 18, Wrap: WrapWord, Width: MaxWidth(5)},
	{ID: "stability_spaces3_wordorglyph_5", Text: "   ", Family: familyInter, FontSize: 18, Wrap: WrapWordOrGlyph, Width: MaxWidth(5)},
	{ID: "stability_spaces7_glyph_4", Text: "       ", Family: familyInter, FontSize: 18, Wrap: WrapGlyph, Width: MaxWidth(4)},
	{ID: "stability_tabs_glyph_20", Text: "A\tB\tC", Family: familyInter, FontSize: 18, Wrap: WrapGlyph, Width: MaxWidth(20)},
}

// Cases returns the case matrix in declaration order.
// The returned slice is a copy and may be modified by the caller.
func Cases() []ParityCase {
	out := make([]ParityCase, len(matrix))
	copy(out, matrix)
	return out
}

// CaseByID returns the case with the given ID.
func CaseByID(id string) (ParityCase, bool) {
	for _, c := range matrix {
		if c.ID == id {
			return c, true
		}
	}
	return ParityCase{}, false
}
