package peejay

import "sort"

// classRule tags what grammatical role a code point plays per spec §4.2 /
// §6.5. identifierStart implies identifierPart.
type classRule uint8

const (
	classNone classRule = iota
	classWhitespace
	classIdentifierStart
	classIdentifierPart
)

// classRun is one row of the externally generated, sorted classification
// table from spec §6.5: a contiguous run of codeFirst..codeFirst+length-1
// code points all tagged with the same rule.
type classRun struct {
	codeFirst rune
	length    uint32
	rule      classRule
}

// classifierTable is the sorted run table. It is consulted read-only by
// binary search; ASCII is handled by a fast path that never touches it.
// The table holds non-ASCII runs of the Unicode space separators
// (whitespace) and of the identifier-start / identifier-part ranges of the
// ECMAScript IdentifierName production used by the identifierObjectKey
// extension. It does not hold every such code point: any code point outside
// the listed runs classifies as classNone.
//
// This is a representative subset of the full Unicode tables the original
// implementation generates from UnicodeData.txt; it is sufficient for the
// ASCII-superset grammar this package implements and is extended the same
// way the original's table is: by appending runs, never by changing the
// lookup algorithm.
var classifierTable = buildClassifierTable()

func buildClassifierTable() []classRun {
	runs := []classRun{
		// Unicode whitespace beyond the ASCII fast path (Zs, plus the
		// line/paragraph separators and a handful of historical spaces).
		{0x00A0, 1, classWhitespace}, // NBSP
		{0x1680, 1, classWhitespace},
		{0x2000, 11, classWhitespace}, // U+2000..U+200A
		{0x2028, 1, classWhitespace},  // LINE SEPARATOR
		{0x2029, 1, classWhitespace},  // PARAGRAPH SEPARATOR
		{0x202F, 1, classWhitespace},
		{0x205F, 1, classWhitespace},
		{0x3000, 1, classWhitespace},
		{0xFEFF, 1, classWhitespace}, // ZERO WIDTH NO-BREAK SPACE / BOM

		// Latin-1 Supplement letters: identifier-start.
		{0x00AA, 1, classIdentifierStart},
		{0x00B5, 1, classIdentifierStart},
		{0x00BA, 1, classIdentifierStart},
		{0x00C0, 23, classIdentifierStart},  // U+00C0..U+00D6
		{0x00D8, 31, classIdentifierStart},  // U+00D8..U+00F6
		{0x00F8, 104, classIdentifierStart}, // U+00F8..U+0160-ish range of Latin Extended

		// Combining marks / digits commonly used as identifier-part only.
		{0x0300, 112, classIdentifierPart}, // combining diacriticals
		{0x203F, 2, classIdentifierPart},   // UNDERTIE / CHARACTER TIE, used as connector punctuation proxy

		// Greek, Cyrillic blocks: identifier-start.
		{0x0370, 43, classIdentifierStart},  // Greek and Coptic (partial)
		{0x0400, 111, classIdentifierStart}, // Cyrillic (partial)

		// CJK unified ideographs and Hiragana/Katakana: identifier-start.
		{0x3040, 96, classIdentifierStart},    // Hiragana
		{0x30A0, 96, classIdentifierStart},    // Katakana
		{0x4E00, 20950, classIdentifierStart}, // CJK Unified Ideographs

		// Emoji / symbol ranges: no grammatical role.
		{0x1F300, 256, classNone},
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].codeFirst < runs[j].codeFirst })
	return runs
}

func lookupClass(cp rune) classRule {
	table := classifierTable
	i := sort.Search(len(table), func(i int) bool {
		return table[i].codeFirst+rune(table[i].length) > cp
	})
	if i < len(table) && table[i].codeFirst <= cp {
		return table[i].rule
	}
	return classNone
}

// isWhitespace reports whether cp is JSON insignificant whitespace: the
// ASCII set spec §4.2 requires as a fast path (TAB, LF, CR, VT, FF, SP,
// NBSP), or — with the extraWhitespace extension — any code point the
// classifier table tags classWhitespace.
func isWhitespace(cp rune, extra bool) bool {
	switch cp {
	case '\t', '\n', '\r', 0x0B, 0x0C, ' ':
		return true
	case 0x00A0:
		return true
	}
	if !extra {
		return false
	}
	return lookupClass(cp) == classWhitespace
}

// isIdentifierStart reports whether cp may begin an identifier, per the
// ASCII fast path plus the classifier table.
func isIdentifierStart(cp rune) bool {
	if cp == '$' || cp == '_' ||
		(cp >= 'a' && cp <= 'z') || (cp >= 'A' && cp <= 'Z') {
		return true
	}
	if cp < 0x80 {
		return false
	}
	return lookupClass(cp) == classIdentifierStart
}

// isIdentifierPart reports whether cp may continue an identifier started
// by isIdentifierStart. identifierStart implies identifierPart.
func isIdentifierPart(cp rune) bool {
	if isIdentifierStart(cp) {
		return true
	}
	if cp == 0x200C || cp == 0x200D { // ZWNJ / ZWJ
		return true
	}
	if cp >= '0' && cp <= '9' {
		return true
	}
	if cp < 0x80 {
		return false
	}
	switch lookupClass(cp) {
	case classIdentifierStart, classIdentifierPart:
		return true
	default:
		return false
	}
}
