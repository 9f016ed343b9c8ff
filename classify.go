package cjkwrap

import (
	"regexp"
	"unicode"
)

// Fragment is a piece of text tagged as a Latin run or not.
type Fragment struct {
	Text  string
	Latin bool
}

var (
	latinRunPattern = regexp.MustCompile(`[\w,.;'"’‘”“ ()\-–—…+!?&/<>*\[\]:@#=]+`)
	asciiLetter     = regexp.MustCompile(`[a-zA-Z]`)
)

// unifiedIdeograph is the Unicode 15.1 Unified_Ideograph property.
// unicode.Unified_Ideograph follows Unicode 15.0 and lacks Extension I
// (U+2EBF0..U+2EE5D).
var unifiedIdeograph = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4dbf, Stride: 1},
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1},
		{Lo: 0xfa0e, Hi: 0xfa0f, Stride: 1},
		{Lo: 0xfa11, Hi: 0xfa13, Stride: 2},
		{Lo: 0xfa14, Hi: 0xfa1f, Stride: 11},
		{Lo: 0xfa21, Hi: 0xfa23, Stride: 2},
		{Lo: 0xfa24, Hi: 0xfa27, Stride: 3},
		{Lo: 0xfa28, Hi: 0xfa29, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2a6df, Stride: 1},
		{Lo: 0x2a700, Hi: 0x2b739, Stride: 1},
		{Lo: 0x2b740, Hi: 0x2b81d, Stride: 1},
		{Lo: 0x2b820, Hi: 0x2cea1, Stride: 1},
		{Lo: 0x2ceb0, Hi: 0x2ebe0, Stride: 1},
		{Lo: 0x2ebf0, Hi: 0x2ee5d, Stride: 1},
		{Lo: 0x30000, Hi: 0x3134a, Stride: 1},
		{Lo: 0x31350, Hi: 0x323af, Stride: 1},
	},
}

// latinRuns returns the byte ranges of every Latin run in s.
func latinRuns(s string) [][]int {
	matches := latinRunPattern.FindAllStringIndex(s, -1)
	out := matches[:0]
	for _, m := range matches {
		if asciiLetter.MatchString(s[m[0]:m[1]]) {
			out = append(out, m)
		}
	}
	return out
}

// HasLatin reports whether s contains at least one Latin run.
func HasLatin(s string) bool {
	return len(latinRuns(s)) > 0
}

// HasIdeograph reports whether s contains a unified CJK ideograph.
func HasIdeograph(s string) bool {
	for _, r := range s {
		if unicode.Is(unifiedIdeograph, r) {
			return true
		}
	}
	return false
}

// Fragmentize splits s into alternating Latin and non-Latin fragments.
// The fragments concatenate to s and never overlap. A leading empty
// non-Latin fragment is omitted; a string without Latin runs yields a single
// non-Latin fragment.
func Fragmentize(s string) []Fragment {
	runs := latinRuns(s)
	if len(runs) == 0 {
		return []Fragment{{Text: s}}
	}
	out := make([]Fragment, 0, len(runs)*2+1)
	if runs[0][0] != 0 {
		out = append(out, Fragment{Text: s[:runs[0][0]]})
	}
	for i, m := range runs {
		out = append(out, Fragment{Text: s[m[0]:m[1]], Latin: true})
		if i+1 < len(runs) {
			out = append(out, Fragment{Text: s[m[1]:runs[i+1][0]]})
		} else if m[1] != len(s) {
			out = append(out, Fragment{Text: s[m[1]:]})
		}
	}
	return out
}
