package cjkwrap

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// cjkPunctuation lists the marks that already carry their own visual
// spacing, so no extra space is requested next to them.
const cjkPunctuation = "《》「」『』（）”“、。，？！；："

func isCJKPunctuation(r rune) bool {
	return strings.ContainsRune(cjkPunctuation, r)
}

func tokenAt(tokens []Token, i int) *Token {
	if i < 0 || i >= len(tokens) {
		return nil
	}
	return &tokens[i]
}

func trimLeadingSpace(tok *Token) {
	if tok != nil {
		tok.Content = strings.TrimLeftFunc(tok.Content, unicode.IsSpace)
	}
}

func trimTrailingSpace(tok *Token) {
	if tok != nil {
		tok.Content = strings.TrimRightFunc(tok.Content, unicode.IsSpace)
	}
}

// resolveSpacing decides whether the window [left, right) needs spacing
// before and after it, trimming the whitespace it replaces. lastPos is the
// index of the last ideograph text seen before the anchor, or -1.
func resolveSpacing(tokens []Token, left, right, lastPos int) (before, after bool) {
	prev := tokenAt(tokens, left-1)
	if last := tokenAt(tokens, lastPos); !isTerminator(prev) && last.IsIdeograph() {
		trimLeadingSpace(firstText(tokens, left, right))
		trimTrailingSpace(last)
		r, _ := utf8.DecodeLastRuneInString(last.Content)
		before = !isCJKPunctuation(r)
	}

	if next := firstText(tokens, right, len(tokens)); next.IsIdeograph() {
		trimLeadingSpace(next)
		r, _ := utf8.DecodeRuneInString(next.Content)
		after = !isCJKPunctuation(r)
		trimTrailingSpace(lastText(tokens, left, right))
	}
	return before, after
}

// firstText returns the first text token in tokens[from:to], or nil.
func firstText(tokens []Token, from, to int) *Token {
	for p := from; p < to && p < len(tokens); p++ {
		if tokens[p].Type == typeText {
			return &tokens[p]
		}
	}
	return nil
}

// lastText returns the last text token in tokens[from:to], or nil.
func lastText(tokens []Token, from, to int) *Token {
	for p := to - 1; p >= from && p >= 0; p-- {
		if tokens[p].Type == typeText {
			return &tokens[p]
		}
	}
	return nil
}
