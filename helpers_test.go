package cjkwrap

import (
	"regexp"
	"strings"
	"testing"
)

// seq builds an inline sequence from compact specs:
//
//	L:text  Latin text       I:text  ideograph text   T:text unclassified text
//	em+     em_open          em-     em_close         (any kind+ / kind-)
//	br      hardbreak        sb      softbreak        fn     footnote_ref
//	code:x  code_inline
func seq(t *testing.T, specs ...string) []Token {
	t.Helper()
	out := make([]Token, 0, len(specs))
	for _, s := range specs {
		switch {
		case strings.HasPrefix(s, "L:"):
			out = append(out, newText(s[2:], ScriptLatin))
		case strings.HasPrefix(s, "I:"):
			out = append(out, newText(s[2:], ScriptIdeograph))
		case strings.HasPrefix(s, "T:"):
			out = append(out, newText(s[2:], ScriptNone))
		case strings.HasPrefix(s, "code:"):
			out = append(out, Token{Type: "code_inline", Tag: "code", Content: s[5:]})
		case s == "br":
			out = append(out, Token{Type: typeHardBreak, Tag: "br"})
		case s == "sb":
			out = append(out, Token{Type: typeSoftBreak, Tag: "br"})
		case s == "fn":
			out = append(out, Token{Type: typeFootnote, Index: 1})
		case strings.HasSuffix(s, "+"):
			out = append(out, Token{Type: strings.TrimSuffix(s, "+") + suffixOpen, Nesting: 1})
		case strings.HasSuffix(s, "-"):
			out = append(out, Token{Type: strings.TrimSuffix(s, "-") + suffixClose, Nesting: -1})
		default:
			t.Fatalf("bad token spec %q", s)
		}
	}
	return out
}

// shape renders a sequence back into the compact form of seq. Wrap markers
// show as "<" plus "b"/"a" for their spacing flags, and ">".
func shape(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		switch {
		case tok.Type == typeWrapOpen:
			p := "<"
			if tok.Before {
				p += "b"
			}
			if tok.After {
				p += "a"
			}
			parts = append(parts, p)
		case tok.Type == typeWrapClose:
			parts = append(parts, ">")
		case tok.Type == typeText:
			prefix := "T:"
			switch tok.Script {
			case ScriptLatin:
				prefix = "L:"
			case ScriptIdeograph:
				prefix = "I:"
			}
			parts = append(parts, prefix+tok.Content)
		case tok.Type == "code_inline":
			parts = append(parts, "code:"+tok.Content)
		case tok.Type == typeHardBreak:
			parts = append(parts, "br")
		case tok.Type == typeSoftBreak:
			parts = append(parts, "sb")
		case tok.Type == typeFootnote:
			parts = append(parts, "fn")
		case tok.Nesting == 1:
			parts = append(parts, tok.Kind()+"+")
		case tok.Nesting == -1:
			parts = append(parts, tok.Kind()+"-")
		default:
			parts = append(parts, tok.Type)
		}
	}
	return strings.Join(parts, " ")
}

// inlineChildren returns the children of the n-th inline block of doc.
func inlineChildren(t *testing.T, doc *Document, n int) []Token {
	t.Helper()
	seen := 0
	for _, tok := range doc.Tokens {
		if tok.Type != typeInline {
			continue
		}
		if seen == n {
			return tok.Children
		}
		seen++
	}
	t.Fatalf("document has no inline block %d", n)
	return nil
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m|\x1b\]8;;[^\x1b]*\x1b\\`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
