package cjkwrap

import "strings"

// Token is a block or inline token in markdown-it shape.
//
// Text leaves have Type "text" and carry a Script tag once the fragment
// expander has classified them. Every other type is a structural marker whose
// Nesting is -1 (closes a scope), 0 (self-contained) or +1 (opens a scope).
type Token struct {
	Type     string
	Tag      string
	Nesting  int
	Level    int
	Content  string
	Info     string
	Markup   string
	Attrs    []Attr
	Children []Token
	Script   Script
	Before   bool
	After    bool
	Index    int
	Hidden   bool
}

// Attr is an HTML attribute attached to a token.
type Attr struct {
	Name  string
	Value string
}

// Script is the classification of a text token.
type Script uint8

const (
	// ScriptNone marks text that has not been classified.
	ScriptNone Script = iota
	// ScriptLatin marks a Latin run.
	ScriptLatin
	// ScriptIdeograph marks everything that is not a Latin run.
	ScriptIdeograph
)

func (s Script) String() string {
	switch s {
	case ScriptLatin:
		return "latin"
	case ScriptIdeograph:
		return "ideograph"
	default:
		return "none"
	}
}

const (
	typeText      = "text"
	typeInline    = "inline"
	typeWrapOpen  = "en_open"
	typeWrapClose = "en_close"
	typeHardBreak = "hardbreak"
	typeSoftBreak = "softbreak"
	typeFootnote  = "footnote_ref"
	suffixOpen    = "_open"
	suffixClose   = "_close"
	wrapTag       = "span"
)

// Document is a parsed Markdown document as a flat list of block tokens.
type Document struct {
	Source []byte
	Tokens []Token
	Env    Env
}

// Env holds document-wide data collected while parsing.
type Env struct {
	// FootnoteLabels maps footnote indexes to their reference labels.
	FootnoteLabels map[int]string
}

// IsLatin reports whether t is a text token classified as a Latin run.
func (t *Token) IsLatin() bool {
	return t != nil && t.Type == typeText && t.Script == ScriptLatin
}

// IsIdeograph reports whether t is a text token classified as non-Latin.
func (t *Token) IsIdeograph() bool {
	return t != nil && t.Type == typeText && t.Script == ScriptIdeograph
}

// Kind returns the marker kind: the type without its _open or _close suffix.
func (t *Token) Kind() string {
	switch t.Nesting {
	case 1:
		return strings.TrimSuffix(t.Type, suffixOpen)
	case -1:
		return strings.TrimSuffix(t.Type, suffixClose)
	default:
		return t.Type
	}
}

// Attr returns the value of the named attribute.
func (t *Token) Attr(name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func isTerminator(t *Token) bool {
	if t == nil {
		return false
	}
	switch t.Type {
	case typeWrapClose, typeFootnote, typeHardBreak:
		return true
	default:
		return false
	}
}

func newText(content string, script Script) Token {
	return Token{Type: typeText, Content: content, Script: script}
}

func newWrapOpen(before, after bool) Token {
	return Token{Type: typeWrapOpen, Tag: wrapTag, Nesting: 1, Before: before, After: after}
}

func newWrapClose() Token {
	return Token{Type: typeWrapClose, Tag: wrapTag, Nesting: -1}
}
