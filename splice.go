package cjkwrap

// replaceAt returns a new slice with src[pos] replaced by repl.
func replaceAt(src []Token, pos int, repl []Token) []Token {
	return replaceRange(src, pos, pos+1, repl...)
}

// replaceRange returns a new slice with src[start:end] replaced by repl.
// src is left untouched.
func replaceRange(src []Token, start, end int, repl ...Token) []Token {
	out := make([]Token, 0, len(src)-(end-start)+len(repl))
	out = append(out, src[:start]...)
	out = append(out, repl...)
	return append(out, src[end:]...)
}

// spliceWrap surrounds tokens[left:right] with an en_open/en_close pair.
func spliceWrap(tokens []Token, left, right int, before, after bool) []Token {
	open := newWrapOpen(before, after)
	closing := newWrapClose()
	open.Level = tokens[left].Level
	closing.Level = open.Level
	repl := make([]Token, 0, right-left+2)
	repl = append(repl, open)
	repl = append(repl, tokens[left:right]...)
	repl = append(repl, closing)
	return replaceRange(tokens, left, right, repl...)
}
