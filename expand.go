package cjkwrap

// expandFragments replaces every non-empty text token of an inline sequence
// by its classified fragments. Tokens are visited from the end so pending
// indexes stay valid while the slice grows.
func expandFragments(children []Token) []Token {
	for i := len(children) - 1; i >= 0; i-- {
		tok := children[i]
		if tok.Type != typeText || tok.Content == "" {
			continue
		}
		frags := Fragmentize(tok.Content)
		repl := make([]Token, len(frags))
		for j, f := range frags {
			script := ScriptIdeograph
			if f.Latin {
				script = ScriptLatin
			}
			repl[j] = newText(f.Text, script)
			repl[j].Level = tok.Level
		}
		children = replaceAt(children, i, repl)
	}
	return children
}
