package cjkwrap

// Wrap surrounds every Latin run of doc's inline blocks with en_open and
// en_close markers. Only WithWrapAll affects wrapping; the remaining options
// are consumed by the renderers.
func Wrap(doc *Document, opts ...Option) {
	wrapDocument(doc, NewOptions(opts...))
}

func wrapDocument(doc *Document, o Options) {
	if doc == nil || !doc.hasIdeograph() {
		return
	}
	for idx := len(doc.Tokens) - 1; idx >= 0; idx-- {
		blk := &doc.Tokens[idx]
		if blk.Type != typeInline {
			continue
		}
		if !HasLatin(blk.Content) {
			continue
		}
		if !o.WrapAll && !HasIdeograph(blk.Content) {
			continue
		}
		blk.Children = expandFragments(blk.Children)
		if len(blk.Children) == 0 {
			continue
		}
		blk.Children = WrapInline(blk.Children)
	}
}

// hasIdeograph reports whether any part of the document contains an
// ideograph. Documents built without Source are checked block by block.
func (d *Document) hasIdeograph() bool {
	if len(d.Source) > 0 {
		return HasIdeograph(string(d.Source))
	}
	for i := range d.Tokens {
		if d.Tokens[i].Type == typeInline && HasIdeograph(d.Tokens[i].Content) {
			return true
		}
	}
	return false
}

// WrapInline wraps the Latin runs of an already classified inline sequence
// and returns the new sequence. Text tokens must carry a Script; unclassified
// text is neither wrapped nor treated as an ideograph neighbour.
func WrapInline(tokens []Token) []Token {
	nesting, lastPos := 0, -1
	for i := 0; i < len(tokens); i++ {
		nesting += tokens[i].Nesting
		if tokens[i].IsIdeograph() {
			lastPos = i
		}
		if !tokens[i].IsLatin() {
			continue
		}

		w := newWindow(i, nesting)
		w.growLeft(tokens)
		w.growRight(tokens)
		w.rebalance(tokens)
		if w.right <= w.left {
			continue
		}

		before, after := resolveSpacing(tokens, w.left, w.right, lastPos)
		tokens = spliceWrap(tokens, w.left, w.right, before, after)

		// Resume after the inserted en_close, which sits at w.right+1. The
		// wrapped range holds no ideograph text, so lastPos is cleared.
		i = w.right + 1
		nesting = w.rightNesting
		lastPos = -1
	}
	return tokens
}
