package cjkwrap

// openTag is a scope opened inside a window that has not been closed yet.
type openTag struct {
	kind string
	pos  int
}

// window is the token range [left, right) grown around a Latin anchor.
//
// leftNesting is the nesting depth just before left and rightNesting the
// depth just before right, both measured the same way as the running
// nesting counter of the scan.
type window struct {
	anchor       int
	nesting      int
	left         int
	right        int
	leftNesting  int
	rightNesting int
	tagsToClose  []openTag
}

func newWindow(anchor, nesting int) *window {
	return &window{
		anchor:       anchor,
		nesting:      nesting,
		left:         anchor,
		right:        anchor,
		leftNesting:  nesting,
		rightNesting: nesting,
	}
}

// growLeft walks backwards from the anchor over markers and Latin text.
func (w *window) growLeft(tokens []Token) {
	for w.left >= 0 {
		tok := &tokens[w.left]
		if isTerminator(tok) || tok.IsIdeograph() {
			break
		}
		if tok.Nesting == 1 {
			w.push(tok.Kind(), w.left)
		}
		w.leftNesting -= tok.Nesting
		w.left--
	}
	w.left++
}

// growRight walks forward from the anchor. A closing marker that does not
// close a scope opened inside the window stops growth: its scope began
// before the window.
func (w *window) growRight(tokens []Token) {
	for w.right < len(tokens) {
		tok := &tokens[w.right]
		if isTerminator(tok) || tok.IsIdeograph() {
			break
		}
		switch tok.Nesting {
		case 1:
			w.push(tok.Kind(), w.right)
		case -1:
			if !w.pop(tok.Kind()) {
				return
			}
		}
		w.rightNesting += tok.Nesting
		w.right++
	}
}

func (w *window) push(kind string, pos int) {
	w.tagsToClose = append(w.tagsToClose, openTag{kind: kind, pos: pos})
}

// pop removes the innermost open scope of the given kind.
func (w *window) pop(kind string) bool {
	for i := len(w.tagsToClose) - 1; i >= 0; i-- {
		if w.tagsToClose[i].kind == kind {
			w.tagsToClose = append(w.tagsToClose[:i], w.tagsToClose[i+1:]...)
			return true
		}
	}
	return false
}

// rebalance shrinks the window until no marker inside it has its partner
// outside. A straddling marker left of the anchor pulls left past it; one
// right of the anchor pulls right down to it. The anchor is text, so the
// window never loses it.
func (w *window) rebalance(tokens []Token) {
	for steps := 0; steps < len(tokens); steps++ {
		if !w.trimUnpaired(tokens) {
			break
		}
	}
	w.tagsToClose = w.tagsToClose[:0]
	w.leftNesting = w.nesting
	for k := w.left; k <= w.anchor; k++ {
		w.leftNesting -= tokens[k].Nesting
	}
	w.rightNesting = w.nesting
	for k := w.anchor + 1; k < w.right; k++ {
		w.rightNesting += tokens[k].Nesting
	}
}

// trimUnpaired performs one pairing pass over the window and cuts at every
// unpaired marker. It reports whether the window changed.
func (w *window) trimUnpaired(tokens []Token) bool {
	left, right := w.left, w.right
	cut := func(pos int) {
		if pos < w.anchor {
			if pos+1 > left {
				left = pos + 1
			}
			return
		}
		if pos < right {
			right = pos
		}
	}
	w.tagsToClose = w.tagsToClose[:0]
	for k := w.left; k < w.right; k++ {
		tok := &tokens[k]
		switch tok.Nesting {
		case 1:
			w.push(tok.Kind(), k)
		case -1:
			kind := tok.Kind()
			top := len(w.tagsToClose) - 1
			for top >= 0 && w.tagsToClose[top].kind != kind {
				top--
			}
			if top < 0 {
				cut(k)
				continue
			}
			for _, o := range w.tagsToClose[top+1:] {
				cut(o.pos)
			}
			w.tagsToClose = w.tagsToClose[:top]
		}
	}
	for _, o := range w.tagsToClose {
		cut(o.pos)
	}
	changed := left != w.left || right != w.right
	w.left, w.right = left, right
	return changed
}
