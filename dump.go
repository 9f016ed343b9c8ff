package cjkwrap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DumpTokens writes one line per token, indented by nesting depth. Inline
// children follow their inline token one level deeper.
func DumpTokens(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	dumpTokens(bw, doc.Tokens, 0)
	return bw.Flush()
}

func dumpTokens(w *bufio.Writer, tokens []Token, depth int) {
	for i := range tokens {
		tok := &tokens[i]
		if tok.Nesting == -1 {
			depth--
		}
		fmt.Fprintf(w, "%s%s", strings.Repeat("  ", max(depth, 0)), tok.Type)
		if tok.Tag != "" {
			fmt.Fprintf(w, " <%s>", tok.Tag)
		}
		if tok.Type == typeText || tok.Type == typeInline || tok.Content != "" {
			w.WriteString(" " + strconv.Quote(tok.Content))
		}
		if tok.Script != ScriptNone {
			w.WriteString(" " + tok.Script.String())
		}
		if tok.Type == typeWrapOpen {
			fmt.Fprintf(w, " before=%t after=%t", tok.Before, tok.After)
		}
		if tok.Hidden {
			w.WriteString(" hidden")
		}
		w.WriteByte('\n')
		if tok.Nesting == 1 {
			depth++
		}
		if len(tok.Children) > 0 {
			dumpTokens(w, tok.Children, depth+1)
		}
	}
}
