package cjkwrap

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const (
	ansiReset = "\x1b[0m"
	osc8Start = "\x1b]8;;"
	osc8Sep   = "\x1b\\"
	osc8End   = "\x1b]8;;\x1b\\"
)

// TerminalConfig configures RenderTerminal.
type TerminalConfig struct {
	// Width is the wrap width; zero or less disables wrapping.
	Width int
	Theme Theme
	OSC8  bool
}

// RenderTerminal writes doc as styled terminal text. A wrapped Latin run is
// drawn in the theme's Latin style with a literal space on each side whose
// spacing flag is set.
func RenderTerminal(w io.Writer, doc *Document, cfg TerminalConfig) error {
	th := cfg.Theme
	if th == nil {
		th = DefaultTheme()
	}
	t := termRenderer{styles: th.Styles(), width: cfg.Width, osc8: cfg.OSC8}
	for i := range doc.Tokens {
		t.block(&doc.Tokens[i])
	}
	_, err := io.WriteString(w, t.out.String())
	return err
}

// DetectOSC8Support returns true if the current environment likely supports
// OSC 8 hyperlinks.
func DetectOSC8Support() bool {
	if os.Getenv("OSC8") == "0" {
		return false
	}
	if os.Getenv("DOMTERM") != "" || os.Getenv("WT_SESSION") != "" {
		return true
	}
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "vscode":
		return true
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM")), "kitty") {
		return true
	}
	if n, err := strconv.Atoi(os.Getenv("VTE_VERSION")); err == nil && n >= 5000 {
		return true
	}
	return false
}

type listFrame struct {
	ordered bool
	next    int
	indent  int
}

type termRenderer struct {
	styles  Styles
	width   int
	osc8    bool
	out     strings.Builder
	written bool

	quote   int
	lists   []listFrame
	marker  string
	heading int
	hidden  bool
	table   *termTable
}

func styled(s Style, text string) string {
	if s.Prefix == "" || text == "" {
		return text
	}
	return s.Prefix + text + ansiReset
}

func (t *termRenderer) block(tok *Token) {
	if t.table != nil && tok.Type != "table_close" {
		t.table.add(t, tok)
		return
	}
	switch tok.Type {
	case "paragraph_open":
		t.hidden = tok.Hidden
	case "heading_open":
		t.heading = len(tok.Markup)
	case "heading_close":
		t.heading = 0
	case "blockquote_open":
		t.quote++
	case "blockquote_close":
		t.quote--
	case "bullet_list_open", "ordered_list_open":
		start := tok.Index
		if start == 0 {
			start = 1
		}
		t.lists = append(t.lists, listFrame{ordered: tok.Type == "ordered_list_open", next: start})
	case "bullet_list_close", "ordered_list_close", "footnote_close":
		if len(t.lists) > 0 {
			t.lists = t.lists[:len(t.lists)-1]
		}
	case "list_item_open":
		if len(t.lists) == 0 {
			return
		}
		f := &t.lists[len(t.lists)-1]
		marker := "-"
		if f.ordered {
			marker = strconv.Itoa(f.next) + "."
			f.next++
		}
		f.indent = runewidth.StringWidth(marker) + 1
		t.marker = marker
	case "footnote_block_open":
		t.separate()
		t.rule()
	case "footnote_open":
		marker := "[" + strconv.Itoa(tok.Index) + "]"
		t.lists = append(t.lists, listFrame{indent: runewidth.StringWidth(marker) + 1})
		t.marker = marker
	case typeInline:
		t.paragraph(tok)
	case "code_block", "fence":
		t.code(tok.Content)
	case "html_block":
		t.code(tok.Content)
	case "hr":
		t.separate()
		t.rule()
	case "table_open":
		t.table = &termTable{}
	case "table_close":
		t.separate()
		t.table.render(t)
		t.table = nil
	}
}

// prefixes returns the line prefix for the first line of the next block,
// the prefix for every following line, and the printable prefix width.
func (t *termRenderer) prefixes() (first, rest string, width int) {
	var quote strings.Builder
	for i := 0; i < t.quote; i++ {
		quote.WriteString(styled(t.styles.Quote, "> "))
	}
	outer := 0
	for i, f := range t.lists {
		if i < len(t.lists)-1 {
			outer += f.indent
		}
	}
	last := 0
	if len(t.lists) > 0 {
		last = t.lists[len(t.lists)-1].indent
	}
	rest = quote.String() + strings.Repeat(" ", outer+last)
	first = rest
	if t.marker != "" {
		first = quote.String() + strings.Repeat(" ", outer) + styled(t.styles.ListMarker, t.marker) + " "
	}
	return first, rest, ansi.PrintableRuneWidth(rest)
}

// separate writes a blank line between blocks unless the next block sits in
// a tight list.
func (t *termRenderer) separate() {
	if !t.written || t.hidden {
		return
	}
	for i := 0; i < t.quote; i++ {
		t.out.WriteString(styled(t.styles.Quote, ">"))
		if i < t.quote-1 {
			t.out.WriteByte(' ')
		}
	}
	t.out.WriteByte('\n')
}

func (t *termRenderer) writeLines(text string) {
	first, rest, _ := t.prefixes()
	for i, line := range strings.Split(text, "\n") {
		if i == 0 {
			t.out.WriteString(first)
		} else {
			t.out.WriteString(rest)
		}
		t.out.WriteString(line)
		t.out.WriteByte('\n')
	}
	t.marker = ""
	t.written = true
}

func (t *termRenderer) avail() int {
	_, _, width := t.prefixes()
	return t.width - width
}

func (t *termRenderer) paragraph(tok *Token) {
	t.separate()
	base := t.styles.Text
	var head string
	if t.heading > 0 {
		base = t.styles.Heading[t.heading-1]
		head = styled(base, strings.Repeat("#", t.heading)+" ")
	}
	text := head + t.inlineText(tok.Children, base)
	if avail := t.avail(); t.width > 0 && avail > 0 {
		// wordwrap breaks at spaces; wrap then splits runs of CJK text
		// that contain none.
		// TODO: reflow counts OSC 8 URLs as printable, so lines holding
		// links wrap early.
		text = wrap.String(wordwrap.String(text, avail), avail)
	}
	t.writeLines(text)
	t.hidden = false
}

func (t *termRenderer) code(content string) {
	t.separate()
	content = strings.TrimRight(content, "\n")
	var b strings.Builder
	for i, line := range strings.Split(indent.String(content, 2), "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(styled(t.styles.CodeBlock, line))
	}
	t.writeLines(b.String())
}

func (t *termRenderer) rule() {
	n := t.avail()
	if t.width <= 0 || n <= 0 {
		n = 3
	}
	t.writeLines(styled(t.styles.ThematicBreak, strings.Repeat("─", n)))
}

type linkFrame struct {
	href string
	auto bool
}

// inlineText renders inline children as one styled string with hard breaks
// as newlines.
func (t *termRenderer) inlineText(tokens []Token, base Style) string {
	var (
		b      strings.Builder
		active []string
		afters []bool
		links  []linkFrame
	)
	write := func(s string) {
		prefix := base.Prefix + strings.Join(active, "")
		b.WriteString(styled(Style{Prefix: prefix}, s))
	}
	push := func(s Style) { active = append(active, s.Prefix) }
	pop := func() {
		if len(active) > 0 {
			active = active[:len(active)-1]
		}
	}
	for i := range tokens {
		tok := &tokens[i]
		switch tok.Type {
		case typeText, "html_inline":
			write(tok.Content)
		case typeSoftBreak:
			b.WriteByte(' ')
		case typeHardBreak:
			b.WriteByte('\n')
		case "em_open":
			push(t.styles.Emphasis)
		case "strong_open":
			push(t.styles.Strong)
		case "s_open":
			push(t.styles.Strike)
		case "em_close", "strong_close", "s_close":
			pop()
		case "code_inline":
			push(t.styles.CodeInline)
			write(tok.Content)
			pop()
		case "link_open":
			href, _ := tok.Attr("href")
			links = append(links, linkFrame{href: href, auto: tok.Markup == "autolink"})
			if t.osc8 {
				b.WriteString(osc8Start + href + osc8Sep)
			}
			push(t.styles.LinkText)
		case "link_close":
			pop()
			if len(links) == 0 {
				continue
			}
			l := links[len(links)-1]
			links = links[:len(links)-1]
			if t.osc8 {
				b.WriteString(osc8End)
			} else if !l.auto && l.href != "" {
				b.WriteString(" (" + t.url(l.href) + ")")
			}
		case "image":
			src, _ := tok.Attr("src")
			write("[" + tok.Content + "]")
			if src != "" {
				b.WriteString(" (" + t.url(src) + ")")
			}
		case typeFootnote:
			b.WriteString(styled(t.styles.ListMarker, "["+strconv.Itoa(tok.Index)+"]"))
		case typeWrapOpen:
			if tok.Before {
				b.WriteByte(' ')
			}
			afters = append(afters, tok.After)
			push(t.styles.Latin)
		case typeWrapClose:
			pop()
			if len(afters) > 0 {
				if afters[len(afters)-1] {
					b.WriteByte(' ')
				}
				afters = afters[:len(afters)-1]
			}
		}
	}
	return b.String()
}

// url styles a printed link target, shortened to fit one line.
func (t *termRenderer) url(href string) string {
	limit := 0
	if t.width > 0 {
		limit = t.avail() - 3
	}
	return styled(t.styles.LinkURL, fitURL(href, limit))
}

// termTable collects the cells of a table until table_close.
type termTable struct {
	rows   [][]string
	header int
	row    []string
	inHead bool
}

func (tt *termTable) add(t *termRenderer, tok *Token) {
	switch tok.Type {
	case "thead_open":
		tt.inHead = true
	case "thead_close":
		tt.inHead = false
	case "tr_open":
		tt.row = nil
	case "tr_close":
		tt.rows = append(tt.rows, tt.row)
		if tt.inHead {
			tt.header = len(tt.rows)
		}
	case typeInline:
		plain := termRenderer{styles: Styles{}}
		tt.row = append(tt.row, plain.inlineText(tok.Children, Style{}))
	}
}

func (tt *termTable) render(t *termRenderer) {
	var widths []int
	for _, row := range tt.rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	var b strings.Builder
	line := func(row []string, s Style) {
		b.WriteString("|")
		for i, w := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(" " + styled(s, runewidth.FillRight(cell, w)) + " |")
		}
	}
	for r, row := range tt.rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		if r < tt.header {
			line(row, t.styles.Strong)
		} else {
			line(row, t.styles.Text)
		}
		if r == tt.header-1 {
			b.WriteString("\n|")
			for _, w := range widths {
				b.WriteString(strings.Repeat("-", w+2) + "|")
			}
		}
	}
	t.writeLines(b.String())
}
