package cjkwrap

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

const rawHTMLOmitted = "<!-- raw HTML omitted -->"

// RenderHTML writes doc as HTML. Wrap markers become spans carrying the
// configured spacing classes and lang attribute.
func RenderHTML(w io.Writer, doc *Document, opts ...Option) error {
	return renderHTML(w, doc, NewOptions(opts...))
}

func renderHTML(w io.Writer, doc *Document, o Options) error {
	bw := bufio.NewWriter(w)
	r := htmlRenderer{w: bw, opts: o}
	for i := range doc.Tokens {
		r.block(doc.Tokens, i)
	}
	return bw.Flush()
}

type htmlRenderer struct {
	w    *bufio.Writer
	opts Options
}

func (r *htmlRenderer) escape(s string) {
	_, _ = r.w.Write(util.EscapeHTML([]byte(s)))
}

func (r *htmlRenderer) block(tokens []Token, idx int) {
	tok := &tokens[idx]
	switch tok.Type {
	case typeInline:
		r.inline(tok.Children)
	case "code_block":
		r.w.WriteString("<pre><code>")
		r.escape(tok.Content)
		r.w.WriteString("</code></pre>\n")
	case "fence":
		r.w.WriteString("<pre><code")
		if lang, _, _ := strings.Cut(strings.TrimSpace(tok.Info), " "); lang != "" {
			r.w.WriteString(` class="language-`)
			r.escape(lang)
			r.w.WriteString(`"`)
		}
		r.w.WriteString(">")
		r.escape(tok.Content)
		r.w.WriteString("</code></pre>\n")
	case "html_block":
		if !r.opts.Unsafe {
			r.w.WriteString(rawHTMLOmitted + "\n")
			return
		}
		r.w.WriteString(tok.Content)
	case "footnote_block_open":
		r.w.WriteString("<hr class=\"footnotes-sep\">\n<section class=\"footnotes\">\n<ol class=\"footnotes-list\">\n")
	case "footnote_block_close":
		r.w.WriteString("</ol>\n</section>\n")
	case "footnote_open":
		r.w.WriteString(`<li id="fn` + strconv.Itoa(tok.Index) + `" class="footnote-item">`)
	case "footnote_close":
		r.w.WriteString("</li>\n")
	default:
		r.blockTag(tokens, idx)
	}
}

// blockTag renders an opening, closing or void block tag, followed by a
// newline unless the tag wraps inline content directly.
func (r *htmlRenderer) blockTag(tokens []Token, idx int) {
	tok := &tokens[idx]
	if tok.Hidden {
		return
	}
	if tok.Nesting != -1 && idx > 0 && tokens[idx-1].Hidden {
		r.w.WriteByte('\n')
	}
	r.tag(tok)
	needLF := true
	if tok.Nesting == 1 && idx+1 < len(tokens) {
		next := &tokens[idx+1]
		if next.Type == typeInline || next.Hidden {
			needLF = false
		} else if next.Nesting == -1 && next.Tag == tok.Tag {
			needLF = false
		}
	}
	if needLF {
		r.w.WriteByte('\n')
	}
}

func (r *htmlRenderer) tag(tok *Token) {
	if tok.Nesting == -1 {
		r.w.WriteString("</")
	} else {
		r.w.WriteString("<")
	}
	r.w.WriteString(tok.Tag)
	if tok.Nesting != -1 {
		r.attrs(tok.Attrs)
	}
	r.w.WriteString(">")
}

func (r *htmlRenderer) attrs(attrs []Attr) {
	for _, a := range attrs {
		if !r.opts.Unsafe && (a.Name == "href" || a.Name == "src") && html.IsDangerousURL([]byte(a.Value)) {
			a.Value = ""
		}
		r.w.WriteString(" ")
		r.w.WriteString(a.Name)
		r.w.WriteString(`="`)
		r.escape(a.Value)
		r.w.WriteString(`"`)
	}
}

func (r *htmlRenderer) inline(tokens []Token) {
	for i := range tokens {
		tok := &tokens[i]
		switch tok.Type {
		case typeText:
			r.escape(tok.Content)
		case typeSoftBreak:
			r.w.WriteString("\n")
		case typeHardBreak:
			r.w.WriteString("<br>\n")
		case "code_inline":
			r.w.WriteString("<code>")
			r.escape(tok.Content)
			r.w.WriteString("</code>")
		case "html_inline":
			if !r.opts.Unsafe {
				r.w.WriteString(rawHTMLOmitted)
				continue
			}
			r.w.WriteString(tok.Content)
		case "image":
			r.image(tok)
		case typeFootnote:
			r.w.WriteString(`<sup class="footnote-ref"><a`)
			r.attrs(tok.Attrs)
			r.w.WriteString(">[" + strconv.Itoa(tok.Index) + "]</a></sup>")
		case "footnote_anchor":
			r.w.WriteString(" <a")
			r.attrs(tok.Attrs)
			r.w.WriteString(" class=\"footnote-backref\">↩︎</a>")
		case typeWrapOpen:
			r.wrapOpen(tok)
		case typeWrapClose:
			r.w.WriteString("</span>")
		default:
			r.tag(tok)
		}
	}
}

func (r *htmlRenderer) image(tok *Token) {
	r.w.WriteString("<img")
	for _, a := range tok.Attrs {
		if a.Name == "alt" {
			a.Value = tok.Content
		}
		r.attrs([]Attr{a})
	}
	r.w.WriteString(">")
}

// wrapOpen renders the opening span of a Latin run.
func (r *htmlRenderer) wrapOpen(tok *Token) {
	r.w.WriteString("<span")
	if r.opts.Lang != "" {
		r.attrs([]Attr{{Name: "lang", Value: r.opts.Lang}})
	}
	if class := wrapClasses(tok, r.opts); class != "" {
		r.attrs([]Attr{{Name: "class", Value: class}})
	}
	r.w.WriteString(">")
}

// wrapClasses returns the space separated spacing classes of an en_open
// token.
func wrapClasses(tok *Token, o Options) string {
	classes := make([]string, 0, 2)
	if tok.Before && o.BeforeClass != "" {
		classes = append(classes, o.BeforeClass)
	}
	if tok.After && o.AfterClass != "" {
		classes = append(classes, o.AfterClass)
	}
	return strings.Join(classes, " ")
}
