package cjkwrap

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.Linkify,
		extension.Footnote,
	),
)

// Parse parses Markdown into a flat block token list whose inline blocks
// carry their inline children, the shape Wrap rewrites.
func Parse(src []byte) *Document {
	root := markdown.Parser().Parse(text.NewReader(src))
	c := converter{
		src: src,
		env: Env{FootnoteLabels: map[int]string{}},
	}
	c.blocks(root, 0)
	return &Document{Source: src, Tokens: c.tokens, Env: c.env}
}

type converter struct {
	src    []byte
	tokens []Token
	env    Env
}

func (c *converter) push(typ, tag string, nesting, level int) int {
	c.tokens = append(c.tokens, Token{Type: typ, Tag: tag, Nesting: nesting, Level: level})
	return len(c.tokens) - 1
}

func (c *converter) blocks(parent ast.Node, level int) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		c.block(n, level)
	}
}

func (c *converter) block(node ast.Node, level int) {
	switch n := node.(type) {
	case *ast.Paragraph:
		c.push("paragraph_open", "p", 1, level)
		c.inline(n, level+1)
		c.push("paragraph_close", "p", -1, level)
	case *ast.TextBlock:
		// Tight list items keep their paragraph tokens hidden.
		open := c.push("paragraph_open", "p", 1, level)
		c.tokens[open].Hidden = true
		c.inline(n, level+1)
		closing := c.push("paragraph_close", "p", -1, level)
		c.tokens[closing].Hidden = true
	case *ast.Heading:
		tag := "h" + strconv.Itoa(n.Level)
		open := c.push("heading_open", tag, 1, level)
		c.tokens[open].Markup = strings.Repeat("#", n.Level)
		c.inline(n, level+1)
		c.push("heading_close", tag, -1, level)
	case *ast.Blockquote:
		c.push("blockquote_open", "blockquote", 1, level)
		c.blocks(n, level+1)
		c.push("blockquote_close", "blockquote", -1, level)
	case *ast.List:
		typ, tag := "bullet_list", "ul"
		if n.IsOrdered() {
			typ, tag = "ordered_list", "ol"
		}
		open := c.push(typ+"_open", tag, 1, level)
		c.tokens[open].Markup = string(n.Marker)
		if n.IsOrdered() {
			c.tokens[open].Index = n.Start
			if n.Start != 1 {
				c.tokens[open].Attrs = []Attr{{Name: "start", Value: strconv.Itoa(n.Start)}}
			}
		}
		c.blocks(n, level+1)
		c.push(typ+"_close", tag, -1, level)
	case *ast.ListItem:
		c.push("list_item_open", "li", 1, level)
		c.blocks(n, level+1)
		c.push("list_item_close", "li", -1, level)
	case *ast.FencedCodeBlock:
		i := c.push("fence", "code", 0, level)
		if n.Info != nil {
			c.tokens[i].Info = string(n.Info.Segment.Value(c.src))
		}
		c.tokens[i].Content = c.lines(n.Lines())
	case *ast.CodeBlock:
		i := c.push("code_block", "code", 0, level)
		c.tokens[i].Content = c.lines(n.Lines())
	case *ast.ThematicBreak:
		c.push("hr", "hr", 0, level)
	case *ast.HTMLBlock:
		i := c.push("html_block", "", 0, level)
		content := c.lines(n.Lines())
		if n.HasClosure() {
			content += string(n.ClosureLine.Value(c.src))
		}
		c.tokens[i].Content = content
	case *east.Table:
		c.table(n, level)
	case *east.FootnoteList:
		c.push("footnote_block_open", "", 1, level)
		c.blocks(n, level+1)
		c.push("footnote_block_close", "", -1, level)
	case *east.Footnote:
		c.env.FootnoteLabels[n.Index] = string(n.Ref)
		open := c.push("footnote_open", "", 1, level)
		c.tokens[open].Index = n.Index
		c.blocks(n, level+1)
		closing := c.push("footnote_close", "", -1, level)
		c.tokens[closing].Index = n.Index
	default:
		c.blocks(n, level)
	}
}

func (c *converter) table(n *east.Table, level int) {
	c.push("table_open", "table", 1, level)
	inBody := false
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		switch row.(type) {
		case *east.TableHeader:
			c.push("thead_open", "thead", 1, level+1)
			c.tableRow(row, "th", level+2)
			c.push("thead_close", "thead", -1, level+1)
		case *east.TableRow:
			if !inBody {
				c.push("tbody_open", "tbody", 1, level+1)
				inBody = true
			}
			c.tableRow(row, "td", level+2)
		}
	}
	if inBody {
		c.push("tbody_close", "tbody", -1, level+1)
	}
	c.push("table_close", "table", -1, level)
}

func (c *converter) tableRow(row ast.Node, cellTag string, level int) {
	c.push("tr_open", "tr", 1, level)
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		open := c.push(cellTag+"_open", cellTag, 1, level+1)
		if tc, ok := cell.(*east.TableCell); ok && tc.Alignment != east.AlignNone {
			c.tokens[open].Attrs = []Attr{{Name: "style", Value: "text-align:" + tc.Alignment.String()}}
		}
		c.inline(cell, level+2)
		c.push(cellTag+"_close", cellTag, -1, level+1)
	}
	c.push("tr_close", "tr", -1, level)
}

func (c *converter) lines(lines *text.Segments) string {
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.src))
	}
	return b.String()
}

// inline appends an inline token holding n's converted children. Content is
// the raw source of the block, or the plain text of its children when the
// block keeps no source lines.
func (c *converter) inline(n ast.Node, level int) {
	ic := inlineConverter{src: c.src, level: level}
	ic.children(n)
	ic.flush()
	content := strings.TrimRight(c.lines(n.Lines()), "\n")
	if content == "" {
		content = plainContent(ic.tokens)
	}
	c.tokens = append(c.tokens, Token{
		Type:     typeInline,
		Level:    level,
		Content:  content,
		Children: ic.tokens,
	})
}

func plainContent(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		switch t.Type {
		case typeText, "code_inline":
			b.WriteString(t.Content)
		case typeSoftBreak, typeHardBreak:
			b.WriteByte('\n')
		}
	}
	return b.String()
}

type inlineConverter struct {
	src     []byte
	level   int
	tokens  []Token
	pending []byte
}

func (ic *inlineConverter) flush() {
	if len(ic.pending) == 0 {
		return
	}
	ic.tokens = append(ic.tokens, Token{Type: typeText, Content: string(ic.pending), Level: ic.level})
	ic.pending = ic.pending[:0]
}

func (ic *inlineConverter) emit(tok Token) {
	ic.flush()
	if tok.Nesting == -1 {
		ic.level--
	}
	tok.Level = ic.level
	if tok.Nesting == 1 {
		ic.level++
	}
	ic.tokens = append(ic.tokens, tok)
}

func (ic *inlineConverter) children(n ast.Node) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		ic.node(child)
	}
}

func (ic *inlineConverter) wrapped(typ, tag string, attrs []Attr, n ast.Node) {
	ic.emit(Token{Type: typ + suffixOpen, Tag: tag, Nesting: 1, Attrs: attrs})
	ic.children(n)
	ic.emit(Token{Type: typ + suffixClose, Tag: tag, Nesting: -1})
}

func (ic *inlineConverter) node(node ast.Node) {
	switch n := node.(type) {
	case *ast.Text:
		v := n.Segment.Value(ic.src)
		if !n.IsRaw() {
			v = resolveText(v)
		}
		ic.pending = append(ic.pending, v...)
		if n.HardLineBreak() || n.SoftLineBreak() {
			ic.pending = bytes.TrimRight(ic.pending, " ")
		}
		switch {
		case n.HardLineBreak():
			ic.emit(Token{Type: typeHardBreak, Tag: "br"})
		case n.SoftLineBreak():
			ic.emit(Token{Type: typeSoftBreak, Tag: "br"})
		}
	case *ast.String:
		v := n.Value
		if !n.IsRaw() {
			v = resolveText(v)
		}
		ic.pending = append(ic.pending, v...)
	case *ast.Emphasis:
		if n.Level == 2 {
			ic.wrapped("strong", "strong", nil, n)
		} else {
			ic.wrapped("em", "em", nil, n)
		}
	case *east.Strikethrough:
		ic.wrapped("s", "s", nil, n)
	case *ast.Link:
		attrs := []Attr{{Name: "href", Value: string(n.Destination)}}
		if len(n.Title) > 0 {
			attrs = append(attrs, Attr{Name: "title", Value: string(n.Title)})
		}
		ic.wrapped("link", "a", attrs, n)
	case *ast.AutoLink:
		url := n.URL(ic.src)
		if n.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(bytes.ToLower(url), []byte("mailto:")) {
			url = append([]byte("mailto:"), url...)
		}
		ic.emit(Token{Type: "link_open", Tag: "a", Nesting: 1, Attrs: []Attr{{Name: "href", Value: string(url)}}, Markup: "autolink"})
		ic.pending = append(ic.pending, n.Label(ic.src)...)
		ic.emit(Token{Type: "link_close", Tag: "a", Nesting: -1, Markup: "autolink"})
	case *ast.Image:
		attrs := []Attr{
			{Name: "src", Value: string(n.Destination)},
			{Name: "alt", Value: ""},
		}
		if len(n.Title) > 0 {
			attrs = append(attrs, Attr{Name: "title", Value: string(n.Title)})
		}
		ic.emit(Token{Type: "image", Tag: "img", Attrs: attrs, Content: ic.plainText(n)})
	case *ast.CodeSpan:
		ic.emit(Token{Type: "code_inline", Tag: "code", Content: ic.codeText(n), Markup: "`"})
	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(ic.src))
		}
		ic.emit(Token{Type: "html_inline", Content: b.String()})
	case *east.FootnoteLink:
		ic.emit(Token{
			Type:  typeFootnote,
			Index: n.Index,
			Attrs: []Attr{
				{Name: "href", Value: "#fn" + strconv.Itoa(n.Index)},
				{Name: "id", Value: footnoteRefID(n.Index, n.RefIndex)},
			},
		})
	case *east.FootnoteBacklink:
		ic.emit(Token{
			Type:  "footnote_anchor",
			Index: n.Index,
			Attrs: []Attr{{Name: "href", Value: "#" + footnoteRefID(n.Index, n.RefIndex)}},
		})
	default:
		ic.children(n)
	}
}

func footnoteRefID(index, refIndex int) string {
	id := "fnref" + strconv.Itoa(index)
	if refIndex > 0 {
		id += ":" + strconv.Itoa(refIndex)
	}
	return id
}

// plainText flattens the text below n, as used for image alt text.
func (ic *inlineConverter) plainText(n ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := node.(type) {
		case *ast.Text:
			b.Write(resolveText(t.Segment.Value(ic.src)))
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func (ic *inlineConverter) codeText(n ast.Node) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		var v []byte
		switch t := child.(type) {
		case *ast.Text:
			v = t.Segment.Value(ic.src)
		case *ast.String:
			v = t.Value
		default:
			continue
		}
		if bytes.HasSuffix(v, []byte("\n")) {
			b.Write(v[:len(v)-1])
			b.WriteByte(' ')
			continue
		}
		b.Write(v)
	}
	return b.String()
}

// resolveText applies backslash escapes and character references.
func resolveText(v []byte) []byte {
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	return util.ResolveEntityNames(v)
}
