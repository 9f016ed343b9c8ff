package cjkwrap

import (
	"strings"
	"testing"
)

func blockTypes(doc *Document) string {
	types := make([]string, 0, len(doc.Tokens))
	for _, tok := range doc.Tokens {
		types = append(types, tok.Type)
	}
	return strings.Join(types, " ")
}

func inlineTypes(tokens []Token) string {
	types := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	return strings.Join(types, " ")
}

func TestParseBlocks(t *testing.T) {
	doc := Parse([]byte("# 标题\n\n段落 *em* text\n\n> 引用\n\n---\n"))
	want := "heading_open inline heading_close paragraph_open inline paragraph_close " +
		"blockquote_open paragraph_open inline paragraph_close blockquote_close hr"
	if got := blockTypes(doc); got != want {
		t.Fatalf("block types:\n%s\nwant\n%s", got, want)
	}
	if doc.Tokens[0].Tag != "h1" || doc.Tokens[0].Markup != "#" {
		t.Fatalf("unexpected heading token %+v", doc.Tokens[0])
	}
	if doc.Tokens[1].Content != "标题" {
		t.Fatalf("unexpected heading content %q", doc.Tokens[1].Content)
	}
	if doc.Tokens[4].Content != "段落 *em* text" {
		t.Fatalf("inline content should be the raw source, got %q", doc.Tokens[4].Content)
	}
}

func TestParseInlineMarkers(t *testing.T) {
	doc := Parse([]byte("a *b* **c** ~~d~~ `e` [f](u \"t\") ![g](v)\n"))
	children := inlineChildren(t, doc, 0)
	want := "text em_open text em_close text strong_open text strong_close text " +
		"s_open text s_close text code_inline text link_open text link_close text image"
	if got := inlineTypes(children); got != want {
		t.Fatalf("inline types:\n%s\nwant\n%s", got, want)
	}
	for _, tok := range children {
		switch tok.Type {
		case "link_open":
			if href, _ := tok.Attr("href"); href != "u" {
				t.Fatalf("unexpected href %q", href)
			}
			if title, _ := tok.Attr("title"); title != "t" {
				t.Fatalf("unexpected title %q", title)
			}
		case "image":
			if src, _ := tok.Attr("src"); src != "v" || tok.Content != "g" {
				t.Fatalf("unexpected image %+v", tok)
			}
		case "code_inline":
			if tok.Content != "e" {
				t.Fatalf("unexpected code %q", tok.Content)
			}
		}
	}
	if children[1].Level != 1 || children[2].Level != 2 || children[3].Level != 1 {
		t.Fatalf("unexpected inline levels %d %d %d", children[1].Level, children[2].Level, children[3].Level)
	}
}

func TestParseMergesTextAndResolvesEscapes(t *testing.T) {
	doc := Parse([]byte("a\\*b &amp; c_d 中文\n"))
	children := inlineChildren(t, doc, 0)
	if len(children) != 1 {
		t.Fatalf("expected one merged text token, got %q", inlineTypes(children))
	}
	if children[0].Content != "a*b & c_d 中文" {
		t.Fatalf("unexpected text %q", children[0].Content)
	}
}

func TestParseBreaks(t *testing.T) {
	doc := Parse([]byte("一\n二  \n三\n"))
	children := inlineChildren(t, doc, 0)
	if got := inlineTypes(children); got != "text softbreak text hardbreak text" {
		t.Fatalf("unexpected inline types %q", got)
	}
	if children[0].Content != "一" || children[2].Content != "二" || children[4].Content != "三" {
		t.Fatalf("unexpected break text %q %q %q", children[0].Content, children[2].Content, children[4].Content)
	}
}

func TestParseTightListHidesParagraphs(t *testing.T) {
	doc := Parse([]byte("- 一\n- 二\n"))
	want := "bullet_list_open list_item_open paragraph_open inline paragraph_close list_item_close " +
		"list_item_open paragraph_open inline paragraph_close list_item_close bullet_list_close"
	if got := blockTypes(doc); got != want {
		t.Fatalf("block types:\n%s\nwant\n%s", got, want)
	}
	if !doc.Tokens[2].Hidden || !doc.Tokens[4].Hidden {
		t.Fatalf("expected hidden paragraph tokens in a tight list")
	}
}

func TestParseOrderedListStart(t *testing.T) {
	doc := Parse([]byte("3. 三\n4. 四\n"))
	open := doc.Tokens[0]
	if open.Type != "ordered_list_open" || open.Index != 3 {
		t.Fatalf("unexpected list token %+v", open)
	}
	if start, ok := open.Attr("start"); !ok || start != "3" {
		t.Fatalf("expected start attribute, got %q", start)
	}
}

func TestParseCodeBlocks(t *testing.T) {
	doc := Parse([]byte("```go\nfmt中文\n```\n\n    indented\n"))
	if got := blockTypes(doc); got != "fence code_block" {
		t.Fatalf("unexpected block types %q", got)
	}
	if doc.Tokens[0].Info != "go" || doc.Tokens[0].Content != "fmt中文\n" {
		t.Fatalf("unexpected fence %+v", doc.Tokens[0])
	}
	if doc.Tokens[1].Content != "indented\n" {
		t.Fatalf("unexpected code block %q", doc.Tokens[1].Content)
	}
}

func TestParseTable(t *testing.T) {
	doc := Parse([]byte("| a | b |\n| - | :-: |\n| c | d |\n"))
	want := "table_open thead_open tr_open th_open inline th_close th_open inline th_close tr_close thead_close " +
		"tbody_open tr_open td_open inline td_close td_open inline td_close tr_close tbody_close table_close"
	if got := blockTypes(doc); got != want {
		t.Fatalf("block types:\n%s\nwant\n%s", got, want)
	}
	if style, _ := doc.Tokens[6].Attr("style"); style != "text-align:center" {
		t.Fatalf("expected centered header cell, got %q", style)
	}
}

func TestParseFootnotes(t *testing.T) {
	doc := Parse([]byte("正文[^note]\n\n[^note]: 注释\n"))
	children := inlineChildren(t, doc, 0)
	if got := inlineTypes(children); got != "text footnote_ref" {
		t.Fatalf("unexpected inline types %q", got)
	}
	if children[1].Index != 1 {
		t.Fatalf("unexpected footnote index %d", children[1].Index)
	}
	if doc.Env.FootnoteLabels[1] != "note" {
		t.Fatalf("unexpected footnote labels %v", doc.Env.FootnoteLabels)
	}
	if !strings.Contains(blockTypes(doc), "footnote_block_open footnote_open") {
		t.Fatalf("expected footnote block, got %q", blockTypes(doc))
	}
}
