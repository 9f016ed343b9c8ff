package cjkwrap

import (
	"bytes"
	"strings"
	"testing"
)

func renderHTMLString(t *testing.T, src string, opts ...Option) string {
	t.Helper()
	doc := Parse([]byte(src))
	Wrap(doc, opts...)
	var out bytes.Buffer
	if err := RenderHTML(&out, doc, opts...); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	return out.String()
}

func TestRenderHTMLWraps(t *testing.T) {
	cases := []struct {
		name string
		src  string
		opts []Option
		want string
	}{
		{
			name: "latin between ideographs",
			src:  "你好world你好\n",
			want: "<p>你好<span class=\"before after\">world</span>你好</p>\n",
		},
		{
			name: "punctuation before",
			src:  "你好，world\n",
			want: "<p>你好，<span>world</span></p>\n",
		},
		{
			name: "emphasis inside wrap",
			src:  "*world*你好\n",
			want: "<p><span class=\"after\"><em>world</em></span>你好</p>\n",
		},
		{
			name: "spaces are replaced by the wrap",
			src:  "中文 English 中文\n",
			want: "<p>中文<span class=\"before after\">English</span>中文</p>\n",
		},
		{
			name: "full-width brackets",
			src:  "中文（English）中文\n",
			want: "<p>中文（<span>English</span>）中文</p>\n",
		},
		{
			name: "lang and custom classes",
			src:  "你好world你好\n",
			opts: []Option{WithLang("en"), WithBeforeClass("l"), WithAfterClass("")},
			want: "<p>你好<span lang=\"en\" class=\"l\">world</span>你好</p>\n",
		},
		{
			name: "text is escaped",
			src:  "中文a < b\n",
			want: "<p>中文<span class=\"before\">a &lt; b</span></p>\n",
		},
		{
			name: "pure Latin",
			src:  "hello world\n",
			want: "<p>hello world</p>\n",
		},
		{
			name: "heading and tight list",
			src:  "# 标题Title\n\n- 一a\n- 二\n",
			want: "<h1>标题<span class=\"before\">Title</span></h1>\n<ul>\n<li>一<span class=\"before\">a</span></li>\n<li>二</li>\n</ul>\n",
		},
		{
			name: "fenced code is not wrapped",
			src:  "```go\nfmt中文\n```\n",
			want: "<pre><code class=\"language-go\">fmt中文\n</code></pre>\n",
		},
		{
			name: "link inside wrap",
			src:  "见[the docs](https://example.com)。\n",
			want: "<p>见<span class=\"before\"><a href=\"https://example.com\">the docs</a></span>。</p>\n",
		},
		{
			name: "hard break",
			src:  "中文  \nabc中文\n",
			want: "<p>中文<br>\n<span class=\"after\">abc</span>中文</p>\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := renderHTMLString(t, tc.src, tc.opts...); got != tc.want {
				t.Fatalf("html:\n%q\nwant\n%q", got, tc.want)
			}
		})
	}
}

func TestRenderHTMLTable(t *testing.T) {
	got := renderHTMLString(t, "| 名称 | Name |\n| --- | :-: |\n| 苹果 | 一apple |\n")
	want := "<table>\n<thead>\n<tr>\n<th>名称</th>\n<th style=\"text-align:center\">Name</th>\n</tr>\n</thead>\n" +
		"<tbody>\n<tr>\n<td>苹果</td>\n<td style=\"text-align:center\">一<span class=\"before\">apple</span></td>\n</tr>\n</tbody>\n</table>\n"
	if got != want {
		t.Fatalf("html:\n%q\nwant\n%q", got, want)
	}
}

func TestRenderHTMLFootnotes(t *testing.T) {
	got := renderHTMLString(t, "正文text[^1]\n\n[^1]: 注释\n")
	for _, want := range []string{
		"<p>正文<span class=\"before\">text</span><sup class=\"footnote-ref\"><a href=\"#fn1\"",
		"<section class=\"footnotes\">",
		"<li id=\"fn1\" class=\"footnote-item\"><p>注释",
		"class=\"footnote-backref\">",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
}

func TestWrapClasses(t *testing.T) {
	o := DefaultOptions()
	cases := []struct {
		before, after bool
		want          string
	}{
		{true, true, "before after"},
		{true, false, "before"},
		{false, true, "after"},
		{false, false, ""},
	}
	for _, tc := range cases {
		tok := newWrapOpen(tc.before, tc.after)
		if got := wrapClasses(&tok, o); got != tc.want {
			t.Fatalf("wrapClasses(%v, %v) = %q, want %q", tc.before, tc.after, got, tc.want)
		}
	}
}

const untrustedHTMLSource = "中文[click](javascript:alert(1))\n\n<script>alert(2)</script>\n\n段落<img src=x onerror=alert(3)>\n\n![图](vbscript:msgbox)\n"

func TestRenderHTMLOmitsRawHTMLByDefault(t *testing.T) {
	got := renderHTMLString(t, untrustedHTMLSource)
	for _, bad := range []string{"javascript:", "vbscript:", "<script>", "onerror", "<img src=x"} {
		if strings.Contains(got, bad) {
			t.Fatalf("unexpected %q in:\n%s", bad, got)
		}
	}
	for _, want := range []string{
		`<a href="">click</a>`,
		rawHTMLOmitted + "\n",
		"<p>段落" + rawHTMLOmitted + "</p>",
		`<img src="" alt="图">`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
}

func TestRenderHTMLKeepsSafeURLs(t *testing.T) {
	got := renderHTMLString(t, "中文[link](https://example.com/a)和![图](data:image/png;base64,AAAA)\n")
	for _, want := range []string{`href="https://example.com/a"`, `src="data:image/png;base64,AAAA"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
}

func TestRenderHTMLUnsafe(t *testing.T) {
	got := renderHTMLString(t, untrustedHTMLSource, WithUnsafe(true))
	for _, want := range []string{
		`href="javascript:alert(1)"`,
		"<script>alert(2)</script>",
		"<img src=x onerror=alert(3)>",
		`src="vbscript:msgbox"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, rawHTMLOmitted) {
		t.Fatalf("raw HTML omitted in unsafe mode:\n%s", got)
	}
}
