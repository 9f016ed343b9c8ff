// Package cjkwrap marks the Latin runs inside CJK Markdown so they can be
// spaced and styled apart from the surrounding ideographs.
//
// A document is parsed into a flat, markdown-it shaped token list. Every
// inline block that mixes Latin letters and ideographs has its text split
// into Latin and non-Latin fragments; each Latin run is then grown over
// neighbouring markup, shrunk until its markers pair up, and surrounded by
// en_open and en_close tokens. The en_open token records whether the run
// needs spacing before and after it, which the renderers turn into span
// classes (HTML) or literal spaces (terminal).
//
// Example:
//
//	err := cjkwrap.Render(cjkwrap.RenderRequest{
//		Reader: strings.NewReader("你好world你好\n"),
//		Writer: os.Stdout,
//		Format: cjkwrap.FormatHTML,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	// <p>你好<span class="before after">world</span>你好</p>
//
// Wrap, WrapInline and the renderers are exported for callers that build or
// inspect token lists themselves.
package cjkwrap
