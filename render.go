package cjkwrap

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownFormat reports an output format Render does not know.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects the output of Render.
type Format string

const (
	// FormatHTML renders HTML with span-wrapped Latin runs.
	FormatHTML Format = "html"
	// FormatANSI renders styled terminal text.
	FormatANSI Format = "ansi"
	// FormatText renders terminal text without styling.
	FormatText Format = "text"
	// FormatTokens dumps the wrapped token stream.
	FormatTokens Format = "tokens"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatHTML, FormatANSI, FormatText, FormatTokens}
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader io.Reader
	Writer io.Writer
	// Format defaults to FormatHTML.
	Format Format
	// Width, Theme and OSC8 apply to the terminal formats.
	Width   int
	Theme   Theme
	OSC8    bool
	Options []Option
}

// Render reads Markdown, wraps the Latin runs of its CJK blocks and writes
// the result in the requested format. Options set in the document's front
// matter override req.Options.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	format := FormatHTML
	if req.Format != "" {
		f, err := ParseFormat(string(req.Format))
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		format = f
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	opts := req.Options
	fm, body := SplitFrontMatter(src)
	if fm != nil {
		overrides, err := fm.Overrides()
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		opts = append(append([]Option(nil), opts...), overrides.Options()...)
	}
	o, err := NewOptions(opts...).Normalize()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	doc := Parse(body)
	wrapDocument(doc, o)

	switch format {
	case FormatHTML:
		err = renderHTML(req.Writer, doc, o)
	case FormatANSI:
		err = RenderTerminal(req.Writer, doc, TerminalConfig{Width: req.Width, Theme: req.Theme, OSC8: req.OSC8})
	case FormatText:
		err = RenderTerminal(req.Writer, doc, TerminalConfig{Width: req.Width, Theme: BoringTheme()})
	case FormatTokens:
		err = DumpTokens(req.Writer, doc)
	}
	if err != nil {
		return fmt.Errorf("render: write %s: %w", format, err)
	}
	return nil
}
