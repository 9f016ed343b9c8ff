package cjkwrap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FrontMatter is the metadata block split off the top of a document.
type FrontMatter struct {
	// Format is "yaml", "toml" or "json".
	Format string
	Raw    []byte
}

// OptionOverrides is the cjkwrap section of front matter or a config file.
// Nil fields leave the corresponding option untouched.
type OptionOverrides struct {
	Before  *string `yaml:"before" toml:"before" json:"before"`
	After   *string `yaml:"after" toml:"after" json:"after"`
	Lang    *string `yaml:"lang" toml:"lang" json:"lang"`
	WrapAll *bool   `yaml:"wrap_all" toml:"wrap_all" json:"wrap_all"`
}

// Options converts the overrides to functional options.
func (o *OptionOverrides) Options() []Option {
	if o == nil {
		return nil
	}
	var opts []Option
	if o.Before != nil {
		opts = append(opts, WithBeforeClass(*o.Before))
	}
	if o.After != nil {
		opts = append(opts, WithAfterClass(*o.After))
	}
	if o.Lang != nil {
		opts = append(opts, WithLang(*o.Lang))
	}
	if o.WrapAll != nil {
		opts = append(opts, WithWrapAll(*o.WrapAll))
	}
	return opts
}

type frontMatterDoc struct {
	CJKWrap *OptionOverrides `yaml:"cjkwrap" toml:"cjkwrap" json:"cjkwrap"`
}

// Overrides decodes the cjkwrap section of the front matter, if any.
func (fm *FrontMatter) Overrides() (*OptionOverrides, error) {
	var doc frontMatterDoc
	var err error
	switch fm.Format {
	case "yaml":
		err = yaml.Unmarshal(fm.Raw, &doc)
	case "toml":
		err = toml.Unmarshal(fm.Raw, &doc)
	case "json":
		err = json.Unmarshal(fm.Raw, &doc)
	default:
		return nil, fmt.Errorf("front matter: unknown format %q", fm.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("front matter: decode %s: %w", fm.Format, err)
	}
	return doc.CJKWrap, nil
}

// SplitFrontMatter separates a leading front matter block from the Markdown
// body. Only a block at the very start counts, its second line must look
// like metadata, and it must be closed; otherwise src is returned unchanged
// with a nil FrontMatter.
func SplitFrontMatter(src []byte) (*FrontMatter, []byte) {
	openLine, openNext, ok := nextLine(src, 0)
	if !ok {
		return nil, src
	}
	delim, format, isFrontMatter := parseOpeningFrontMatterDelimiter(openLine)
	if !isFrontMatter {
		return nil, src
	}
	secondLine, _, ok := nextLine(src, openNext)
	if !ok || !frontMatterMetadataLikely(secondLine) {
		return nil, src
	}
	closeStart, closeNext, found := findClosingFrontMatterDelimiter(src, openNext, delim)
	if !found {
		return nil, src
	}
	return &FrontMatter{Format: format, Raw: src[openNext:closeStart]}, src[closeNext:]
}

func nextLine(src []byte, start int) ([]byte, int, bool) {
	if start >= len(src) {
		return nil, 0, false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src), true
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1, true
}

func parseOpeningFrontMatterDelimiter(line []byte) ([]byte, string, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), "yaml", true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), "toml", true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), "json", true
	default:
		return nil, "", false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

// findClosingFrontMatterDelimiter returns where the closing delimiter line
// starts and where the line after it starts.
func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, int, bool) {
	for idx := start; idx < len(src); {
		line, next, ok := nextLine(src, idx)
		if !ok {
			return 0, 0, false
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return idx, next, true
		}
		idx = next
	}
	return 0, 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
