// Package palette holds the ANSI colour sets behind the built-in themes.
package palette

import "strconv"

// SGR attribute sequences.
const (
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Reset     = "\x1b[0m"
)

// Palette assigns a foreground colour sequence to every semantic role.
type Palette struct {
	Text           string
	H1             string
	H2             string
	H3             string
	H4             string
	H5             string
	H6             string
	Emphasis       string
	Strong         string
	EmphasisStrong string
	CodeInline     string
	CodeBlock      string
	Quote          string
	ListMarker     string
	LinkText       string
	LinkURL        string
	ThematicBreak  string
	Latin          string
}

// RGB returns a 24-bit foreground colour sequence for a 0xRRGGBB value.
func RGB(hex uint32) string {
	r := (hex >> 16) & 0xff
	g := (hex >> 8) & 0xff
	b := hex & 0xff
	return "\x1b[38;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

var (
	PaletteDefault = Palette{
		Text:           "",
		H1:             RGB(0xff6ac1),
		H2:             RGB(0x57c7ff),
		H3:             RGB(0x5af78e),
		H4:             RGB(0xf3f99d),
		H5:             RGB(0x9aedfe),
		H6:             RGB(0xb0b0b0),
		Emphasis:       RGB(0xf3f99d),
		Strong:         RGB(0xff9f43),
		EmphasisStrong: RGB(0xff6ac1),
		CodeInline:     RGB(0x5af78e),
		CodeBlock:      RGB(0x9aedfe),
		Quote:          RGB(0x9a9a9a),
		ListMarker:     RGB(0x57c7ff),
		LinkText:       RGB(0x57c7ff),
		LinkURL:        RGB(0x7a7a7a),
		ThematicBreak:  RGB(0x686868),
		Latin:          RGB(0xe0e0ff),
	}

	PaletteGruvbox = Palette{
		Text:           RGB(0xebdbb2),
		H1:             RGB(0xfb4934),
		H2:             RGB(0xfabd2f),
		H3:             RGB(0xb8bb26),
		H4:             RGB(0x83a598),
		H5:             RGB(0xd3869b),
		H6:             RGB(0x8ec07c),
		Emphasis:       RGB(0xd3869b),
		Strong:         RGB(0xfe8019),
		EmphasisStrong: RGB(0xfb4934),
		CodeInline:     RGB(0xb8bb26),
		CodeBlock:      RGB(0x8ec07c),
		Quote:          RGB(0xa89984),
		ListMarker:     RGB(0xfabd2f),
		LinkText:       RGB(0x83a598),
		LinkURL:        RGB(0x928374),
		ThematicBreak:  RGB(0x665c54),
		Latin:          RGB(0xfbf1c7),
	}

	PaletteDracula = Palette{
		Text:           RGB(0xf8f8f2),
		H1:             RGB(0xff79c6),
		H2:             RGB(0xbd93f9),
		H3:             RGB(0x8be9fd),
		H4:             RGB(0x50fa7b),
		H5:             RGB(0xf1fa8c),
		H6:             RGB(0xffb86c),
		Emphasis:       RGB(0xf1fa8c),
		Strong:         RGB(0xffb86c),
		EmphasisStrong: RGB(0xff79c6),
		CodeInline:     RGB(0x50fa7b),
		CodeBlock:      RGB(0x8be9fd),
		Quote:          RGB(0x6272a4),
		ListMarker:     RGB(0xbd93f9),
		LinkText:       RGB(0x8be9fd),
		LinkURL:        RGB(0x6272a4),
		ThematicBreak:  RGB(0x44475a),
		Latin:          RGB(0xbd93f9),
	}

	PaletteNord = Palette{
		Text:           RGB(0xd8dee9),
		H1:             RGB(0x88c0d0),
		H2:             RGB(0x81a1c1),
		H3:             RGB(0x5e81ac),
		H4:             RGB(0xa3be8c),
		H5:             RGB(0xebcb8b),
		H6:             RGB(0xb48ead),
		Emphasis:       RGB(0xebcb8b),
		Strong:         RGB(0xd08770),
		EmphasisStrong: RGB(0xbf616a),
		CodeInline:     RGB(0xa3be8c),
		CodeBlock:      RGB(0x8fbcbb),
		Quote:          RGB(0x4c566a),
		ListMarker:     RGB(0x81a1c1),
		LinkText:       RGB(0x88c0d0),
		LinkURL:        RGB(0x4c566a),
		ThematicBreak:  RGB(0x434c5e),
		Latin:          RGB(0xeceff4),
	}

	PaletteSolarizedDark = Palette{
		Text:           RGB(0x839496),
		H1:             RGB(0xcb4b16),
		H2:             RGB(0xb58900),
		H3:             RGB(0x859900),
		H4:             RGB(0x2aa198),
		H5:             RGB(0x268bd2),
		H6:             RGB(0x6c71c4),
		Emphasis:       RGB(0xb58900),
		Strong:         RGB(0xcb4b16),
		EmphasisStrong: RGB(0xdc322f),
		CodeInline:     RGB(0x859900),
		CodeBlock:      RGB(0x2aa198),
		Quote:          RGB(0x586e75),
		ListMarker:     RGB(0x268bd2),
		LinkText:       RGB(0x268bd2),
		LinkURL:        RGB(0x586e75),
		ThematicBreak:  RGB(0x073642),
		Latin:          RGB(0x93a1a1),
	}

	PaletteSolarizedLight = Palette{
		Text:           RGB(0x657b83),
		H1:             RGB(0xcb4b16),
		H2:             RGB(0xb58900),
		H3:             RGB(0x859900),
		H4:             RGB(0x2aa198),
		H5:             RGB(0x268bd2),
		H6:             RGB(0x6c71c4),
		Emphasis:       RGB(0xb58900),
		Strong:         RGB(0xcb4b16),
		EmphasisStrong: RGB(0xdc322f),
		CodeInline:     RGB(0x859900),
		CodeBlock:      RGB(0x2aa198),
		Quote:          RGB(0x93a1a1),
		ListMarker:     RGB(0x268bd2),
		LinkText:       RGB(0x268bd2),
		LinkURL:        RGB(0x93a1a1),
		ThematicBreak:  RGB(0xeee8d5),
		Latin:          RGB(0x586e75),
	}

	PaletteGithubLight = Palette{
		Text:           RGB(0x24292f),
		H1:             RGB(0x0550ae),
		H2:             RGB(0x0550ae),
		H3:             RGB(0x116329),
		H4:             RGB(0x953800),
		H5:             RGB(0x8250df),
		H6:             RGB(0x57606a),
		Emphasis:       RGB(0x8250df),
		Strong:         RGB(0x953800),
		EmphasisStrong: RGB(0xcf222e),
		CodeInline:     RGB(0x116329),
		CodeBlock:      RGB(0x0a3069),
		Quote:          RGB(0x57606a),
		ListMarker:     RGB(0x0550ae),
		LinkText:       RGB(0x0969da),
		LinkURL:        RGB(0x6e7781),
		ThematicBreak:  RGB(0xd0d7de),
		Latin:          RGB(0x0a3069),
	}

	PaletteGithubDark = Palette{
		Text:           RGB(0xc9d1d9),
		H1:             RGB(0x79c0ff),
		H2:             RGB(0x79c0ff),
		H3:             RGB(0x7ee787),
		H4:             RGB(0xffa657),
		H5:             RGB(0xd2a8ff),
		H6:             RGB(0x8b949e),
		Emphasis:       RGB(0xd2a8ff),
		Strong:         RGB(0xffa657),
		EmphasisStrong: RGB(0xff7b72),
		CodeInline:     RGB(0x7ee787),
		CodeBlock:      RGB(0xa5d6ff),
		Quote:          RGB(0x8b949e),
		ListMarker:     RGB(0x79c0ff),
		LinkText:       RGB(0x58a6ff),
		LinkURL:        RGB(0x8b949e),
		ThematicBreak:  RGB(0x30363d),
		Latin:          RGB(0xa5d6ff),
	}
)
