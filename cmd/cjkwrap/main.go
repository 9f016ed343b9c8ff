package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/cjkwrap"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultFormat    = "html"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/cjkwrap")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// settings is the resolved command line after merging the config file.
type settings struct {
	format  cjkwrap.Format
	theme   cjkwrap.Theme
	width   int
	osc8    bool
	output  string
	inputs  []string
	options []cjkwrap.Option
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		formatName  string
		beforeClass string
		afterClass  string
		lang        string
		wrapAll     bool
		unsafe      bool
		themeName   string
		widthFlag   int
		osc8Flag    string
		listThemes  bool
		outPath     string
		configPath  string
		watchMode   bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("cjkwrap", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&formatName, "format", "f", defaultFormat, "Output format: html|ansi|text|tokens")
	flags.StringVar(&beforeClass, "before", "before", "Class for Latin runs that need leading space (empty drops it)")
	flags.StringVar(&afterClass, "after", "after", "Class for Latin runs that need trailing space (empty drops it)")
	flags.StringVar(&lang, "lang", "", "BCP 47 lang attribute for wrapped runs")
	flags.BoolVar(&wrapAll, "wrap-all", false, "Also wrap Latin runs in blocks without CJK ideographs")
	flags.BoolVar(&unsafe, "unsafe", false, "Pass raw HTML and dangerous link targets through to html output")
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name for ansi output")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&osc8Flag, "osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVarP(&configPath, "config", "c", "", "Config file (.toml, .yaml, .yml or .json)")
	flags.BoolVar(&watchMode, "watch", false, "Re-render whenever an input file changes")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: cjkwrap [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if listThemes {
		printThemes(stdout)
		return 0
	}

	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			fmt.Fprintf(stderr, "config: %v\n", err)
			return 2
		}
		cfg.apply(flags, &formatName, &themeName, &widthFlag, &osc8Flag)
		if !flags.Changed("before") && cfg.CJKWrap.Before != nil {
			beforeClass = *cfg.CJKWrap.Before
		}
		if !flags.Changed("after") && cfg.CJKWrap.After != nil {
			afterClass = *cfg.CJKWrap.After
		}
		if !flags.Changed("lang") && cfg.CJKWrap.Lang != nil {
			lang = *cfg.CJKWrap.Lang
		}
		if !flags.Changed("wrap-all") && cfg.CJKWrap.WrapAll != nil {
			wrapAll = *cfg.CJKWrap.WrapAll
		}
	}

	format, err := cjkwrap.ParseFormat(formatName)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --format: %v\n", err)
		return 2
	}
	theme, ok := cjkwrap.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", themeName)
		printThemes(stderr)
		return 2
	}
	osc8, err := resolveOSC8(osc8Flag)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --osc8 %q: %v\n", osc8Flag, err)
		return 2
	}
	options := []cjkwrap.Option{
		cjkwrap.WithBeforeClass(beforeClass),
		cjkwrap.WithAfterClass(afterClass),
		cjkwrap.WithLang(lang),
		cjkwrap.WithWrapAll(wrapAll),
		cjkwrap.WithUnsafe(unsafe),
	}
	if _, err := cjkwrap.NewOptions(options...).Normalize(); err != nil {
		fmt.Fprintf(stderr, "invalid --lang: %v\n", err)
		return 2
	}

	s := settings{
		format:  format,
		theme:   theme,
		width:   resolveWidth(widthFlag),
		osc8:    osc8,
		output:  outPath,
		inputs:  flags.Args(),
		options: options,
	}

	if watchMode {
		paths, err := watchPaths(s.inputs)
		if err != nil {
			fmt.Fprintf(stderr, "watch: %v\n", err)
			return 2
		}
		if err := watch(ctx, paths, stderr, func() error {
			return s.render(stdin, stdout)
		}); err != nil {
			fmt.Fprintf(stderr, "watch: %v\n", err)
			return 1
		}
		return 0
	}

	if err := s.render(stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

// render runs the whole pipeline once over the configured inputs.
func (s settings) render(stdin io.Reader, stdout io.Writer) error {
	reader, closer, err := openInputs(s.inputs, stdin)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	writer, closeOut, err := resolveOutput(s.output, stdout)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	return cjkwrap.Render(cjkwrap.RenderRequest{
		Reader:  reader,
		Writer:  writer,
		Format:  s.format,
		Width:   s.width,
		Theme:   s.theme,
		OSC8:    s.osc8,
		Options: s.options,
	})
}

func printThemes(w io.Writer) {
	names := cjkwrap.AvailableThemes()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return cjkwrap.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}
