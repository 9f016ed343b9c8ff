package cjkwrap

import "testing"

func TestThemeByName(t *testing.T) {
	expected := []string{
		"default",
		"gruvbox",
		"dracula",
		"nord",
		"solarized-dark",
		"solarized-light",
		"github-light",
		"github-dark",
	}
	for _, name := range expected {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
	}
	if _, ok := ThemeByName("  Nord "); !ok {
		t.Fatalf("expected theme lookup to ignore case and spaces")
	}
	if _, ok := ThemeByName("missing"); ok {
		t.Fatalf("unexpected theme for unknown name")
	}

	available := AvailableThemes()
	present := make(map[string]struct{}, len(available))
	for _, name := range available {
		present[name] = struct{}{}
	}
	for _, name := range expected {
		if _, ok := present[name]; !ok {
			t.Fatalf("expected theme %q in available list", name)
		}
	}
}

func TestBuiltinThemesStyleLatinRuns(t *testing.T) {
	for _, name := range AvailableThemes() {
		th, _ := ThemeByName(name)
		if th.Styles().Latin.Prefix == "" {
			t.Fatalf("theme %q has no Latin style", name)
		}
	}
}

func TestBoringThemeHasNoPrefixes(t *testing.T) {
	styles := BoringTheme().Styles()
	if styles.Latin.Prefix != "" || styles.Text.Prefix != "" || styles.Strong.Prefix != "" {
		t.Fatalf("expected empty prefixes, got %+v", styles)
	}
}
