package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/cjkwrap"
)

// goldenFormats are rendered for every testdata/*.md file. Terminal output
// is rendered without styling at a fixed width.
var goldenFormats = []cjkwrap.Format{cjkwrap.FormatHTML, cjkwrap.FormatText, cjkwrap.FormatTokens}

const goldenWidth = 60

func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no markdown files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		for _, format := range goldenFormats {
			var out bytes.Buffer
			err := cjkwrap.Render(cjkwrap.RenderRequest{
				Reader: bytes.NewReader(src),
				Writer: &out,
				Format: format,
				Width:  goldenWidth,
			})
			if err != nil {
				fatalf("render %s as %s: %v", path, format, err)
			}
			goldenPath := goldenPath(root, path, format)
			if err := os.WriteFile(goldenPath, out.Bytes(), 0o644); err != nil {
				fatalf("write %s: %v", goldenPath, err)
			}
			fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
		}
	}
}

// goldenPath maps testdata/a/b.md to testdata/a__b.<format>.golden.
func goldenPath(root string, mdPath string, format cjkwrap.Format) string {
	rel, err := filepath.Rel(root, mdPath)
	if err != nil {
		rel = mdPath
	}
	name := strings.TrimSuffix(rel, ".md")
	name = strings.ReplaceAll(filepath.ToSlash(name), "/", "__")
	return filepath.Join(root, fmt.Sprintf("%s.%s.golden", name, format))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
