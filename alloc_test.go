package cjkwrap

import (
	"bytes"
	"io"
	"os"
	"testing"
)

func TestRenderAllocations(t *testing.T) {
	src, err := os.ReadFile("testdata/mixed.md")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	allocs := testing.AllocsPerRun(50, func() {
		_ = Render(RenderRequest{
			Reader: bytes.NewReader(src),
			Writer: io.Discard,
			Format: FormatHTML,
		})
	})
	if allocs > 20000 {
		t.Fatalf("too many allocations per Render: got %.2f", allocs)
	}
}
