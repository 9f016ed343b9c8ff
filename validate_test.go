package cjkwrap

import (
	"bytes"
	"errors"
	"testing"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputRejectsControlHeavyInput(t *testing.T) {
	data := append(bytes.Repeat([]byte("a"), 62), 0x01, 0x02)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputAcceptsCJKText(t *testing.T) {
	data := []byte("# 标题\n\n你好world你好\r\n\t中文 text\n")
	if err := ValidateInput(data); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestRenderRejectsBinaryInput(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader: bytes.NewReader([]byte{0x00, 0x01, 0x02, 0x03, 0x04}),
		Writer: &out,
		Format: FormatHTML,
	})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected empty output, got %q", out.String())
	}
}
