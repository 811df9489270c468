package dirdupes

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteRemainder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	lines := [][]byte{[]byte("abc"), []byte(""), []byte("defg"), []byte("h")}
	if err := writeRemainder(f, lines, 5); err != nil {
		t.Fatalf("writeRemainder failed: %v", err)
	}
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "fgh" {
		t.Errorf("Expected %q, got %q", "fgh", string(data))
	}
}

func TestWriteLines_SkipsEmptyBuffers(t *testing.T) {
	lines := [][]byte{[]byte("one\n"), nil, []byte("two\n")}

	buf := &bytes.Buffer{}
	if err := writeLines(buf, lines); err != nil {
		t.Fatalf("writeLines to buffer failed: %v", err)
	}
	if buf.String() != "one\ntwo\n" {
		t.Errorf("Unexpected buffer output %q", buf.String())
	}

	path := filepath.Join(t.TempDir(), "out")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := writeLines(f, lines); err != nil {
		t.Fatalf("writeLines to file failed: %v", err)
	}
	f.Close()

	data, _ := os.ReadFile(path)
	if string(data) != "one\ntwo\n" {
		t.Errorf("Unexpected file output %q", string(data))
	}
}
