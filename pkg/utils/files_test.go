package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

var program = []byte{0xC6, 0x03, 0x80, 0x29}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("raw", func(t *testing.T) {
		name := filepath.Join(dir, "program.gb")
		if err := os.WriteFile(name, program, 0644); err != nil {
			t.Fatal(err)
		}
		expectProgram(t, name)
	})

	t.Run("gzip", func(t *testing.T) {
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(program); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}

		name := filepath.Join(dir, "program.gb.gz")
		if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
			t.Fatal(err)
		}
		expectProgram(t, name)
	})

	t.Run("zip", func(t *testing.T) {
		var buf bytes.Buffer
		w := zip.NewWriter(&buf)
		f, err := w.Create("program.gb")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write(program); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}

		name := filepath.Join(dir, "program.zip")
		if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
			t.Fatal(err)
		}
		expectProgram(t, name)
	})

	t.Run("empty zip", func(t *testing.T) {
		var buf bytes.Buffer
		if err := zip.NewWriter(&buf).Close(); err != nil {
			t.Fatal(err)
		}

		name := filepath.Join(dir, "empty.zip")
		if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(name); err == nil {
			t.Errorf("expected error loading empty archive, got nil")
		}
	})

	t.Run("7z", func(t *testing.T) {
		expectProgram(t, filepath.Join("testdata", "program.7z"))
	})

	t.Run("corrupt 7z", func(t *testing.T) {
		name := filepath.Join(dir, "program.7z")
		if err := os.WriteFile(name, program, 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(name); err == nil {
			t.Errorf("expected error loading corrupt archive, got nil")
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(dir, "missing.gb")); err == nil {
			t.Errorf("expected error loading missing file, got nil")
		}
	})
}

func expectProgram(t *testing.T, name string) {
	t.Helper()
	data, err := LoadFile(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(data, program) {
		t.Errorf("expected %x, got %x", program, data)
	}
}
