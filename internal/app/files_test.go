package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	buf, err := readFile(path)
	if err != nil {
		t.Fatalf("readFile() error = %v", err)
	}
	if got := buf.Text(); got != "one\ntwo\n" {
		t.Errorf("Text() = %q", got)
	}

	buf, err = readFile(filepath.Join(dir, "missing.txt"))
	if err != nil {
		t.Fatalf("readFile(missing) error = %v", err)
	}
	if buf.LineCount() != 1 || buf.Text() != "" {
		t.Errorf("missing file buffer = %q, want empty", buf.Text())
	}

	if _, err := readFile(dir); err == nil {
		t.Error("readFile(directory) returned nil error")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := writeFile(path, "first"); err != nil {
		t.Fatalf("writeFile() error = %v", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := writeFile(path, "second"); err != nil {
		t.Fatalf("writeFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want second", data)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("perm = %v, want 0600", info.Mode().Perm())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the target", len(entries))
	}
}
