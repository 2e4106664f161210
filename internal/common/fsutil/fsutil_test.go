package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"~", home},
		{"~/models", filepath.Join(home, "models")},
	}
	for _, c := range cases {
		got, err := ExpandHome(c.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ExpandHome(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPathExistsAndIsRegularFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "m.gguf")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !PathExists(f) || !PathExists(dir) {
		t.Fatal("expected existing paths to be reported")
	}
	if PathExists(filepath.Join(dir, "missing")) {
		t.Fatal("missing path reported as existing")
	}
	if !IsRegularFile(f) {
		t.Fatal("file not reported as regular")
	}
	if IsRegularFile(dir) {
		t.Fatal("dir reported as regular file")
	}
	if !strings.HasSuffix(f, ".gguf") {
		t.Fatal("test setup broken")
	}
}
