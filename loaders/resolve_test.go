package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const programsDir = "../testdata/programs"

var defaultExts = []string{"bf", "b"}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolve(t *testing.T) {
	for name, want := range map[string]string{
		"hello":           filepath.Join(programsDir, "hello.bf"),
		"hellosmall":      filepath.Join(programsDir, "hellosmall.b"),
		"subdir.subhello": filepath.Join(programsDir, "subdir", "subhello.bf"),
	} {
		path, err := Resolve(name, []string{programsDir}, defaultExts)
		if err != nil {
			t.Fatal(err)
		}
		if path != want {
			t.Fatalf("%s: got %s", name, path)
		}
	}
}

func TestResolveNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := Resolve("nope", []string{dir, programsDir}, defaultExts)
	if !errors.Is(err, ErrModuleNotFound) {
		t.Fatalf("got %v", err)
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("got %T", err)
	}
	if len(notFound.Tried) != 4 {
		t.Fatalf("got %v", notFound.Tried)
	}
	if notFound.Tried[0] != filepath.Join(dir, "nope.bf") ||
		notFound.Tried[1] != filepath.Join(dir, "nope.b") {
		t.Fatalf("got %v", notFound.Tried)
	}

	// empty search path
	_, err = Resolve("hello", nil, defaultExts)
	if !errors.Is(err, ErrModuleNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestResolveOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, filepath.Join(first, "x.b"), "")
	writeFile(t, filepath.Join(second, "x.bf"), "")
	writeFile(t, filepath.Join(second, "x.b"), "")

	// directories take precedence over extensions
	path, err := Resolve("x", []string{first, second}, defaultExts)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(first, "x.b") {
		t.Fatalf("got %s", path)
	}

	path, err = Resolve("x", []string{second}, defaultExts)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(second, "x.bf") {
		t.Fatalf("got %s", path)
	}

	path, err = Resolve("x", []string{second}, []string{".b", "bf"})
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(second, "x.b") {
		t.Fatalf("got %s", path)
	}
}

func TestResolveSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "d.bf"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "d.b"), "")
	path, err := Resolve("d", []string{dir}, defaultExts)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "d.b") {
		t.Fatalf("got %s", path)
	}
}

func TestResolveInvalidName(t *testing.T) {
	for _, name := range []string{
		"",
		"a..b",
		".a",
		"a.",
		"a/b",
		`a\b`,
	} {
		_, err := Resolve(name, []string{programsDir}, defaultExts)
		if !errors.Is(err, ErrModuleNotFound) {
			t.Fatalf("%q: got %v", name, err)
		}
	}
}
