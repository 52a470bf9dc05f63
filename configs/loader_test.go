package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoaderAssignFirst(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"test.cue": `
str: "bar"
list: [1, 2, 3]
`,
	})
	loader := NewLoader([]string{filepath.Join(dir, "test.cue")}, testSchema)

	var str string
	if err := loader.AssignFirst("str", &str); err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	if err := loader.AssignFirst("list", &list); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err := loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderPrecedence(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.cue": `str: "bar"`,
		"b.cue": `
str: "foo"
list: [4]
`,
	})
	loader := NewLoader([]string{
		filepath.Join(dir, "a.cue"),
		filepath.Join(dir, "b.cue"),
	}, testSchema)

	str := First[string](loader, "str")
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	// only the second file defines list
	list := First[[]int](loader, "list")
	if len(list) != 1 || list[0] != 4 {
		t.Fatalf("got %v", list)
	}

	var strs []string
	for s := range All[string](loader, "str") {
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %s", str)
	}

	paths, err := loader.Paths()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewSourceLoader(map[string]string{
		"bad.cue": `unknown_field: "x"`,
	}, []string{"bad.cue"}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{filepath.Join(t.TempDir(), "nope.cue")}, "")
	var str string
	err := loader.AssignFirst("str", &str)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	First[string](loader, "str")
}

func TestZeroLoader(t *testing.T) {
	var loader Loader
	str := First[string](loader, "str")
	if str != "" {
		t.Fatalf("got %q", str)
	}
}
