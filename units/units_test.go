package units

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/bfvm"
)

const programsDir = "../testdata/programs/"

func readProgram(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(programsDir + name)
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}

func TestPrograms(t *testing.T) {
	cases := []struct {
		file   string
		input  string
		output string
	}{
		{"hello.bf", "", "Hello World!\n"},
		{"hellosmall.b", "", "Hello World!\n"},
		{"rot13.bf", "foobar", "sbbone"},
	}

	for _, c := range cases {
		t.Run(c.file, func(t *testing.T) {
			src := readProgram(t, c.file)

			// function
			fn, err := NewFunction(src)
			if err != nil {
				t.Fatal(err)
			}
			out, err := fn(c.input)
			if err != nil {
				t.Fatal(err)
			}
			if out != c.output {
				t.Fatalf("got %q", out)
			}

			// procedure
			proc, err := NewProcedure(src)
			if err != nil {
				t.Fatal(err)
			}
			buf := new(bytes.Buffer)
			if err := proc(t.Context(), buf, strings.NewReader(c.input)); err != nil {
				t.Fatal(err)
			}
			if buf.String() != c.output {
				t.Fatalf("got %q", buf.String())
			}

			// unit
			unit, err := New(c.file, src)
			if err != nil {
				t.Fatal(err)
			}
			out, err = unit.Call(c.input)
			if err != nil {
				t.Fatal(err)
			}
			if out != c.output {
				t.Fatalf("got %q", out)
			}
			buf.Reset()
			if err := unit.Invoke(t.Context(), buf, strings.NewReader(c.input)); err != nil {
				t.Fatal(err)
			}
			if buf.String() != c.output {
				t.Fatalf("got %q", buf.String())
			}
		})
	}
}

func TestFunctionIsolation(t *testing.T) {
	fn, err := NewFunction(readProgram(t, "rot13.bf"))
	if err != nil {
		t.Fatal(err)
	}
	fresh, err := NewFunction(readProgram(t, "rot13.bf"))
	if err != nil {
		t.Fatal(err)
	}

	if out, err := fn("a"); err != nil || out != "n" {
		t.Fatalf("got %q %v", out, err)
	}
	out, err := fn("b")
	if err != nil {
		t.Fatal(err)
	}
	want, err := fresh("b")
	if err != nil {
		t.Fatal(err)
	}
	if out != want || out != "o" {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestFunctionDefaultInput(t *testing.T) {
	// reading with no input gives the EOF sentinel
	fn, err := NewFunction(",+[-.,+]+++++++++++++++++++++++++++++++++.")
	if err != nil {
		t.Fatal(err)
	}
	out, err := fn("")
	if err != nil {
		t.Fatal(err)
	}
	if out != "!" {
		t.Fatalf("got %q", out)
	}
}

func TestFunctionConcurrent(t *testing.T) {
	fn, err := NewFunction(readProgram(t, "rot13.bf"))
	if err != nil {
		t.Fatal(err)
	}
	errs := make(chan error, 8)
	for range 8 {
		go func() {
			out, err := fn("foobar")
			if err == nil && out != "sbbone" {
				err = errors.New("got " + out)
			}
			errs <- err
		}()
	}
	for range 8 {
		if err := <-errs; err != nil {
			t.Fatal(err)
		}
	}
}

func TestParseErrorAbortsConstruction(t *testing.T) {
	if _, err := NewFunction("+]"); !errors.Is(err, bfcode.ErrUnmatchedClose) {
		t.Fatalf("got %v", err)
	}
	if _, err := NewProcedure("+["); !errors.Is(err, bfcode.ErrUnclosedOpen) {
		t.Fatalf("got %v", err)
	}
	unit, err := New("bad", "[[]")
	if !errors.Is(err, bfcode.ErrUnclosedOpen) {
		t.Fatalf("got %v", err)
	}
	if unit != nil {
		t.Fatal("should be nil")
	}
	if !strings.Contains(err.Error(), " at bad:1:1") {
		t.Fatalf("got %v", err)
	}
}

func TestUnitOptions(t *testing.T) {
	unit, err := New("wrap", "-.", bfvm.WithCells(bfvm.CellByte))
	if err != nil {
		t.Fatal(err)
	}
	out, err := unit.Call("")
	if err != nil {
		t.Fatal(err)
	}
	if out != "ÿ" {
		t.Fatalf("got %q", out)
	}
	if unit.Options().Cells != bfvm.CellByte {
		t.Fatalf("got %v", unit.Options().Cells)
	}

	factory := NewFactory(bfvm.WithCells(bfvm.CellByte))
	unit, err = factory("wrap", "-.")
	if err != nil {
		t.Fatal(err)
	}
	if unit.Options().Cells != bfvm.CellByte {
		t.Fatalf("got %v", unit.Options().Cells)
	}
}

func TestFromFile(t *testing.T) {
	unit, err := FromFile(programsDir + "hello.bf")
	if err != nil {
		t.Fatal(err)
	}
	if unit.Name != "hello" {
		t.Fatalf("got %q", unit.Name)
	}
	out, err := unit.Call("")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Hello World!\n" {
		t.Fatalf("got %q", out)
	}

	if _, err := FromFile(programsDir + "unbalanced.bf"); !errors.Is(err, bfcode.ErrUnmatchedClose) {
		t.Fatalf("got %v", err)
	}
	if _, err := FromFile(programsDir + "missing.bf"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}

func TestSymbolName(t *testing.T) {
	for path, want := range map[string]string{
		"hello.bf":           "hello",
		"programs/rot13.b":   "rot13",
		"a/b/subhello.bf":    "subhello",
		"noext":              "noext",
		".hidden":            ".hidden",
		"dir/archive.tar.bf": "archive.tar",
	} {
		if got := SymbolName(path); got != want {
			t.Fatalf("%s: got %q", path, got)
		}
	}
}

func TestFunctionNonASCII(t *testing.T) {
	fn, err := NewFunction(",+[-.,+]")
	if err != nil {
		t.Fatal(err)
	}
	out, err := fn("héllo wörld")
	if err != nil {
		t.Fatal(err)
	}
	if out != "héllo wörld" {
		t.Fatalf("got %q", out)
	}
}
