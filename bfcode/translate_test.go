package bfcode

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestTranslate(t *testing.T) {
	prog, err := Translate("+>-<.,")
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		op    Op
		delta int
	}{
		{OpAdjust, 1},
		{OpMove, 1},
		{OpAdjust, -1},
		{OpMove, -1},
		{OpOutput, 0},
		{OpInput, 0},
	}
	if len(prog) != len(want) {
		t.Fatalf("got %d instructions", len(prog))
	}
	for i, w := range want {
		if prog[i].Op != w.op || prog[i].Delta != w.delta {
			t.Fatalf("%d: got %v %d", i, prog[i].Op, prog[i].Delta)
		}
	}
}

func TestTranslateComments(t *testing.T) {
	prog, err := Translate("add one: +\nthen print it .")
	if err != nil {
		t.Fatal(err)
	}
	if len(prog) != 2 {
		t.Fatalf("got %v", prog)
	}
	if prog[1].Op != OpOutput {
		t.Fatalf("got %v", prog[1].Op)
	}
	if prog[1].Pos.Line != 2 || prog[1].Pos.Column != 15 {
		t.Fatalf("got %+v", prog[1].Pos)
	}

	prog, err = Translate("no commands here")
	if err != nil {
		t.Fatal(err)
	}
	if len(prog) != 0 {
		t.Fatalf("got %v", prog)
	}
}

func TestTranslateNestedLoops(t *testing.T) {
	prog, err := Translate("+[>[-]<-]+")
	if err != nil {
		t.Fatal(err)
	}
	if len(prog) != 3 {
		t.Fatalf("got %d", len(prog))
	}
	loop := prog[1]
	if loop.Op != OpLoop {
		t.Fatalf("got %v", loop.Op)
	}
	if len(loop.Body) != 4 {
		t.Fatalf("got %d", len(loop.Body))
	}
	inner := loop.Body[1]
	if inner.Op != OpLoop || len(inner.Body) != 1 || inner.Body[0].Op != OpAdjust {
		t.Fatalf("got %+v", inner)
	}
	if prog[2].Op != OpAdjust {
		t.Fatalf("got %v", prog[2].Op)
	}
	if n := prog.Count(); n != 8 {
		t.Fatalf("got %d", n)
	}
	if d := prog.Depth(); d != 2 {
		t.Fatalf("got %d", d)
	}
}

func TestTranslateEmptyLoop(t *testing.T) {
	prog, err := Translate("[]")
	if err != nil {
		t.Fatal(err)
	}
	if len(prog) != 1 || prog[0].Op != OpLoop || len(prog[0].Body) != 0 {
		t.Fatalf("got %+v", prog)
	}
}

func TestTranslateUnmatchedClose(t *testing.T) {
	_, err := Translate("+]")
	if !errors.Is(err, ErrUnmatchedClose) {
		t.Fatalf("got %v", err)
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %T", err)
	}
	if parseErr.Pos.Column != 2 || parseErr.Pos.Offset != 1 {
		t.Fatalf("got %+v", parseErr.Pos)
	}
	if !strings.Contains(err.Error(), "+]\n ^") {
		t.Fatalf("got %q", err.Error())
	}

	_, err = Translate("[]]")
	if !errors.Is(err, ErrUnmatchedClose) {
		t.Fatalf("got %v", err)
	}
}

func TestTranslateUnclosedOpen(t *testing.T) {
	_, err := Translate("+[")
	if !errors.Is(err, ErrUnclosedOpen) {
		t.Fatalf("got %v", err)
	}

	// innermost unclosed bracket is reported
	_, err = Translate("[\n [[]")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v", err)
	}
	if parseErr.Pos.Line != 2 || parseErr.Pos.Column != 2 {
		t.Fatalf("got %+v", parseErr.Pos)
	}
}

func TestTranslateReader(t *testing.T) {
	_, err := TranslateReader("foo.bf", strings.NewReader("]"))
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.HasPrefix(err.Error(), "unmatched ] at foo.bf:1:1") {
		t.Fatalf("got %v", err)
	}
}

func TestTranslateFixtures(t *testing.T) {
	for _, name := range []string{
		"hello.bf",
		"hellosmall.b",
		"rot13.bf",
	} {
		content, err := os.ReadFile("../testdata/programs/" + name)
		if err != nil {
			t.Fatal(err)
		}
		prog, err := TranslateReader(name, strings.NewReader(string(content)))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if prog.Count() == 0 {
			t.Fatalf("%s: empty", name)
		}
	}
}
