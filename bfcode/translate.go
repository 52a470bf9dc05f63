package bfcode

import (
	"io"
	"strings"
)

type frame struct {
	// open is the position of the [ that started this sequence
	open Pos
	body Program
}

// Translate turns source text into an instruction tree.
// Runes other than the eight commands are comments.
func Translate(source string) (Program, error) {
	return translate("", source)
}

// TranslateReader reads the whole source and translates it.
// name is reported in parse errors.
func TranslateReader(name string, r io.Reader) (Program, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return translate(name, string(content))
}

func translate(name string, source string) (Program, error) {
	var stack []frame
	var current Program

	pos := Pos{
		Line:   1,
		Column: 1,
	}
	for offset, r := range source {
		pos.Offset = offset

		switch r {
		case '>':
			current = append(current, Instruction{Op: OpMove, Delta: 1, Pos: pos})
		case '<':
			current = append(current, Instruction{Op: OpMove, Delta: -1, Pos: pos})
		case '+':
			current = append(current, Instruction{Op: OpAdjust, Delta: 1, Pos: pos})
		case '-':
			current = append(current, Instruction{Op: OpAdjust, Delta: -1, Pos: pos})
		case '.':
			current = append(current, Instruction{Op: OpOutput, Pos: pos})
		case ',':
			current = append(current, Instruction{Op: OpInput, Pos: pos})

		case '[':
			stack = append(stack, frame{
				open: pos,
				body: current,
			})
			current = nil

		case ']':
			if len(stack) == 0 {
				return nil, newParseError(ErrUnmatchedClose, name, source, pos)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			// the finished body moves into the loop, the builder is not reused
			loop := Instruction{
				Op:   OpLoop,
				Body: current,
				Pos:  top.open,
			}
			current = append(top.body, loop)
		}

		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	if len(stack) > 0 {
		return nil, newParseError(ErrUnclosedOpen, name, source, stack[len(stack)-1].open)
	}

	return current, nil
}

func newParseError(err error, name string, source string, pos Pos) *ParseError {
	lines := strings.Split(source, "\n")
	var line string
	if idx := pos.Line - 1; idx >= 0 && idx < len(lines) {
		line = strings.TrimSuffix(lines[idx], "\r")
	}
	return &ParseError{
		Err:  err,
		Name: name,
		Pos:  pos,
		Line: line,
	}
}
