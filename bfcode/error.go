package bfcode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnmatchedClose = errors.New("unmatched ]")
	ErrUnclosedOpen   = errors.New("unclosed [")
)

type ParseError struct {
	Err  error
	Name string
	Pos  Pos
	// Line is the source line containing Pos, used to render a caret
	Line string
}

func (p *ParseError) Error() string {
	var sb strings.Builder
	if p.Name != "" {
		fmt.Fprintf(&sb, "%s at %s:%d:%d", p.Err.Error(), p.Name, p.Pos.Line, p.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s at %d:%d", p.Err.Error(), p.Pos.Line, p.Pos.Column)
	}
	if p.Line == "" {
		return sb.String()
	}

	sb.WriteString("\n")
	sb.WriteString(p.Line)
	sb.WriteString("\n")
	col := p.Pos.Column - 1
	for i, r := range []rune(p.Line) {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("^")

	return sb.String()
}

func (p *ParseError) Unwrap() error {
	return p.Err
}
