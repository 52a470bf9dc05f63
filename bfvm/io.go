package bfvm

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

// IO is borrowed from the caller for the duration of a run.
// Input and output both carry UTF-8 encoded code points.
type IO struct {
	Output io.Writer
	Input  io.Reader
}

type port struct {
	out    *bufio.Writer
	in     io.Reader
	inRune io.RuneReader
	inByte io.ByteReader
	one    [1]byte
	seq    [utf8.UTFMax]byte
}

func newPort(stdio IO) *port {
	p := &port{
		in: stdio.Input,
	}
	if stdio.Output != nil {
		p.out = bufio.NewWriter(stdio.Output)
	}
	// readers are consumed in place, never past the code point actually read
	if rr, ok := stdio.Input.(io.RuneReader); ok {
		p.inRune = rr
	}
	if br, ok := stdio.Input.(io.ByteReader); ok {
		p.inByte = br
	}
	return p
}

// readRune reads one code point. Malformed sequences yield utf8.RuneError.
func (p *port) readRune() (r rune, eof bool, err error) {
	if p.in == nil {
		return 0, true, nil
	}
	if p.inRune != nil {
		r, _, err = p.inRune.ReadRune()
	} else {
		r, err = p.decodeRune()
	}
	if errors.Is(err, io.EOF) {
		return 0, true, nil
	}
	if err != nil {
		return 0, false, err
	}
	return r, false, nil
}

func (p *port) decodeRune() (rune, error) {
	lead, err := p.readByte()
	if err != nil {
		return 0, err
	}
	if lead < utf8.RuneSelf {
		return rune(lead), nil
	}
	n := sequenceLength(lead)
	if n == 0 {
		return utf8.RuneError, nil
	}
	p.seq[0] = lead
	for i := 1; i < n; i++ {
		b, err := p.readByte()
		if errors.Is(err, io.EOF) {
			// truncated, the next read reports the end
			return utf8.RuneError, nil
		}
		if err != nil {
			return 0, err
		}
		if b&0xc0 != 0x80 {
			return utf8.RuneError, nil
		}
		p.seq[i] = b
	}
	r, _ := utf8.DecodeRune(p.seq[:n])
	return r, nil
}

func sequenceLength(lead byte) int {
	switch {
	case lead >= 0xc2 && lead <= 0xdf:
		return 2
	case lead >= 0xe0 && lead <= 0xef:
		return 3
	case lead >= 0xf0 && lead <= 0xf4:
		return 4
	}
	return 0
}

func (p *port) readByte() (byte, error) {
	if p.inByte != nil {
		return p.inByte.ReadByte()
	}
	if _, err := io.ReadFull(p.in, p.one[:]); err != nil {
		return 0, err
	}
	return p.one[0], nil
}

func (p *port) writeRune(r rune) error {
	if p.out == nil {
		return nil
	}
	_, err := p.out.WriteRune(r)
	return err
}

func (p *port) flush() error {
	if p.out == nil {
		return nil
	}
	return p.out.Flush()
}
