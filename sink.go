package pfmt

import (
	"io"
	"strings"
)

var (
	padSpaces = strings.Repeat(" ", 32)
	padZeros  = strings.Repeat("0", 32)
)

// sink wraps the destination writer with the byte-level helpers rendering
// needs. Output reaches the writer in strict left-to-right order; nothing is
// held back, so partial output survives a failed render.
type sink struct {
	w io.Writer
}

func (s *sink) write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	_, err := s.w.Write(p)
	return err
}

func (s *sink) writeString(str string) error {
	if len(str) == 0 {
		return nil
	}
	_, err := io.WriteString(s.w, str)
	return err
}

func (s *sink) writeByte(b byte) error {
	one := [1]byte{b}
	_, err := s.w.Write(one[:])
	return err
}

// pad writes n copies of c, which must be ' ' or '0'.
func (s *sink) pad(n int, c byte) error {
	run := padSpaces
	if c == '0' {
		run = padZeros
	}
	for n > 0 {
		chunk := min(n, len(run))
		if err := s.writeString(run[:chunk]); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
