package pfmt

import "fmt"

// Specifier grammar, consumed immediately after '%':
//
//	Specifier := Position? Flags Width? Precision? Verb
//	Position  := Digits '$'
//	Flags     := ('-'|'+'|'#'|'0'|' ')*
//	Width     := Digits | '*'
//	Precision := '.' (Digits | '*')?
//	Verb      := 's'|'c'|'b'|'d'|'o'|'x'|'X'|'p'|'e'|'E'|'f'|'F'|'g'|'G'|'a'|'A'
//
// Stages parse in that fixed order; each consumes only its own grammar or
// nothing at all.

const (
	flagLeftJustify uint8 = 1 << iota
	flagShowSign
	flagExplicitBase
	flagZeroFill
	flagAddSpace
)

const (
	positionNone = -1
	widthNone    = -1
	widthArg     = -2 // '*': sourced from the next argument; parsed, never executed
)

// spec is the descriptor for a single specifier. One is built per specifier
// and discarded after the argument is rendered.
type spec struct {
	position  int
	flags     uint8
	width     int
	precision int
	verb      byte
}

func digitsEnd(format string, i int) int {
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		i++
	}
	return i
}

func parseDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// parseSpec parses one specifier starting at format[i], just past the '%'.
// It returns the descriptor and the index just past the verb.
func parseSpec(format string, i int) (spec, int, error) {
	sp := spec{position: positionNone, width: widthNone, precision: widthNone}

	// Position: digits count only when '$' follows; otherwise they are left
	// in place for the width stage.
	if end := digitsEnd(format, i); end > i && end < len(format) && format[end] == '$' {
		sp.position = parseDigits(format[i:end])
		i = end + 1
	}

flags:
	for i < len(format) {
		switch format[i] {
		case '-':
			sp.flags |= flagLeftJustify
		case '+':
			sp.flags |= flagShowSign
		case '#':
			sp.flags |= flagExplicitBase
		case '0':
			sp.flags |= flagZeroFill
		case ' ':
			sp.flags |= flagAddSpace
		default:
			break flags
		}
		i++
	}

	if i < len(format) && format[i] == '*' {
		sp.width = widthArg
		i++
	} else if end := digitsEnd(format, i); end > i {
		sp.width = parseDigits(format[i:end])
		i = end
	}

	// A bare '.' sets precision to zero.
	if i < len(format) && format[i] == '.' {
		i++
		if i < len(format) && format[i] == '*' {
			sp.precision = widthArg
			i++
		} else if end := digitsEnd(format, i); end > i {
			sp.precision = parseDigits(format[i:end])
			i = end
		} else {
			sp.precision = 0
		}
	}

	if i >= len(format) {
		return sp, i, fmt.Errorf("%w: missing conversion character", ErrInvalidFormatter)
	}
	switch c := format[i]; c {
	case 's', 'c', 'b', 'd', 'o', 'x', 'X', 'p', 'e', 'E', 'f', 'F', 'g', 'G', 'a', 'A':
		sp.verb = c
	default:
		return sp, i, fmt.Errorf("%w: unknown conversion %q", ErrInvalidFormatter, string(c))
	}
	i++

	sp.normalize()
	return sp, i, nil
}

// normalize applies the flag interaction rules once per descriptor.
func (sp *spec) normalize() {
	// Sign and space apply only to decimal, binary, and string conversions;
	// those conversions in turn never take an explicit base prefix.
	if sp.verb != 'd' && sp.verb != 'b' && sp.verb != 's' {
		sp.flags &^= flagShowSign | flagAddSpace
	} else {
		sp.flags &^= flagExplicitBase
	}
	// Sign wins over space.
	if sp.flags&flagShowSign != 0 {
		sp.flags &^= flagAddSpace
	}
	// Space padding wins when left-justified.
	if sp.flags&flagLeftJustify != 0 {
		sp.flags &^= flagZeroFill
	}
}
