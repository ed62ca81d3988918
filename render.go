package pfmt

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
)

// render is the driver: it scans format left to right, copies literal runs
// verbatim, and hands each specifier to the argument renderer.
func render(w io.Writer, format string, vals []value) error {
	dst := sink{w: w}

	// The position counter auto-increments only until the first explicit
	// position; from then on every implicit specifier reuses the last
	// explicit value.
	positional := false
	position := 0

	last := 0
	for i := 0; i < len(format); {
		if format[i] != '%' {
			i++
			continue
		}
		if err := dst.writeString(format[last:i]); err != nil {
			return err
		}
		i++
		if i >= len(format) {
			return fmt.Errorf("%w: missing conversion character", ErrInvalidFormatter)
		}
		switch format[i] {
		case '%':
			i++
			if err := dst.writeByte('%'); err != nil {
				return err
			}
		case '(':
			return fmt.Errorf("%w: nested sub-format", ErrNotImplemented)
		default:
			sp, next, err := parseSpec(format, i)
			if err != nil {
				return err
			}
			i = next
			if sp.position == positionNone {
				sp.position = position
			} else {
				// Template positions are 1-based; the counter and the
				// argument sequence are 0-based.
				positional = true
				sp.position--
				position = sp.position
			}
			if !positional {
				position++
			}
			if err := renderArg(&dst, sp, vals); err != nil {
				return err
			}
		}
		last = i
	}
	return dst.writeString(format[last:])
}

func renderArg(dst *sink, sp spec, vals []value) error {
	if sp.position < 0 || sp.position >= len(vals) {
		return fmt.Errorf("%w: specifier wants argument %d, have %d", ErrTooFewArguments, sp.position+1, len(vals))
	}
	v := vals[sp.position]
	switch sp.verb {
	case 's':
		return renderAny(dst, sp, v)
	case 'c':
		return renderChar(dst, sp, v)
	case 'b':
		return renderBase(dst, sp, v, 2)
	case 'd':
		return renderDecimal(dst, sp, v)
	case 'o':
		return renderBase(dst, sp, v, 8)
	case 'x', 'X':
		return renderBase(dst, sp, v, 16)
	case 'p':
		return renderPointer(dst, sp, v)
	default:
		return fmt.Errorf("%w: floating-point conversion %q", ErrNotImplemented, string(sp.verb))
	}
}

// renderAny handles %s by the argument's own capability.
func renderAny(dst *sink, sp spec, v value) error {
	switch v.kind {
	case kindBool:
		token := "false"
		if v.b {
			token = "true"
		}
		return writePadded(dst, sp, len(token), token)
	case kindString:
		return writePadded(dst, sp, runewidth.StringWidth(v.s), v.s)
	case kindSigned, kindUnsigned:
		return renderDecimal(dst, sp, v)
	case kindPointer:
		return renderPointer(dst, sp, v)
	default:
		return incompatible(sp, v)
	}
}

// renderChar emits a single character; any integral argument converts.
func renderChar(dst *sink, sp spec, v value) error {
	var r rune
	switch v.kind {
	case kindSigned:
		r = rune(v.i)
	case kindUnsigned:
		r = rune(v.u)
	default:
		return incompatible(sp, v)
	}
	return writePadded(dst, sp, 1, string(r))
}

// renderDecimal is the signed-aware base-10 renderer behind %d and integral %s.
func renderDecimal(dst *sink, sp spec, v value) error {
	var buf [64]byte
	switch v.kind {
	case kindSigned:
		n := formatDigits(buf[:], v.i, 10, false)
		return writeInt(dst, sp, buf[len(buf)-n:], v.i < 0, v.i == 0)
	case kindUnsigned:
		n := formatUdigits(buf[:], v.u, 10, false)
		return writeInt(dst, sp, buf[len(buf)-n:], false, v.u == 0)
	default:
		return incompatible(sp, v)
	}
}

// renderBase handles %b, %o, %x, and %X. Signed arguments reinterpret as
// unsigned at their own bit width, so int8(-1) renders as "ff" under %x.
func renderBase(dst *sink, sp spec, v value, base uint64) error {
	var u uint64
	switch v.kind {
	case kindSigned:
		u = uint64(v.i) & widthMask(v.size)
	case kindUnsigned:
		u = v.u
	default:
		return incompatible(sp, v)
	}
	var buf [64]byte
	n := formatUdigits(buf[:], u, base, sp.verb == 'X')
	return writeInt(dst, sp, buf[len(buf)-n:], false, u == 0)
}

// renderPointer fixes the base and precision to the platform pointer layout;
// the caller keeps only width and justification.
func renderPointer(dst *sink, sp spec, v value) error {
	if v.kind != kindPointer {
		return incompatible(sp, v)
	}
	sp.flags = flagExplicitBase | sp.flags&flagLeftJustify
	sp.precision = strconv.IntSize / 4
	sp.verb = 'x'
	var buf [64]byte
	n := formatUdigits(buf[:], v.u, 16, false)
	return writeInt(dst, sp, buf[len(buf)-n:], false, v.u == 0)
}

func widthMask(size int) uint64 {
	if size >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(size) - 1
}

// writePadded emits content with generic space padding. size is the content
// width in display cells.
func writePadded(dst *sink, sp spec, size int, content string) error {
	var fill int
	switch sp.width {
	case widthArg:
		return fmt.Errorf("%w: width from argument", ErrNotImplemented)
	case widthNone:
	default:
		if sp.width > size {
			fill = sp.width - size
		}
	}
	if sp.flags&flagLeftJustify == 0 {
		if err := dst.pad(fill, ' '); err != nil {
			return err
		}
		return dst.writeString(content)
	}
	if err := dst.writeString(content); err != nil {
		return err
	}
	return dst.pad(fill, ' ')
}

func incompatible(sp spec, v value) error {
	return fmt.Errorf("%w: conversion %q cannot render %T", ErrIncompatibleType, string(sp.verb), v.src)
}
