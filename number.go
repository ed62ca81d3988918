package pfmt

import "fmt"

// formatDigits writes the digits of value in base into the tail of buf,
// back to front, and returns the digit count. A zero value yields no digits;
// the caller supplies the default zero via the precision rules in writeInt.
func formatDigits(buf []byte, value, base int64, upper bool) int {
	letter := byte('a')
	if upper {
		letter = 'A'
	}
	i := len(buf)
	for value != 0 {
		digit := value % base
		// Divide before negating so the minimum representable value never
		// has to be negated directly.
		value /= base
		if digit < 0 {
			digit = -digit
			value = -value
		}
		i--
		if digit >= 10 {
			buf[i] = letter + byte(digit) - 10
		} else {
			buf[i] = '0' + byte(digit)
		}
	}
	return len(buf) - i
}

func formatUdigits(buf []byte, value, base uint64, upper bool) int {
	letter := byte('a')
	if upper {
		letter = 'A'
	}
	i := len(buf)
	for value != 0 {
		digit := value % base
		value /= base
		i--
		if digit >= 10 {
			buf[i] = letter + byte(digit) - 10
		} else {
			buf[i] = '0' + byte(digit)
		}
	}
	return len(buf) - i
}

// writeInt lays out one numeric conversion around an already-extracted digit
// sequence: leading space padding, sign or base prefix, leading zeros, the
// digits, then trailing padding when left-justified.
func writeInt(dst *sink, sp spec, digits []byte, negative, zero bool) error {
	size := len(digits)

	// Leading zeros come from the precision; the default of 1 makes a bare
	// zero render as "0".
	var zeroFill int
	switch sp.precision {
	case widthArg:
		return fmt.Errorf("%w: precision from argument", ErrNotImplemented)
	case widthNone:
		zeroFill = 1
	default:
		zeroFill = sp.precision
	}
	if zeroFill > size {
		zeroFill -= size
	} else {
		zeroFill = 0
	}

	// Sign and base prefix are mutually exclusive after flag normalization.
	// A hex prefix is suppressed for zero; an octal prefix never is.
	switch {
	case negative || sp.flags&(flagShowSign|flagAddSpace) != 0:
		size++
	case sp.flags&flagExplicitBase != 0:
		switch sp.verb {
		case 'x', 'X':
			if !zero {
				size += 2
			}
		case 'o':
			size++
		}
	}

	var fill int
	switch sp.width {
	case widthArg:
		return fmt.Errorf("%w: width from argument", ErrNotImplemented)
	case widthNone:
	default:
		if n := sp.width - size - zeroFill; n > 0 {
			fill = n
		}
	}

	if sp.flags&(flagZeroFill|flagLeftJustify) == 0 {
		if err := dst.pad(fill, ' '); err != nil {
			return err
		}
	}

	switch {
	case sp.flags&flagExplicitBase != 0:
		switch sp.verb {
		case 'x':
			if !zero {
				if err := dst.writeString("0x"); err != nil {
					return err
				}
			}
		case 'X':
			if !zero {
				if err := dst.writeString("0X"); err != nil {
					return err
				}
			}
		case 'o':
			if err := dst.writeByte('0'); err != nil {
				return err
			}
		}
	case negative:
		if err := dst.writeByte('-'); err != nil {
			return err
		}
	case sp.flags&flagShowSign != 0:
		if err := dst.writeByte('+'); err != nil {
			return err
		}
	case sp.flags&flagAddSpace != 0:
		if err := dst.writeByte(' '); err != nil {
			return err
		}
	}

	if sp.flags&flagZeroFill != 0 {
		zeroFill += fill
	}
	if err := dst.pad(zeroFill, '0'); err != nil {
		return err
	}

	if err := dst.write(digits); err != nil {
		return err
	}

	if sp.flags&flagLeftJustify != 0 {
		return dst.pad(fill, ' ')
	}
	return nil
}
