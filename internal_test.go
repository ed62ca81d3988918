package pfmt

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

func TestParseSpecFull(t *testing.T) {
	t.Parallel()
	sp, next, err := parseSpec("2$-07.3xrest", 0)
	require.NoError(t, err)
	assert.Equal(t, 8, next)
	assert.Equal(t, 2, sp.position)
	assert.Equal(t, 7, sp.width)
	assert.Equal(t, 3, sp.precision)
	assert.Equal(t, byte('x'), sp.verb)
	// Left justify dropped zero fill during normalization.
	assert.Equal(t, flagLeftJustify, sp.flags)
}

func TestParseSpecDigitsWithoutDollarAreWidth(t *testing.T) {
	t.Parallel()
	sp, next, err := parseSpec("12d", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, next)
	assert.Equal(t, positionNone, sp.position)
	assert.Equal(t, 12, sp.width)
}

func TestParseSpecDefaults(t *testing.T) {
	t.Parallel()
	sp, next, err := parseSpec("d", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, next)
	assert.Equal(t, positionNone, sp.position)
	assert.Equal(t, uint8(0), sp.flags)
	assert.Equal(t, widthNone, sp.width)
	assert.Equal(t, widthNone, sp.precision)
}

func TestParseSpecBareDot(t *testing.T) {
	t.Parallel()
	sp, _, err := parseSpec(".d", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, sp.precision)
}

func TestParseSpecStars(t *testing.T) {
	t.Parallel()
	sp, next, err := parseSpec("*.*d", 0)
	require.NoError(t, err)
	assert.Equal(t, 4, next)
	assert.Equal(t, widthArg, sp.width)
	assert.Equal(t, widthArg, sp.precision)
}

func TestParseSpecUnknownVerb(t *testing.T) {
	t.Parallel()
	_, _, err := parseSpec("z", 0)
	assert.ErrorIs(t, err, ErrInvalidFormatter)
}

func TestParseSpecTruncated(t *testing.T) {
	t.Parallel()
	_, _, err := parseSpec("-5.", 0)
	assert.ErrorIs(t, err, ErrInvalidFormatter)
}

func TestNormalizeClearsSignForHex(t *testing.T) {
	t.Parallel()
	sp := spec{verb: 'x', flags: flagShowSign | flagAddSpace | flagExplicitBase}
	sp.normalize()
	assert.Equal(t, flagExplicitBase, sp.flags)
}

func TestNormalizeClearsBaseForDecimal(t *testing.T) {
	t.Parallel()
	sp := spec{verb: 'd', flags: flagExplicitBase | flagShowSign}
	sp.normalize()
	assert.Equal(t, flagShowSign, sp.flags)
}

func TestNormalizeSignBeatsSpace(t *testing.T) {
	t.Parallel()
	sp := spec{verb: 'd', flags: flagShowSign | flagAddSpace}
	sp.normalize()
	assert.Equal(t, flagShowSign, sp.flags)
}

func TestFormatDigitsZeroIsEmpty(t *testing.T) {
	t.Parallel()
	var buf [64]byte
	assert.Equal(t, 0, formatDigits(buf[:], 0, 10, false))
	assert.Equal(t, 0, formatUdigits(buf[:], 0, 10, false))
}

func TestFormatDigitsMinInt64(t *testing.T) {
	t.Parallel()
	var buf [64]byte
	n := formatDigits(buf[:], math.MinInt64, 10, false)
	assert.Equal(t, "9223372036854775808", string(buf[64-n:]))
}

func TestFormatDigitsLetterCase(t *testing.T) {
	t.Parallel()
	var buf [64]byte
	n := formatDigits(buf[:], 255, 16, false)
	assert.Equal(t, "ff", string(buf[64-n:]))
	n = formatDigits(buf[:], 255, 16, true)
	assert.Equal(t, "FF", string(buf[64-n:]))
}

func TestFormatUdigitsFullWidthBinary(t *testing.T) {
	t.Parallel()
	var buf [64]byte
	n := formatUdigits(buf[:], math.MaxUint64, 2, false)
	assert.Equal(t, strings.Repeat("1", 64), string(buf[64-n:]))
}

func TestWidthMask(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(0xff), widthMask(8))
	assert.Equal(t, uint64(0xffff), widthMask(16))
	assert.Equal(t, ^uint64(0), widthMask(64))
}

func TestClassifyKinds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		arg  any
		want kind
	}{
		{name: "bool", arg: true, want: kindBool},
		{name: "int", arg: 1, want: kindSigned},
		{name: "int8", arg: int8(1), want: kindSigned},
		{name: "rune", arg: 'a', want: kindSigned},
		{name: "uint", arg: uint(1), want: kindUnsigned},
		{name: "byte", arg: byte(1), want: kindUnsigned},
		{name: "uintptr", arg: uintptr(1), want: kindUnsigned},
		{name: "string", arg: "s", want: kindString},
		{name: "bytes", arg: []byte("s"), want: kindString},
		{name: "error", arg: errors.New("e"), want: kindString},
		{name: "nil", arg: nil, want: kindPointer},
		{name: "pointer", arg: new(int), want: kindPointer},
		{name: "struct", arg: struct{}{}, want: kindUnsupported},
		{name: "float", arg: 1.5, want: kindUnsupported},
		{name: "map", arg: map[string]int{}, want: kindUnsupported},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify(tt.arg).kind)
		})
	}
}

func TestClassifyRecordsBitWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 8, classify(int8(0)).size)
	assert.Equal(t, 32, classify(int32(0)).size)
	assert.Equal(t, 64, classify(uint64(0)).size)
}

func TestSinkPadChunks(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := sink{w: &buf}
	require.NoError(t, s.pad(70, ' '))
	assert.Equal(t, strings.Repeat(" ", 70), buf.String())

	buf.Reset()
	require.NoError(t, s.pad(3, '0'))
	assert.Equal(t, "000", buf.String())
}

func TestSinkWriteError(t *testing.T) {
	t.Parallel()
	s := sink{w: &errWriterInternal{}}
	assert.ErrorIs(t, s.writeString("x"), errInternalWrite)
	assert.ErrorIs(t, s.writeByte('x'), errInternalWrite)
	assert.ErrorIs(t, s.pad(1, ' '), errInternalWrite)
}

func TestBufferReuse(t *testing.T) {
	t.Parallel()
	b := newBuffer()
	_, err := b.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", string(*b))
	b.free()

	b = newBuffer()
	assert.Empty(t, *b)
	b.free()
}
