package pfmt

import (
	"errors"
	"io"
	"os"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidFormatter = errors.New("invalid formatter")
	ErrTooFewArguments  = errors.New("too few arguments")
	ErrTooManyArguments = errors.New("too many arguments")
	ErrIncompatibleType = errors.New("incompatible type")
	ErrNotImplemented   = errors.New("not implemented")
)

// Fprintf renders format with args substituted and writes the result to w.
// Rendering is single-pass and unbuffered: on error, output produced before
// the failing specifier has already been written to w.
func Fprintf(w io.Writer, format string, args ...any) error {
	return render(w, format, classifyAll(args))
}

// Printf renders to os.Stdout.
func Printf(format string, args ...any) error {
	return Fprintf(os.Stdout, format, args...)
}

// Sprintf renders format with args substituted and returns the result.
func Sprintf(format string, args ...any) (string, error) {
	b := newBuffer()
	defer b.free()
	if err := Fprintf(b, format, args...); err != nil {
		return "", err
	}
	return string(*b), nil
}

// Appendf renders format with args substituted and appends the result to dst.
func Appendf(dst []byte, format string, args ...any) ([]byte, error) {
	b := buffer(dst)
	if err := Fprintf(&b, format, args...); err != nil {
		return dst, err
	}
	return b, nil
}

// MustSprintf is Sprintf with fail-fast semantics: it panics on error.
func MustSprintf(format string, args ...any) string {
	s, err := Sprintf(format, args...)
	if err != nil {
		panic(err)
	}
	return s
}

// Formatter binds a destination for repeated renders.
type Formatter struct {
	w io.Writer
}

// New returns a Formatter writing to w.
func New(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// Printf renders format with args substituted into the bound writer.
func (f *Formatter) Printf(format string, args ...any) error {
	return Fprintf(f.w, format, args...)
}
