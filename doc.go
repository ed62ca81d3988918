// Package pfmt is a compact printf-family formatting engine. It renders a
// format template with heterogeneous arguments into any [io.Writer], with
// locale-independent output and few allocations.
//
// The central entry points are [Fprintf], [Sprintf], and [Appendf]. A
// [Formatter] binds a writer for repeated renders, and [Printf] writes to
// standard output:
//
//	pfmt.Fprintf(os.Stdout, "%s: %#x\n", "checksum", 0xdeadbeef)
//	s, err := pfmt.Sprintf("%-8s %05d", name, count)
//
// # Template Grammar
//
// A specifier is '%' followed by an optional 1-based argument position
// (digits and '$'), flags, width, precision, and a conversion character:
//
//	%[position$][flags][width][.precision]verb
//
// "%%" emits a literal percent sign; every other character is copied
// verbatim. The flags are '-' (left justify), '+' (always show sign),
// '#' (explicit base prefix), '0' (zero fill), and ' ' (space before
// non-negative numbers).
//
// # Conversions
//
//   - %s — bool, integer, pointer, or string-like (string, []byte,
//     [fmt.Stringer], error) by the argument's own capability
//   - %c — character; any integer converts
//   - %d — decimal; %b, %o, %x, %X — binary, octal, and hex, reinterpreting
//     signed arguments as unsigned at their own bit width
//   - %p — pointer: "0x" and full-width lowercase hex
//
// The floating-point verbs (e, E, f, F, g, G, a, A), "%(" nested
// sub-formats, and '*' width or precision are part of the grammar but
// return [ErrNotImplemented] when rendered.
//
// # Positional Arguments
//
// "%N$" selects argument N explicitly, counting from 1:
//
//	pfmt.Sprintf("%2$s %1$s", "a", "b") // "b a"
//
// Once any specifier names a position, sequential numbering stops: a later
// specifier without a position reuses the last explicit one.
//
// # Errors
//
// All entry points return wrapped sentinel errors for programmatic
// handling:
//
//   - [ErrInvalidFormatter] — malformed specifier or unknown conversion
//   - [ErrTooFewArguments] — a specifier resolved past the argument list
//   - [ErrIncompatibleType] — argument capability does not match the verb
//   - [ErrNotImplemented] — reserved grammar reached at render time
//
// Trailing unused arguments are never an error. Rendering is single-pass:
// output written before a failing specifier stays in the destination.
// [MustSprintf] panics instead of returning an error for call sites that
// want fail-fast semantics.
package pfmt
