package twic

import "fmt"

// DecodeErrorKind enumerates the ways decoding can fail.
type DecodeErrorKind uint8

const (
	// UnexpectedChar: a character that no grammar rule accepts at its
	// position, including raw control characters in quoted strings.
	UnexpectedChar DecodeErrorKind = iota
	// UnexpectedEnd: input ended inside a value or container.
	UnexpectedEnd
	// InvalidEscape: an unknown \ sequence, or an unpaired surrogate.
	InvalidEscape
	// InvalidHex: malformed hex digits in \u, \u{...}, or \x, or a
	// \u{...} value outside the Unicode scalar range.
	InvalidHex
	// InvalidNumber: an atom with a 0x prefix whose payload is not
	// hexadecimal.
	InvalidNumber
	// InvalidAtom: an atom starting with a digit or sign that is not
	// a number.
	InvalidAtom
	// TrailingInput: non-whitespace after the top-level value.
	TrailingInput
	// IntegerOverflow: an integer literal outside the int64 range.
	IntegerOverflow
	// ReservedWordAsString: a reserved keyword used as an unquoted
	// map key.
	ReservedWordAsString
	// NestingTooDeep: container nesting beyond the decoder's limit.
	NestingTooDeep
)

// String returns the kind name.
func (k DecodeErrorKind) String() string {
	switch k {
	case UnexpectedChar:
		return "unexpected character"
	case UnexpectedEnd:
		return "unexpected end of input"
	case InvalidEscape:
		return "invalid escape"
	case InvalidHex:
		return "invalid hex"
	case InvalidNumber:
		return "invalid number"
	case InvalidAtom:
		return "invalid atom"
	case TrailingInput:
		return "trailing input"
	case IntegerOverflow:
		return "integer overflow"
	case ReservedWordAsString:
		return "reserved word as string"
	case NestingTooDeep:
		return "nesting too deep"
	default:
		return "unknown error"
	}
}

// DecodeError reports why decoding stopped.  Decoding is
// all-or-nothing: the first error is returned and no recovery is
// attempted.
type DecodeError struct {
	Kind DecodeErrorKind
	// At is a byte offset into the input, 0 <= At <= len(input).
	At int
	// Found is the offending character, for UnexpectedChar.
	Found rune
	// Atom is the offending atom, for InvalidNumber, InvalidAtom,
	// IntegerOverflow, and ReservedWordAsString.
	Atom string
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case UnexpectedChar:
		return fmt.Sprintf("twic: %s %q at offset %d", e.Kind, e.Found, e.At)
	case InvalidNumber, InvalidAtom, IntegerOverflow, ReservedWordAsString:
		return fmt.Sprintf("twic: %s %q at offset %d", e.Kind, e.Atom, e.At)
	default:
		return fmt.Sprintf("twic: %s at offset %d", e.Kind, e.At)
	}
}

// IndexErrorKind enumerates path-navigation failures.
type IndexErrorKind uint8

const (
	// KeyMissing: a key step into a map without that key.
	KeyMissing IndexErrorKind = iota
	// IndexOutOfRange: an index step beyond a vector's length.
	IndexOutOfRange
	// KindMismatch: a key step against a vector, or an index step
	// against a map.
	KindMismatch
	// TraverseThroughLeaf: a step against a non-container.
	TraverseThroughLeaf
)

// String returns the kind name.
func (k IndexErrorKind) String() string {
	switch k {
	case KeyMissing:
		return "key missing"
	case IndexOutOfRange:
		return "index out of range"
	case KindMismatch:
		return "kind mismatch"
	case TraverseThroughLeaf:
		return "traverse through leaf"
	default:
		return "unknown error"
	}
}

// IndexError reports a failed path step.  Unlike decode errors, index
// errors are recoverable: the tree is untouched and the caller may
// try another path.
type IndexError struct {
	Kind IndexErrorKind
	// Step is the position of the failing step within the path.
	Step int
	// Rest is the failing step and everything after it.
	Rest Path

	// Key is set for KeyMissing.
	Key string
	// Index and Len are set for IndexOutOfRange.
	Index int
	Len   int
	// Expected and Actual are set for KindMismatch and
	// TraverseThroughLeaf.
	Expected Kind
	Actual   Kind
}

func (e *IndexError) Error() string {
	switch e.Kind {
	case KeyMissing:
		return fmt.Sprintf("twic: key %q missing at step %d of path %s", e.Key, e.Step, e.Rest)
	case IndexOutOfRange:
		return fmt.Sprintf("twic: index %d out of range (len %d) at step %d of path %s", e.Index, e.Len, e.Step, e.Rest)
	case KindMismatch:
		return fmt.Sprintf("twic: step %d of path %s expects a %s, found a %s", e.Step, e.Rest, e.Expected, e.Actual)
	case TraverseThroughLeaf:
		return fmt.Sprintf("twic: step %d of path %s traverses through a %s", e.Step, e.Rest, e.Actual)
	default:
		return fmt.Sprintf("twic: %s at step %d", e.Kind, e.Step)
	}
}
