// Package errs defines the single error taxonomy used across the MATHLDBT
// codec. Every failure the encoder or decoder can surface is one of the
// Kind values below, wrapped in an Error that carries a short contextual
// message and, where it makes sense, the column index or byte offset that
// triggered it.
package errs

import "fmt"

// Kind enumerates every failure the codec can surface. It is a closed set:
// adding a new wire feature (a new encoding id, say) never repurposes an
// existing Kind, it adds one.
type Kind uint8

const (
	// InvalidBatch is returned when a producer-side precondition on a
	// ColumnarBatch or BatchView is violated before any bytes are written.
	InvalidBatch Kind = iota + 1
	// BadMagic is returned when the 8-byte magic prefix does not match "MATHLDBT".
	BadMagic
	// UnsupportedVersion is returned when the header version is not 1.
	UnsupportedVersion
	// Malformed is returned for any structural violation the decoder detects
	// that isn't covered by a more specific Kind.
	Malformed
	// Truncated is returned when a declared length exceeds the remaining bytes.
	Truncated
	// BadSchema is returned when a field name is empty, duplicated, or not valid UTF-8.
	BadSchema
	// BadUtf8 is returned when a Utf8 column payload is not valid UTF-8.
	BadUtf8
	// UnsupportedEncoding is returned for an unknown logical_type or encoding_id.
	UnsupportedEncoding
	// DictTooLarge is returned when a DictUtf8 dictionary index would overflow uint32.
	DictTooLarge
	// DecompressTooLarge is returned when decompression would exceed the caller's bound.
	DecompressTooLarge
	// FeatureDisabled is returned when a requested compression algorithm isn't built in.
	FeatureDisabled
)

// String renders the Kind the way the rest of the codebase names it in
// error messages and test assertions.
func (k Kind) String() string {
	switch k {
	case InvalidBatch:
		return "InvalidBatch"
	case BadMagic:
		return "BadMagic"
	case UnsupportedVersion:
		return "UnsupportedVersion"
	case Malformed:
		return "Malformed"
	case Truncated:
		return "Truncated"
	case BadSchema:
		return "BadSchema"
	case BadUtf8:
		return "BadUtf8"
	case UnsupportedEncoding:
		return "UnsupportedEncoding"
	case DictTooLarge:
		return "DictTooLarge"
	case DecompressTooLarge:
		return "DecompressTooLarge"
	case FeatureDisabled:
		return "FeatureDisabled"
	default:
		return "Unknown"
	}
}

// sentinels, one per Kind, so callers can use errors.Is(err, errs.ErrMalformed)
// without inspecting an Error's fields.
var (
	ErrInvalidBatch        = &Error{Kind: InvalidBatch, Message: "invalid batch", Column: -1, Offset: -1}
	ErrBadMagic            = &Error{Kind: BadMagic, Message: "bad magic", Column: -1, Offset: -1}
	ErrUnsupportedVersion  = &Error{Kind: UnsupportedVersion, Message: "unsupported version", Column: -1, Offset: -1}
	ErrMalformed           = &Error{Kind: Malformed, Message: "malformed envelope", Column: -1, Offset: -1}
	ErrTruncated           = &Error{Kind: Truncated, Message: "truncated envelope", Column: -1, Offset: -1}
	ErrBadSchema           = &Error{Kind: BadSchema, Message: "bad schema", Column: -1, Offset: -1}
	ErrBadUtf8             = &Error{Kind: BadUtf8, Message: "invalid utf-8", Column: -1, Offset: -1}
	ErrUnsupportedEncoding = &Error{Kind: UnsupportedEncoding, Message: "unsupported encoding", Column: -1, Offset: -1}
	ErrDictTooLarge        = &Error{Kind: DictTooLarge, Message: "dictionary too large", Column: -1, Offset: -1}
	ErrDecompressTooLarge  = &Error{Kind: DecompressTooLarge, Message: "decompressed size exceeds bound", Column: -1, Offset: -1}
	ErrFeatureDisabled     = &Error{Kind: FeatureDisabled, Message: "feature disabled", Column: -1, Offset: -1}
)

// Error is the single error type returned by every codec operation. It
// carries a Kind (for errors.Is / switch dispatch), a human-readable
// Message, and optional Column/Offset context.
//
// Column is -1 and Offset is -1 when not applicable.
type Error struct {
	Kind    Kind
	Message string
	Column  int
	Offset  int64
	sentinel *Error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Column >= 0 && e.Offset >= 0:
		return fmt.Sprintf("mathldbt: %s: %s (column %d, offset %d)", e.Kind, e.Message, e.Column, e.Offset)
	case e.Column >= 0:
		return fmt.Sprintf("mathldbt: %s: %s (column %d)", e.Kind, e.Message, e.Column)
	case e.Offset >= 0:
		return fmt.Sprintf("mathldbt: %s: %s (offset %d)", e.Kind, e.Message, e.Offset)
	default:
		return fmt.Sprintf("mathldbt: %s: %s", e.Kind, e.Message)
	}
}

// Unwrap lets errors.Is(err, errs.ErrMalformed) succeed through the
// contextual wrapper produced by New/WithColumn/WithOffset.
func (e *Error) Unwrap() error {
	if e.sentinel != nil {
		return e.sentinel
	}

	return nil
}

var sentinelByKind = map[Kind]*Error{
	InvalidBatch:        ErrInvalidBatch,
	BadMagic:            ErrBadMagic,
	UnsupportedVersion:  ErrUnsupportedVersion,
	Malformed:           ErrMalformed,
	Truncated:           ErrTruncated,
	BadSchema:           ErrBadSchema,
	BadUtf8:             ErrBadUtf8,
	UnsupportedEncoding: ErrUnsupportedEncoding,
	DictTooLarge:        ErrDictTooLarge,
	DecompressTooLarge:  ErrDecompressTooLarge,
	FeatureDisabled:     ErrFeatureDisabled,
}

// New creates a contextual Error of the given Kind. Column and Offset
// default to -1 (not applicable); use WithColumn/WithOffset to set them.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Column:   -1,
		Offset:   -1,
		sentinel: sentinelByKind[kind],
	}
}

// WithColumn returns a copy of e annotated with the column index that
// triggered it.
func (e *Error) WithColumn(column int) *Error {
	cp := *e
	cp.Column = column

	return &cp
}

// WithOffset returns a copy of e annotated with the byte offset that
// triggered it.
func (e *Error) WithOffset(offset int64) *Error {
	cp := *e
	cp.Offset = offset

	return &cp
}
