package engine

import "errors"

// The four error kinds of spec.md §7. They are sentinel values so callers
// can test them with errors.Is; IoFailure and KeyParseFailure are normally
// wrapped by the caller that owns the underlying I/O or parse failure
// (github.com/pkg/errors at the CLI boundary, per SPEC_FULL.md §2.3) rather
// than returned bare.
var (
	// ErrInputLengthInvalid is returned when a byte stream's length is not
	// a multiple of BlockSize.
	ErrInputLengthInvalid = errors.New("engine: input length is not a multiple of 32 bytes")

	// ErrIoFailure wraps an underlying read/write failure from a
	// collaborator (an io.Reader or io.Writer).
	ErrIoFailure = errors.New("engine: i/o failure")

	// ErrKeyMissing is returned when a decrypt operation is attempted
	// without a key.
	ErrKeyMissing = errors.New("engine: key missing")

	// ErrKeyParseFailure is returned when key text cannot be parsed as a
	// 32-bit integer.
	ErrKeyParseFailure = errors.New("engine: key text is not a valid 32-bit integer")
)
