// Package errs defines the closed sentinel-error taxonomy for gdelta: one
// exported `var ErrXxx = errors.New(...)` per failure kind, wrapped with
// fmt.Errorf("...: %w", ...) at the call site so callers can match with
// errors.Is.
package errs

import "errors"

var (
	// ErrTruncated is returned when a delta's bytes run out mid-instruction
	// or mid-varint.
	ErrTruncated = errors.New("gdelta: truncated delta")

	// ErrBadMagic is returned when a header's magic does not match format.Magic.
	ErrBadMagic = errors.New("gdelta: bad magic")

	// ErrUnsupportedVersion is returned when a header's version byte is not
	// one this implementation knows how to decode.
	ErrUnsupportedVersion = errors.New("gdelta: unsupported version")

	// ErrBadInstructionTag is returned when an instruction tag byte is
	// neither format.TagLiteral nor format.TagCopy.
	ErrBadInstructionTag = errors.New("gdelta: bad instruction tag")

	// ErrOverflow is returned when a varint exceeds the configured maximum
	// width or its accumulated value exceeds 2^64-1.
	ErrOverflow = errors.New("gdelta: varint overflow")

	// ErrCopyOutOfRange is returned when a copy instruction references
	// bytes beyond the end of Base.
	ErrCopyOutOfRange = errors.New("gdelta: copy instruction out of range")

	// ErrLengthMismatch is returned when the reconstructed output length
	// does not equal the delta's declared new_len.
	ErrLengthMismatch = errors.New("gdelta: reconstructed length mismatch")

	// ErrInputTooLarge is returned when base or new exceeds the platform
	// limit the codec is willing to index or address.
	ErrInputTooLarge = errors.New("gdelta: input too large")
)
