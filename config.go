package gdelta

// These are compile-time constants, not functional options. gdelta's
// W/S/skip-policy are never written to the wire at all — two encoders built
// with different values would silently produce different, though each
// internally valid, deltas for the same inputs. Changing any of them
// requires a version bump, so they're constants rather than runtime
// configuration.
const (
	// WordSize (W) is the width in bytes of the GEAR hash window, and the
	// minimum accepted match length.
	WordSize = 8

	// SampleRate (S) is the stride at which Base windows are inserted into
	// the base index: one in every SampleRate consecutive positions.
	SampleRate = 3

	// ChunkSize is an informational tuning constant only; it does not
	// affect correctness or the wire format.
	ChunkSize = 300 * 1024

	// skipStride is the number of consecutive probe misses after which the
	// encoder switches from 1-byte to W-byte advances.
	skipStride = WordSize
)
