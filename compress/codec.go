// Package compress implements an optional outer compression wrapper for raw
// deltas. It is deliberately kept outside the core codec: a raw delta
// produced by gdelta.Encode never depends on anything in this package, and
// Wrap/Unwrap operate on whole delta buffers, never on New or Base.
package compress

import (
	"fmt"

	"github.com/tomarus/gdelta/errs"
)

// Tag is the 4-byte prefix this wrapper prepends to a raw delta to name the
// wrapper's own compression, distinct from the core format's own magic
// (gdelta/format.Magic) and instruction tags.
type Tag [4]byte

var (
	// TagRaw marks a payload that is the unmodified raw delta.
	TagRaw = Tag{'R', 'A', 'W', 0}
	// TagZstd marks a payload compressed with Zstandard.
	TagZstd = Tag{'Z', 'S', 'T', 0}
	// TagLZ4 marks a payload compressed with LZ4.
	TagLZ4 = Tag{'L', 'Z', '4', 0}
)

// Compressor compresses a raw delta buffer.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Tag]Codec{
	TagRaw:  NoOpCompressor{},
	TagZstd: ZstdCompressor{},
	TagLZ4:  LZ4Compressor{},
}

// codecFor resolves a Tag to its Codec, rejecting unknown tags.
func codecFor(tag Tag) (Codec, error) {
	if c, ok := builtinCodecs[tag]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("%w: unrecognized wrapper tag %q", errs.ErrBadMagic, tag[:])
}

// Wrap compresses delta (a buffer produced by gdelta.Encode) under the named
// tag and prepends the tag, producing the framed form. Wrap never inspects
// delta's contents; it is opaque bytes to this package.
func Wrap(tag Tag, delta []byte) ([]byte, error) {
	codec, err := codecFor(tag)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(delta)
	if err != nil {
		return nil, fmt.Errorf("gdelta/compress: wrapping with %q: %w", tag[:], err)
	}

	out := make([]byte, 0, len(tag)+len(compressed))
	out = append(out, tag[:]...)
	out = append(out, compressed...)

	return out, nil
}

// Unwrap reads the 4-byte tag from the front of framed, auto-detecting which
// codec to use, and returns the raw delta it names.
func Unwrap(framed []byte) ([]byte, error) {
	if len(framed) < 4 {
		return nil, fmt.Errorf("gdelta/compress: %w", errs.ErrTruncated)
	}

	var tag Tag
	copy(tag[:], framed[:4])

	codec, err := codecFor(tag)
	if err != nil {
		return nil, err
	}

	delta, err := codec.Decompress(framed[4:])
	if err != nil {
		return nil, fmt.Errorf("gdelta/compress: unwrapping %q: %w", tag[:], err)
	}

	return delta, nil
}

// Detect reports the wrapper Tag a framed buffer opens with, without
// decompressing it, for callers that want to branch on compression kind
// before paying the cost of Unwrap.
func Detect(framed []byte) (Tag, bool) {
	if len(framed) < 4 {
		return Tag{}, false
	}

	var tag Tag
	copy(tag[:], framed[:4])

	if _, ok := builtinCodecs[tag]; !ok {
		return Tag{}, false
	}

	return tag, true
}
