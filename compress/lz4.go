package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/tomarus/gdelta/errs"
	"github.com/tomarus/gdelta/internal/varint"
)

// lz4CompressorPool pools lz4.Compressor instances; the type carries a
// reusable hash table that is wasteful to reallocate per call.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// storedBlock and lz4Block mark, respectively, a payload that is the
// original bytes copied verbatim (CompressBlock found the input
// incompressible) and a payload that is a real LZ4 block. The distinction
// has to travel with the data: an LZ4 block does not self-describe its
// decompressed size, and CompressBlock's "0 means incompressible" signal
// is only meaningful at compress time, so Decompress needs its own flag
// to tell the two cases apart.
const (
	storedBlock byte = 0
	lz4Block    byte = 1
)

// LZ4Compressor implements the "LZ4" wrapper tag. Its payload is
// varint(originalLength) + a one-byte stored/lz4 flag + the block bytes.
type LZ4Compressor struct{}

var _ Codec = LZ4Compressor{}

// Compress compresses data as a single LZ4 block, prefixed with its
// original length and a flag so Decompress can size its output buffer
// exactly and tell a real LZ4 block apart from a stored (incompressible)
// one.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	out := varint.Append(make([]byte, 0, len(data)+varint.MaxWidth+1), uint64(len(data)))

	if n == 0 || n >= len(data) {
		// Incompressible input: lz4 signals this by writing nothing, or the
		// "compressed" form didn't beat the original. Store data verbatim.
		out = append(out, storedBlock)
		out = append(out, data...)

		return out, nil
	}

	out = append(out, lz4Block)
	out = append(out, dst[:n]...)

	return out, nil
}

// Decompress reverses Compress, reading the original length and
// stored/lz4 flag before decoding the block.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	origLen, n, err := varint.Read(data)
	if err != nil {
		return nil, fmt.Errorf("gdelta/compress: lz4 original length: %w", err)
	}
	rest := data[n:]

	if len(rest) < 1 {
		return nil, errs.ErrTruncated
	}
	flag, body := rest[0], rest[1:]

	switch flag {
	case storedBlock:
		if uint64(len(body)) != origLen {
			return nil, fmt.Errorf("gdelta/compress: lz4 stored block length mismatch: %w", errs.ErrLengthMismatch)
		}

		return append([]byte(nil), body...), nil

	case lz4Block:
		buf := make([]byte, origLen)

		m, err := lz4.UncompressBlock(body, buf)
		if err != nil {
			return nil, err
		}
		if uint64(m) != origLen {
			return nil, fmt.Errorf("gdelta/compress: lz4 decompressed length mismatch: %w", errs.ErrLengthMismatch)
		}

		return buf, nil

	default:
		return nil, fmt.Errorf("gdelta/compress: unrecognized lz4 block flag 0x%02x", flag)
	}
}
