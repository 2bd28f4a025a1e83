package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/tomarus/gdelta/errs"
)

// maxDecompressedFrameSize bounds how much window memory a single zstd frame
// may demand to decode, the same defense-in-depth spirit as the core codec's
// errs.ErrInputTooLarge: an attacker-supplied frame claiming a huge window
// can otherwise force a large allocation before decoding even produces a
// single output byte. A frame requiring more is rejected up front rather
// than decoded and then discarded.
const maxDecompressedFrameSize = 1 << 32

// zstdDecoderPool pools zstd decoders. klauspost/compress/zstd documents the
// decoder as allocation-free after warmup when reused, so the pool is kept
// warm rather than built fresh per call.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
			zstd.WithDecoderMaxMemory(maxDecompressedFrameSize),
		)
		if err != nil {
			panic(fmt.Sprintf("gdelta/compress: building pooled zstd decoder: %v", err))
		}

		return decoder
	},
}

// zstdEncoderPool pools zstd encoders for the same reason.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("gdelta/compress: building pooled zstd encoder: %v", err))
		}

		return encoder
	},
}

// ZstdCompressor implements the "ZST" wrapper tag.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// Compress compresses data with a pooled zstd encoder. An empty delta
// compresses to an empty payload, mirroring the early return Decompress
// takes for the same case, rather than round-tripping through a zero-length
// zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress reverses Compress with a pooled zstd decoder, rejecting frames
// that demand more than maxDecompressedFrameSize of window memory.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
			return nil, fmt.Errorf("gdelta/compress: zstd frame exceeds decode limit: %w", errs.ErrInputTooLarge)
		}

		return nil, fmt.Errorf("gdelta/compress: zstd decompress: %w", err)
	}

	return decompressed, nil
}
