package compress

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapUnwrap_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	delta := make([]byte, 4096)
	rng.Read(delta) //nolint:errcheck

	for _, tag := range []Tag{TagRaw, TagZstd, TagLZ4} {
		t.Run(string(bytes.TrimRight(tag[:], "\x00")), func(t *testing.T) {
			framed, err := Wrap(tag, delta)
			require.NoError(t, err)

			got, err := Unwrap(framed)
			require.NoError(t, err)
			require.Equal(t, delta, got)

			detected, ok := Detect(framed)
			require.True(t, ok)
			require.Equal(t, tag, detected)
		})
	}
}

func TestWrapUnwrap_Empty(t *testing.T) {
	for _, tag := range []Tag{TagRaw, TagZstd, TagLZ4} {
		framed, err := Wrap(tag, nil)
		require.NoError(t, err)

		got, err := Unwrap(framed)
		require.NoError(t, err)
		require.Empty(t, got)
	}
}

func TestUnwrap_UnknownTag(t *testing.T) {
	_, err := Unwrap([]byte("XXX\x00garbage"))
	require.Error(t, err)
}

func TestUnwrap_Truncated(t *testing.T) {
	_, err := Unwrap([]byte("RA"))
	require.Error(t, err)
}

func TestDetect_TooShort(t *testing.T) {
	_, ok := Detect([]byte("R"))
	require.False(t, ok)
}

func TestZstdCompressor_Compressible(t *testing.T) {
	data := bytes.Repeat([]byte("gdelta compresses repetitive data well "), 200)

	c := ZstdCompressor{}
	compressed, err := c.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(data))

	got, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestLZ4Compressor_Compressible(t *testing.T) {
	data := bytes.Repeat([]byte("gdelta compresses repetitive data well "), 200)

	c := LZ4Compressor{}
	compressed, err := c.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(data))

	got, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

// TestLZ4Compressor_Incompressible exercises the stored (not actually
// compressed) path: random bytes defeat LZ4's matcher, so CompressBlock
// reports the input as incompressible and Compress must fall back to
// storing it verbatim in a way Decompress can still recognize and reverse.
func TestLZ4Compressor_Incompressible(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	data := make([]byte, 4096)
	rng.Read(data) //nolint:errcheck

	c := LZ4Compressor{}
	compressed, err := c.Compress(data)
	require.NoError(t, err)

	got, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, got)
}
