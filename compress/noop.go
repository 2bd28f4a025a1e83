package compress

// NoOpCompressor implements the "RAW" wrapper tag: the framed payload is the
// raw delta byte-for-byte.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// Compress returns data unchanged.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
