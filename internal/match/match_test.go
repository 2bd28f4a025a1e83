package match

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func refCommonPrefix(a, b []byte) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}

	return i
}

func refCommonSuffix(a, b []byte) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}

	return i
}

func TestCommonPrefix_MatchesReference(t *testing.T) {
	cases := [][2]string{
		{"", ""},
		{"a", ""},
		{"abc", "abd"},
		{"abcdefgh", "abcdefgh"},
		{"abcdefgh", "abcdefgx"},
		{"abcdefghi", "abcdefghj"},
		{"abcdefghij", "abcdefghij"},
		{"abcdefghijklmnop", "abcdefghijklmnoX"},
	}
	for _, c := range cases {
		a, b := []byte(c[0]), []byte(c[1])
		require.Equal(t, refCommonPrefix(a, b), CommonPrefix(a, b), "a=%q b=%q", a, b)
	}
}

func TestCommonSuffix_MatchesReference(t *testing.T) {
	cases := [][2]string{
		{"", ""},
		{"a", ""},
		{"cba", "dba"},
		{"hgfedcba", "hgfedcba"},
		{"hgfedcba", "xgfedcba"},
		{"ihgfedcba", "jhgfedcba"},
		{"jihgfedcba", "jihgfedcba"},
		{"ponmlkjihgfedcba", "Xonmlkjihgfedcba"},
	}
	for _, c := range cases {
		a, b := []byte(c[0]), []byte(c[1])
		require.Equal(t, refCommonSuffix(a, b), CommonSuffix(a, b), "a=%q b=%q", a, b)
	}
}

func TestCommonPrefix_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := randBytes(rng, rng.Intn(64))
		b := append(bytes.Clone(a[:min(len(a), rng.Intn(len(a)+1))]), randBytes(rng, rng.Intn(64))...)

		require.Equal(t, refCommonPrefix(a, b), CommonPrefix(a, b))
	}
}

func TestCommonSuffix_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		a := randBytes(rng, rng.Intn(64))
		tail := a[len(a)-min(len(a), rng.Intn(len(a)+1)):]
		b := append(randBytes(rng, rng.Intn(64)), tail...)

		require.Equal(t, refCommonSuffix(a, b), CommonSuffix(a, b))
	}
}

func TestExtend_SplitsBackwardAndForward(t *testing.T) {
	// "hello world" vs "hello earth": shared prefix "hello ", then diverge.
	a := []byte("hello world")
	b := []byte("hello earth")

	// Presume positions 6 (after "hello ") are equal starting points.
	back, fwd := Extend(a[:6], a[6:], b[:6], b[6:])
	require.Equal(t, 6, back)
	require.Equal(t, 0, fwd) // 'w' != 'e'
}

func randBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b) //nolint:errcheck
	return b
}
