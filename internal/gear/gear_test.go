package gear

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum_Deterministic(t *testing.T) {
	window := []byte("abcdefgh")

	h1 := Sum(window)
	h2 := Sum(window)
	require.Equal(t, h1, h2)
}

func TestSum_DifferentWindowsDiffer(t *testing.T) {
	a := Sum([]byte("abcdefgh"))
	b := Sum([]byte("abcdefgi"))
	require.NotEqual(t, a, b)
}

func TestSum_Empty(t *testing.T) {
	require.Equal(t, uint64(0), Sum(nil))
}

func TestSum_MatchesReferenceRecurrence(t *testing.T) {
	window := []byte{0x00, 0x01, 0xff, 0x7f, 0x10}

	var want uint64
	for _, b := range window {
		want = (want << 1) + Table[b]
	}

	require.Equal(t, want, Sum(window))
}

func TestTable_Size(t *testing.T) {
	require.Len(t, Table, 256)
}
