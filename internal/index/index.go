// Package index builds and queries the base index: a single-slot-per-key
// hash table mapping GEAR fingerprints of sampled Base windows to Base
// offsets.
//
// The shape is a small struct wrapping one map, built once and queried
// read-only afterward. The collision policy is deliberately biased: the
// index silently keeps the first (earliest) offset inserted for a given
// fingerprint and drops every later one. This is wire-stable behavior, not
// just an implementation shortcut — it decides which candidate offset the
// encoder tries first, and therefore which bytes end up in a Copy
// instruction.
package index

import "github.com/tomarus/gdelta/internal/gear"

// Index is a build-once, query-many hash table of sampled Base windows.
type Index struct {
	w     int
	table map[uint64]int
}

// Build scans base in strides of s, hashing each w-byte window with GEAR and
// inserting (fingerprint -> offset) into the index. On a fingerprint
// collision the earliest-inserted offset is retained; later ones are
// dropped silently.
//
// Table capacity is sized proportional to len(base)/s, keeping the load
// factor low without incremental growth during the build loop.
func Build(base []byte, w, s int) *Index {
	if s < 1 {
		s = 1
	}

	capacity := len(base)/s + 1
	idx := &Index{
		w:     w,
		table: make(map[uint64]int, capacity),
	}

	for i := 0; i+w <= len(base); i += s {
		f := gear.Sum(base[i : i+w])
		if _, exists := idx.table[f]; !exists {
			idx.table[f] = i
		}
	}

	return idx
}

// Lookup returns the Base offset recorded for fingerprint f, if any. When
// several sampled windows hashed to f, the offset is that of the earliest
// one; a fingerprint no sampled window hashed to is reported as ok == false
// ("no match here"). The index never returns more than one candidate per
// fingerprint.
func (idx *Index) Lookup(f uint64) (offset int, ok bool) {
	offset, ok = idx.table[f]
	return offset, ok
}

// Len reports the number of distinct fingerprints currently indexed.
func (idx *Index) Len() int {
	return len(idx.table)
}
