// Package testutil provides small helpers shared by the test suites across
// gdelta's packages.
package testutil

import "github.com/cespare/xxhash/v2"

// Fingerprint computes a stable xxHash64 digest of data, used by tests that
// generate large random or synthetic corpora and want a short, comparable
// identifier for a test failure message rather than dumping the whole
// buffer.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
