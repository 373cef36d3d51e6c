// Package corpus provides a small content-addressed cache of encoded
// fixtures for round-trip property tests: structs built once in Go,
// and the byte slices produced by packing them, keyed by an xxHash64
// digest of a human-readable fixture name.
//
// Tests use this instead of checked-in binary fixtures so every
// fixture's provenance is the Go code that built it.
package corpus

import "github.com/youx/gff/internal/hash"

// Key returns the content-address for a named fixture.
func Key(name string) uint64 {
	return hash.ID(name)
}

// Cache stores packed bytes keyed by fixture name, so a round-trip
// test can pack once, then parse and re-pack against the same
// reference bytes from multiple subtests.
type Cache struct {
	entries map[uint64][]byte
}

// NewCache creates an empty fixture cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[uint64][]byte)}
}

// Put records the packed bytes for a named fixture.
func (c *Cache) Put(name string, data []byte) {
	c.entries[Key(name)] = data
}

// Get returns the packed bytes recorded for a named fixture, if any.
func (c *Cache) Get(name string) ([]byte, bool) {
	b, ok := c.entries[Key(name)]

	return b, ok
}
