// Package header parses and serializes the 56-byte GFF file header and
// slices the six fixed-order blocks that follow it.
//
// A GFF file is six parallel arrays addressed by a table of
// (offset, count) pairs: structs, fields, labels, field_data,
// field_indices, list_indices. The blocks are contiguous and always
// appear in that order; this package is the only place that knows the
// element sizes (12, 12, 16, and three byte-addressed blocks) and the
// running-offset check that ties them together.
//
// # Layout
//
//	┌────────────────────────────────────────────┐
//	│ Header (56 bytes)                           │
//	│  - gff_type (4), version (4)                │
//	│  - 6 × (offset u32, count u32)               │
//	├────────────────────────────────────────────┤
//	│ structs       (count × 12 bytes)            │
//	│ fields        (count × 12 bytes)            │
//	│ labels        (count × 16 bytes)            │
//	│ field_data    (count bytes)                 │
//	│ field_indices (count bytes, mult. of 4)     │
//	│ list_indices  (count bytes, mult. of 4)     │
//	└────────────────────────────────────────────┘
package header
