// Package gff implements BioWare's Generic File Format (GFF) version 3.2,
// the binary, offset-table-indexed container Neverwinter Nights and
// related titles use to persist structured game objects — characters,
// dialogs, modules, and the rest.
//
// GFF is a graph-with-indices laid out across six parallel arrays:
// structs, fields, labels, field_data, field_indices, and list_indices.
// A field's 4-byte data slot either holds its value directly (inline,
// for Byte/Char/Word/Short/DWord/Int/Float) or an offset into one of
// the other blocks (out-of-line, for everything else, including the
// 8-byte DWord64/Int64/Double). Structs nest through indices, not
// pointers, and form a tree rooted at struct 0 — cycles are rejected.
//
// # Core Features
//
//   - Byte-exact packing: Pack(Parse(b)) reproduces b for any b this
//     package itself produced.
//   - A public, tagged-variant Value tree (Byte, Int, CExoString,
//     StructValue, ListValue, ...) that a compile-time struct-mapping
//     layer can be built on top of without the codec knowing about it.
//   - Per-game codepage resolution for localized strings via the
//     codepage package (Windows-1252/1250, EUC-KR, Big5, GBK, Shift-JIS).
//
// # Basic Usage
//
// Building and packing a struct:
//
//	import "github.com/youx/gff"
//
//	root := gff.NewStruct(0xFFFFFFFF).
//		Set("field1", gff.Byte(1)).
//		Set("field2", gff.CExoString("hello"))
//
//	data, err := gff.Pack(root, "BIC ")
//
// Parsing it back:
//
//	parsed, err := gff.Parse(data)
//	v, ok := parsed.Get("field2")
//
// Both Parse and Pack accept Options; WithProfile selects a non-default
// codepage.Profile for games whose language table differs from
// Neverwinter Nights's.
//
// # Package Structure
//
// This package holds the Value Model, Parser, and Packer — the core
// codec. Language-to-codepage resolution lives in the codepage
// subpackage, keeping a second game's language table addable without
// touching the codec itself.
package gff
