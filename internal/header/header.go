package header

import (
	"encoding/binary"

	"github.com/youx/gff/errs"
)

// Size is the fixed byte length of a GFF header.
const Size = 56

const (
	structElemSize = 12
	fieldElemSize  = 12
	labelElemSize  = 16
)

// Version is the only version tag this package understands.
var Version = [4]byte{'V', '3', '.', '2'}

// BlockOffsets is the (offset, count) pair the header stores for one
// block. Count is an element count for structs/fields/labels, and a
// byte count for field_data/field_indices/list_indices.
type BlockOffsets struct {
	Offset uint32
	Count  uint32
}

// Header is the parsed form of the 56-byte file header.
type Header struct {
	Type         [4]byte
	Version      [4]byte
	Structs      BlockOffsets
	Fields       BlockOffsets
	Labels       BlockOffsets
	FieldData    BlockOffsets
	FieldIndices BlockOffsets
	ListIndices  BlockOffsets
}

// Blocks holds the six block byte slices that Parse slices out of the
// file buffer. The packer keeps its own block buffers and does not use
// this type.
type Blocks struct {
	Structs      []byte
	Fields       []byte
	Labels       []byte
	FieldData    []byte
	FieldIndices []byte
	ListIndices  []byte
}

// Parse decodes the header at the start of data and slices the six
// blocks that follow it. Each block's declared offset must equal the
// running byte position computed from the sizes of the preceding
// blocks; any mismatch, any declared block that runs past the end of
// data, or any trailing byte after list_indices, fails with
// errs.ErrMalformedHeader.
func Parse(data []byte) (Header, Blocks, error) {
	var h Header
	var b Blocks

	if len(data) < Size {
		return h, b, errs.MalformedHeader("input shorter than 56-byte header")
	}

	copy(h.Type[:], data[0:4])
	copy(h.Version[:], data[4:8])

	readPair := func(off int) BlockOffsets {
		return BlockOffsets{
			Offset: binary.LittleEndian.Uint32(data[off : off+4]),
			Count:  binary.LittleEndian.Uint32(data[off+4 : off+8]),
		}
	}
	h.Structs = readPair(8)
	h.Fields = readPair(16)
	h.Labels = readPair(24)
	h.FieldData = readPair(32)
	h.FieldIndices = readPair(40)
	h.ListIndices = readPair(48)

	expected := uint32(Size)

	take := func(name string, bo BlockOffsets, elemSize uint32, byteAddressed bool) ([]byte, error) {
		if bo.Offset != expected {
			return nil, errs.MalformedHeader(name + " offset does not match the expected block layout")
		}

		size := bo.Count
		if !byteAddressed {
			size = bo.Count * elemSize
		}

		end := uint64(bo.Offset) + uint64(size)
		if end > uint64(len(data)) {
			return nil, errs.MalformedHeader(name + " block runs past the end of input")
		}

		expected += size

		return data[bo.Offset:end], nil
	}

	var err error
	if b.Structs, err = take("structs", h.Structs, structElemSize, false); err != nil {
		return h, b, err
	}
	if b.Fields, err = take("fields", h.Fields, fieldElemSize, false); err != nil {
		return h, b, err
	}
	if b.Labels, err = take("labels", h.Labels, labelElemSize, false); err != nil {
		return h, b, err
	}
	if b.FieldData, err = take("field_data", h.FieldData, 1, true); err != nil {
		return h, b, err
	}
	if h.FieldIndices.Count%4 != 0 {
		return h, b, errs.MalformedHeader("field_indices count is not a multiple of 4")
	}
	if b.FieldIndices, err = take("field_indices", h.FieldIndices, 1, true); err != nil {
		return h, b, err
	}
	if h.ListIndices.Count%4 != 0 {
		return h, b, errs.MalformedHeader("list_indices count is not a multiple of 4")
	}
	if b.ListIndices, err = take("list_indices", h.ListIndices, 1, true); err != nil {
		return h, b, err
	}

	if uint64(expected) != uint64(len(data)) {
		return h, b, errs.MalformedHeader("trailing bytes after list_indices block")
	}

	return h, b, nil
}

// Bytes serializes the header into its 56-byte on-wire form. Callers
// must have already set every BlockOffsets field to its final value.
func (h Header) Bytes() []byte {
	out := make([]byte, Size)
	copy(out[0:4], h.Type[:])
	copy(out[4:8], h.Version[:])

	writePair := func(off int, bo BlockOffsets) {
		binary.LittleEndian.PutUint32(out[off:off+4], bo.Offset)
		binary.LittleEndian.PutUint32(out[off+4:off+8], bo.Count)
	}
	writePair(8, h.Structs)
	writePair(16, h.Fields)
	writePair(24, h.Labels)
	writePair(32, h.FieldData)
	writePair(40, h.FieldIndices)
	writePair(48, h.ListIndices)

	return out
}
