package gff

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/youx/gff/codepage"
	"github.com/youx/gff/errs"
	"github.com/youx/gff/internal/header"
	"github.com/youx/gff/internal/pool"
)

// Pack serializes root into a complete GFF file with the given 4-byte
// type tag (e.g. "BIC ", "UTC "). Short tags are padded with spaces;
// tags longer than 4 bytes are truncated to 4.
//
// Struct indices are assigned breadth-first starting from root (index
// 0); this matches the order a conforming GFF writer uses and keeps
// Pack(Parse(b)) byte-identical to b for any b this package produced.
func Pack(root *Struct, typeTag string, opts ...Option) ([]byte, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	p := &packer{profile: o.profile, labelIdx: make(map[string]uint32)}

	queue := []*Struct{root}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		children, err := p.packStruct(next)
		if err != nil {
			return nil, err
		}
		queue = append(queue, children...)
	}

	h := p.finalize(typeTag)
	if uint64(h.Structs.Count)*12 != uint64(len(p.structs)) ||
		uint64(h.Fields.Count)*12 != uint64(len(p.fields)) ||
		uint64(h.Labels.Count)*16 != uint64(len(p.labels)) {
		return nil, fmt.Errorf("gff: block sizes disagree with header counts")
	}

	bb := pool.Get()
	defer pool.Put(bb)

	bb.Grow(header.Size + len(p.structs) + len(p.fields) + len(p.labels) +
		len(p.fieldData) + len(p.fieldIndices) + len(p.listIndices))
	bb.MustWrite(h.Bytes())
	bb.MustWrite(p.structs)
	bb.MustWrite(p.fields)
	bb.MustWrite(p.labels)
	bb.MustWrite(p.fieldData)
	bb.MustWrite(p.fieldIndices)
	bb.MustWrite(p.listIndices)

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

type packer struct {
	profile codepage.Profile

	labelIdx map[string]uint32
	labels   []byte

	structs      []byte
	structCount  uint32
	fields       []byte
	fieldCount   uint32
	fieldData    []byte
	fieldIndices []byte
	listIndices  []byte

	nextStructIdx uint32
}

// packStruct appends one struct record (and its fields) to the output
// buffers and returns the nested structs discovered along the way, in
// the order their fields were written, so the caller can enqueue them
// for breadth-first packing.
func (p *packer) packStruct(s *Struct) ([]*Struct, error) {
	p.structs = appendU32(p.structs, s.Type)

	var locator uint32
	fieldIndices := make([]uint32, 0, s.Len())
	var children []*Struct

	for _, f := range s.Fields() {
		idx, kids, err := p.packField(f.Label, f.Value)
		if err != nil {
			return nil, err
		}

		fieldIndices = append(fieldIndices, idx)
		children = append(children, kids...)
	}

	switch len(fieldIndices) {
	case 0:
		locator = p.fieldCount
		p.structs = appendU32(p.structs, locator)
		p.structs = appendU32(p.structs, 0)
	case 1:
		locator = fieldIndices[0]
		p.structs = appendU32(p.structs, locator)
		p.structs = appendU32(p.structs, 1)
	default:
		locator = uint32(len(p.fieldIndices))
		p.structs = appendU32(p.structs, locator)
		p.structs = appendU32(p.structs, uint32(len(fieldIndices)))
		for _, idx := range fieldIndices {
			p.fieldIndices = appendU32(p.fieldIndices, idx)
		}
	}

	p.structCount++

	return children, nil
}

// packField appends one field record (and its field_data/list_indices
// payload, if any) and returns the field's index plus any nested
// structs it introduced.
func (p *packer) packField(label string, v Value) (uint32, []*Struct, error) {
	labelIdx, err := p.packLabel(label)
	if err != nil {
		return 0, nil, err
	}

	fieldIdx := p.fieldCount
	p.fieldCount++

	var children []*Struct

	switch val := v.(type) {
	case Byte:
		p.appendField(uint32(TypeByte), labelIdx, []byte{byte(val), 0, 0, 0})
	case Char:
		p.appendField(uint32(TypeChar), labelIdx, []byte{byte(val), 0, 0, 0})
	case Word:
		var b [4]byte
		binary.LittleEndian.PutUint16(b[0:2], uint16(val))
		p.appendField(uint32(TypeWord), labelIdx, b[:])
	case Short:
		var b [4]byte
		binary.LittleEndian.PutUint16(b[0:2], uint16(val))
		p.appendField(uint32(TypeShort), labelIdx, b[:])
	case DWord:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(val))
		p.appendField(uint32(TypeDWord), labelIdx, b[:])
	case Int:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(val))
		p.appendField(uint32(TypeInt), labelIdx, b[:])
	case Float:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(float32(val)))
		p.appendField(uint32(TypeFloat), labelIdx, b[:])
	case DWord64:
		offset := p.appendFieldData8(uint64(val))
		p.appendOffsetField(uint32(TypeDWord64), labelIdx, offset)
	case Int64:
		offset := p.appendFieldData8(uint64(val))
		p.appendOffsetField(uint32(TypeInt64), labelIdx, offset)
	case Double:
		offset := p.appendFieldData8(math.Float64bits(float64(val)))
		p.appendOffsetField(uint32(TypeDouble), labelIdx, offset)
	case CExoString:
		offset := uint32(len(p.fieldData))
		cp, err := p.profile.EncodingFor(nil)
		if err != nil {
			return 0, nil, err
		}
		raw, err := cp.Encode(string(val))
		if err != nil {
			return 0, nil, err
		}
		p.fieldData = appendU32(p.fieldData, uint32(len(raw)))
		p.fieldData = append(p.fieldData, raw...)
		p.appendOffsetField(uint32(TypeCExoString), labelIdx, offset)
	case CResRef:
		offset := uint32(len(p.fieldData))
		lowered := toLowerASCII(string(val))
		cp, err := p.profile.EncodingFor(nil)
		if err != nil {
			return 0, nil, err
		}
		raw, err := cp.Encode(lowered)
		if err != nil {
			return 0, nil, err
		}
		if len(raw) > maxResRefLen {
			return 0, nil, errs.ResRefTooLong(lowered)
		}
		p.fieldData = append(p.fieldData, byte(len(raw)))
		p.fieldData = append(p.fieldData, raw...)
		p.appendOffsetField(uint32(TypeCResRef), labelIdx, offset)
	case LocStringValue:
		offset := uint32(len(p.fieldData))
		raw, err := encodeLocString(val.LocString, p.profile)
		if err != nil {
			return 0, nil, err
		}
		p.fieldData = append(p.fieldData, raw...)
		p.appendOffsetField(uint32(TypeCExoLocString), labelIdx, offset)
	case Void:
		offset := uint32(len(p.fieldData))
		p.fieldData = appendU32(p.fieldData, uint32(len(val)))
		p.fieldData = append(p.fieldData, val...)
		p.appendOffsetField(uint32(TypeVoid), labelIdx, offset)
	case StructValue:
		p.nextStructIdx++
		idx := p.nextStructIdx
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], idx)
		p.appendField(uint32(TypeStruct), labelIdx, b[:])
		children = append(children, val.Struct)
	case ListValue:
		offset := uint32(len(p.listIndices))
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], offset)
		p.appendField(uint32(TypeList), labelIdx, b[:])

		p.listIndices = appendU32(p.listIndices, uint32(len(val)))
		for _, st := range val {
			p.nextStructIdx++
			p.listIndices = appendU32(p.listIndices, p.nextStructIdx)
			children = append(children, st)
		}
	default:
		return 0, nil, fmt.Errorf("gff: unsupported value type %T", v)
	}

	return fieldIdx, children, nil
}

func (p *packer) appendField(typeCode, labelIdx uint32, slot []byte) {
	p.fields = appendU32(p.fields, typeCode)
	p.fields = appendU32(p.fields, labelIdx)
	p.fields = append(p.fields, slot...)
}

func (p *packer) appendOffsetField(typeCode, labelIdx, offset uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], offset)
	p.appendField(typeCode, labelIdx, b[:])
}

func (p *packer) appendFieldData8(val uint64) uint32 {
	offset := uint32(len(p.fieldData))
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], val)
	p.fieldData = append(p.fieldData, b[:]...)

	return offset
}

func (p *packer) packLabel(label string) (uint32, error) {
	if idx, ok := p.labelIdx[label]; ok {
		return idx, nil
	}

	enc, err := encodeLabel(label)
	if err != nil {
		return 0, err
	}

	idx := uint32(len(p.labelIdx))
	p.labelIdx[label] = idx
	p.labels = append(p.labels, enc[:]...)

	return idx, nil
}

func (p *packer) finalize(typeTag string) header.Header {
	var tag [4]byte
	copy(tag[:], []byte("    "))
	copy(tag[:], typeTag)

	h := header.Header{Type: tag, Version: header.Version}

	offset := uint32(header.Size)

	h.Structs = header.BlockOffsets{Offset: offset, Count: p.structCount}
	offset += uint32(len(p.structs))

	h.Fields = header.BlockOffsets{Offset: offset, Count: p.fieldCount}
	offset += uint32(len(p.fields))

	h.Labels = header.BlockOffsets{Offset: offset, Count: uint32(len(p.labelIdx))}
	offset += uint32(len(p.labels))

	h.FieldData = header.BlockOffsets{Offset: offset, Count: uint32(len(p.fieldData))}
	offset += uint32(len(p.fieldData))

	h.FieldIndices = header.BlockOffsets{Offset: offset, Count: uint32(len(p.fieldIndices))}
	offset += uint32(len(p.fieldIndices))

	h.ListIndices = header.BlockOffsets{Offset: offset, Count: uint32(len(p.listIndices))}

	return h
}
