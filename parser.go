package gff

import (
	"encoding/binary"
	"math"

	"github.com/youx/gff/codepage"
	"github.com/youx/gff/errs"
	"github.com/youx/gff/internal/header"
)

// Parse decodes a complete GFF file and returns its root struct.
//
// Parse rejects any struct index reachable twice while walking the
// struct/list graph with errs.ErrCycleDetected: legitimate struct
// sharing (a DAG, rather than a tree) is rejected the same way as a
// true cycle back to an ancestor.
func Parse(data []byte, opts ...Option) (*Struct, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	h, blocks, err := header.Parse(data)
	if err != nil {
		return nil, err
	}

	p := &parser{h: h, blocks: blocks, profile: o.profile, visited: make(map[uint32]bool)}

	return p.parseStruct(0)
}

type parser struct {
	h       header.Header
	blocks  header.Blocks
	profile codepage.Profile
	visited map[uint32]bool
}

func (p *parser) parseStruct(idx uint32) (*Struct, error) {
	if idx >= p.h.Structs.Count {
		return nil, errs.IndexOutOfRange("struct", idx, p.h.Structs.Count)
	}
	if p.visited[idx] {
		return nil, errs.CycleDetected(idx)
	}
	p.visited[idx] = true

	rec := p.blocks.Structs[idx*12 : idx*12+12]
	typeTag := binary.LittleEndian.Uint32(rec[0:4])
	locator := binary.LittleEndian.Uint32(rec[4:8])
	fieldCount := binary.LittleEndian.Uint32(rec[8:12])

	s := NewStruct(typeTag)

	switch fieldCount {
	case 0:
		return s, nil
	case 1:
		label, v, err := p.parseField(locator)
		if err != nil {
			return nil, err
		}
		s.Set(label, v)

		return s, nil
	default:
		if locator%4 != 0 {
			return nil, errs.UnalignedOffset("field_indices", locator)
		}

		end := uint64(locator) + uint64(fieldCount)*4
		if end > uint64(len(p.blocks.FieldIndices)) {
			return nil, errs.IndexOutOfRange("field_indices", locator, uint32(len(p.blocks.FieldIndices)))
		}

		for i := uint32(0); i < fieldCount; i++ {
			off := locator + i*4
			fieldIdx := binary.LittleEndian.Uint32(p.blocks.FieldIndices[off : off+4])

			label, v, err := p.parseField(fieldIdx)
			if err != nil {
				return nil, err
			}
			s.Set(label, v)
		}

		return s, nil
	}
}

func (p *parser) parseField(idx uint32) (string, Value, error) {
	if idx >= p.h.Fields.Count {
		return "", nil, errs.IndexOutOfRange("field", idx, p.h.Fields.Count)
	}

	rec := p.blocks.Fields[idx*12 : idx*12+12]
	typeCode := binary.LittleEndian.Uint32(rec[0:4])
	labelIdx := binary.LittleEndian.Uint32(rec[4:8])
	slot := rec[8:12]

	label, err := p.parseLabel(labelIdx)
	if err != nil {
		return "", nil, err
	}

	v, err := p.parseFieldValue(FieldType(typeCode), slot)
	if err != nil {
		return "", nil, err
	}

	return label, v, nil
}

func (p *parser) parseFieldValue(t FieldType, slot []byte) (Value, error) {
	switch t {
	case TypeByte:
		return Byte(slot[0]), nil
	case TypeChar:
		return Char(int8(slot[0])), nil
	case TypeWord:
		return Word(binary.LittleEndian.Uint16(slot[0:2])), nil
	case TypeShort:
		return Short(int16(binary.LittleEndian.Uint16(slot[0:2]))), nil
	case TypeDWord:
		return DWord(binary.LittleEndian.Uint32(slot)), nil
	case TypeInt:
		return Int(int32(binary.LittleEndian.Uint32(slot))), nil
	case TypeFloat:
		return Float(math.Float32frombits(binary.LittleEndian.Uint32(slot))), nil
	case TypeDWord64:
		raw, err := p.fieldData(binary.LittleEndian.Uint32(slot), 8)
		if err != nil {
			return nil, err
		}

		return DWord64(binary.LittleEndian.Uint64(raw)), nil
	case TypeInt64:
		raw, err := p.fieldData(binary.LittleEndian.Uint32(slot), 8)
		if err != nil {
			return nil, err
		}

		return Int64(int64(binary.LittleEndian.Uint64(raw))), nil
	case TypeDouble:
		raw, err := p.fieldData(binary.LittleEndian.Uint32(slot), 8)
		if err != nil {
			return nil, err
		}

		return Double(math.Float64frombits(binary.LittleEndian.Uint64(raw))), nil
	case TypeCExoString:
		return p.parseCExoString(binary.LittleEndian.Uint32(slot))
	case TypeCResRef:
		return p.parseCResRef(binary.LittleEndian.Uint32(slot))
	case TypeCExoLocString:
		return p.parseLocString(binary.LittleEndian.Uint32(slot))
	case TypeVoid:
		return p.parseVoid(binary.LittleEndian.Uint32(slot))
	case TypeStruct:
		st, err := p.parseStruct(binary.LittleEndian.Uint32(slot))
		if err != nil {
			return nil, err
		}

		return StructValue{st}, nil
	case TypeList:
		return p.parseList(binary.LittleEndian.Uint32(slot))
	default:
		return nil, errs.BadFieldType(uint32(t))
	}
}

// fieldData returns n bytes of field_data starting at offset.
func (p *parser) fieldData(offset uint32, n int) ([]byte, error) {
	end := uint64(offset) + uint64(n)
	if end > uint64(len(p.blocks.FieldData)) {
		return nil, errs.IndexOutOfRange("field_data", offset, uint32(len(p.blocks.FieldData)))
	}

	return p.blocks.FieldData[offset:end], nil
}

func (p *parser) parseCExoString(offset uint32) (Value, error) {
	hdr, err := p.fieldData(offset, 4)
	if err != nil {
		return nil, err
	}

	n := binary.LittleEndian.Uint32(hdr)
	if rem := len(p.blocks.FieldData) - int(offset) - 4; uint64(n) > uint64(rem) {
		return nil, errs.StringLengthOverflow(int(n), rem)
	}

	raw, err := p.fieldData(offset+4, int(n))
	if err != nil {
		return nil, err
	}

	cp, err := p.profile.EncodingFor(nil)
	if err != nil {
		return nil, err
	}

	s, err := cp.Decode(raw)
	if err != nil {
		return nil, err
	}

	return CExoString(s), nil
}

func (p *parser) parseCResRef(offset uint32) (Value, error) {
	hdr, err := p.fieldData(offset, 1)
	if err != nil {
		return nil, err
	}

	n := int(hdr[0])
	if rem := len(p.blocks.FieldData) - int(offset) - 1; n > rem {
		return nil, errs.StringLengthOverflow(n, rem)
	}

	raw, err := p.fieldData(offset+1, n)
	if err != nil {
		return nil, err
	}

	cp, err := p.profile.EncodingFor(nil)
	if err != nil {
		return nil, err
	}

	s, err := cp.Decode(raw)
	if err != nil {
		return nil, err
	}

	return CResRef(toLowerASCII(s)), nil
}

func (p *parser) parseLocString(offset uint32) (Value, error) {
	hdr, err := p.fieldData(offset, 4)
	if err != nil {
		return nil, err
	}

	totalLen := binary.LittleEndian.Uint32(hdr)

	raw, err := p.fieldData(offset, 4+int(totalLen))
	if err != nil {
		return nil, err
	}

	ls, err := decodeLocString(raw, p.profile)
	if err != nil {
		return nil, err
	}

	return LocStringValue{ls}, nil
}

func (p *parser) parseVoid(offset uint32) (Value, error) {
	hdr, err := p.fieldData(offset, 4)
	if err != nil {
		return nil, err
	}

	n := binary.LittleEndian.Uint32(hdr)
	if rem := len(p.blocks.FieldData) - int(offset) - 4; uint64(n) > uint64(rem) {
		return nil, errs.StringLengthOverflow(int(n), rem)
	}

	raw, err := p.fieldData(offset+4, int(n))
	if err != nil {
		return nil, err
	}

	out := make(Void, len(raw))
	copy(out, raw)

	return out, nil
}

func (p *parser) parseList(offset uint32) (Value, error) {
	if offset%4 != 0 {
		return nil, errs.UnalignedOffset("list_indices", offset)
	}

	end := uint64(offset) + 4
	if end > uint64(len(p.blocks.ListIndices)) {
		return nil, errs.IndexOutOfRange("list_indices", offset, uint32(len(p.blocks.ListIndices)))
	}

	count := binary.LittleEndian.Uint32(p.blocks.ListIndices[offset:end])

	listEnd := end + uint64(count)*4
	if listEnd > uint64(len(p.blocks.ListIndices)) {
		return nil, errs.IndexOutOfRange("list_indices", offset, uint32(len(p.blocks.ListIndices)))
	}

	out := make(ListValue, count)
	for i := uint32(0); i < count; i++ {
		off := uint32(end) + i*4
		structIdx := binary.LittleEndian.Uint32(p.blocks.ListIndices[off : off+4])

		st, err := p.parseStruct(structIdx)
		if err != nil {
			return nil, err
		}
		out[i] = st
	}

	return out, nil
}

func (p *parser) parseLabel(idx uint32) (string, error) {
	if idx >= p.h.Labels.Count {
		return "", errs.IndexOutOfRange("label", idx, p.h.Labels.Count)
	}

	raw := p.blocks.Labels[idx*16 : idx*16+16]

	return decodeLabel(raw), nil
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}

	return string(b)
}
