package gff

// Value is the payload of a single GFF field: one of the sixteen wire
// variants named by FieldType. It is a closed set; the concrete types
// below are the only implementations this package defines or expects.
type Value interface {
	// Kind reports which of the sixteen GFF field types a Value is.
	Kind() FieldType
}

// Byte is an unsigned 8-bit inline field.
type Byte uint8

// Kind implements Value.
func (Byte) Kind() FieldType { return TypeByte }

// Char is a signed 8-bit inline field.
type Char int8

// Kind implements Value.
func (Char) Kind() FieldType { return TypeChar }

// Word is an unsigned 16-bit inline field.
type Word uint16

// Kind implements Value.
func (Word) Kind() FieldType { return TypeWord }

// Short is a signed 16-bit inline field.
type Short int16

// Kind implements Value.
func (Short) Kind() FieldType { return TypeShort }

// DWord is an unsigned 32-bit inline field.
type DWord uint32

// Kind implements Value.
func (DWord) Kind() FieldType { return TypeDWord }

// Int is a signed 32-bit inline field.
type Int int32

// Kind implements Value.
func (Int) Kind() FieldType { return TypeInt }

// DWord64 is an unsigned 64-bit field stored out-of-line in field_data.
type DWord64 uint64

// Kind implements Value.
func (DWord64) Kind() FieldType { return TypeDWord64 }

// Int64 is a signed 64-bit field stored out-of-line in field_data.
type Int64 int64

// Kind implements Value.
func (Int64) Kind() FieldType { return TypeInt64 }

// Float is a 32-bit IEEE-754 inline field.
type Float float32

// Kind implements Value.
func (Float) Kind() FieldType { return TypeFloat }

// Double is a 64-bit IEEE-754 field stored out-of-line in field_data.
type Double float64

// Kind implements Value.
func (Double) Kind() FieldType { return TypeDouble }

// CExoString is a non-localized, length-prefixed string stored
// out-of-line in field_data.
type CExoString string

// Kind implements Value.
func (CExoString) Kind() FieldType { return TypeCExoString }

// CResRef is a resource reference: a case-insensitive string up to 16
// bytes long, stored out-of-line with a single-byte length prefix.
// Parse always lowercases it; Pack rejects values over 16 bytes.
type CResRef string

// Kind implements Value.
func (CResRef) Kind() FieldType { return TypeCResRef }

// LocStringValue is a localized string field: a talk-table reference
// plus per-(language, gender) substrings.
type LocStringValue struct {
	LocString
}

// Kind implements Value.
func (LocStringValue) Kind() FieldType { return TypeCExoLocString }

// Void is an opaque, length-prefixed byte blob stored out-of-line in
// field_data. The codec never interprets its contents.
type Void []byte

// Kind implements Value.
func (Void) Kind() FieldType { return TypeVoid }

// StructValue is a nested struct field. Its slot holds the referenced
// struct's index rather than a byte offset.
type StructValue struct {
	*Struct
}

// Kind implements Value.
func (StructValue) Kind() FieldType { return TypeStruct }

// ListValue is an ordered list of nested structs. Its slot holds the
// byte offset of the list's entry in list_indices.
type ListValue []*Struct

// Kind implements Value.
func (ListValue) Kind() FieldType { return TypeList }

// Equal reports whether two Values carry the same Kind and the same
// data, recursing into nested structs and lists. Struct field order is
// not significant; List element order is.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case Byte:
		return av == b.(Byte)
	case Char:
		return av == b.(Char)
	case Word:
		return av == b.(Word)
	case Short:
		return av == b.(Short)
	case DWord:
		return av == b.(DWord)
	case Int:
		return av == b.(Int)
	case DWord64:
		return av == b.(DWord64)
	case Int64:
		return av == b.(Int64)
	case Float:
		return av == b.(Float)
	case Double:
		return av == b.(Double)
	case CExoString:
		return av == b.(CExoString)
	case CResRef:
		return av == b.(CResRef)
	case LocStringValue:
		return equalLocString(av.LocString, b.(LocStringValue).LocString)
	case Void:
		bv := b.(Void)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}

		return true
	case StructValue:
		return av.Struct.Equal(b.(StructValue).Struct)
	case ListValue:
		bv := b.(ListValue)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !av[i].Equal(bv[i]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
