package gff

// FieldType is the wire type code stored in a field record, 0-15.
type FieldType uint32

const (
	TypeByte FieldType = iota
	TypeChar
	TypeWord
	TypeShort
	TypeDWord
	TypeInt
	TypeDWord64
	TypeInt64
	TypeFloat
	TypeDouble
	TypeCExoString
	TypeCResRef
	TypeCExoLocString
	TypeVoid
	TypeStruct
	TypeList
)

func (t FieldType) String() string {
	switch t {
	case TypeByte:
		return "Byte"
	case TypeChar:
		return "Char"
	case TypeWord:
		return "Word"
	case TypeShort:
		return "Short"
	case TypeDWord:
		return "DWord"
	case TypeInt:
		return "Int"
	case TypeDWord64:
		return "DWord64"
	case TypeInt64:
		return "Int64"
	case TypeFloat:
		return "Float"
	case TypeDouble:
		return "Double"
	case TypeCExoString:
		return "CExoString"
	case TypeCResRef:
		return "CResRef"
	case TypeCExoLocString:
		return "CExoLocString"
	case TypeVoid:
		return "Void"
	case TypeStruct:
		return "Struct"
	case TypeList:
		return "List"
	default:
		return "Unknown"
	}
}

// inline reports whether a field of type t stores its value directly
// in the 4-byte field data slot, as opposed to an offset into
// field_data.
func (t FieldType) inline() bool {
	switch t {
	case TypeByte, TypeChar, TypeWord, TypeShort, TypeDWord, TypeInt, TypeFloat:
		return true
	default:
		return false
	}
}

// Language identifies one of the ten BioWare-defined GFF languages a
// CExoLocString substring can be written in.
type Language uint32

const (
	LangEnglish      Language = 0
	LangFrench       Language = 1
	LangGerman       Language = 2
	LangItalian      Language = 3
	LangSpanish      Language = 4
	LangPolish       Language = 5
	LangKorean       Language = 128
	LangChineseTrad  Language = 129
	LangChineseSimpl Language = 130
	LangJapanese     Language = 131
)

func (l Language) String() string {
	switch l {
	case LangEnglish:
		return "English"
	case LangFrench:
		return "French"
	case LangGerman:
		return "German"
	case LangItalian:
		return "Italian"
	case LangSpanish:
		return "Spanish"
	case LangPolish:
		return "Polish"
	case LangKorean:
		return "Korean"
	case LangChineseTrad:
		return "ChineseTrad"
	case LangChineseSimpl:
		return "ChineseSimpl"
	case LangJapanese:
		return "Japanese"
	default:
		return "Unknown"
	}
}

// Gender is the grammatical gender a CExoLocString substring was
// written for.
type Gender uint32

const (
	GenderMale Gender = iota
	GenderFemale
)

func (g Gender) String() string {
	if g == GenderFemale {
		return "Female"
	}

	return "Male"
}

// substringKey computes the CExoLocString wire key for (lang, gender):
// 2*lang + gender.
func substringKey(lang Language, gender Gender) uint32 {
	return 2*uint32(lang) + uint32(gender)
}

// languageFromKey recovers (lang, gender) from a wire substring key.
func languageFromKey(key uint32) (Language, Gender) {
	return Language(key / 2), Gender(key % 2)
}
