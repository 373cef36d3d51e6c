package gff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youx/gff"
	"github.com/youx/gff/internal/corpus"
)

func TestPackSingleByteField(t *testing.T) {
	root := gff.NewStruct(0xFFFFFFFF).Set("field1", gff.Byte(1))

	data, err := gff.Pack(root, "BIC ")
	require.NoError(t, err)

	parsed, err := gff.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.Len())

	v, ok := parsed.Get("field1")
	require.True(t, ok)
	assert.Equal(t, gff.Byte(1), v)
}

func TestPackSevenPrimitiveFields(t *testing.T) {
	root := gff.NewStruct(0xFFFFFFFF).
		Set("field1", gff.Byte(1)).
		Set("field2", gff.Char(2)).
		Set("field3", gff.Word(3)).
		Set("field4", gff.Short(4)).
		Set("field5", gff.DWord(5)).
		Set("field6", gff.Int(6)).
		Set("field7", gff.Float(7.7))

	data, err := gff.Pack(root, "BIC ")
	require.NoError(t, err)

	parsed, err := gff.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 7, parsed.Len())

	for _, want := range root.Fields() {
		got, ok := parsed.Get(want.Label)
		require.True(t, ok)
		assert.Equal(t, want.Value, got)
	}
}

func TestPackCExoString(t *testing.T) {
	root := gff.NewStruct(0xFFFFFFFF).Set("name", gff.CExoString("test"))

	data, err := gff.Pack(root, "BIC ")
	require.NoError(t, err)

	parsed, err := gff.Parse(data)
	require.NoError(t, err)

	v, ok := parsed.Get("name")
	require.True(t, ok)
	assert.Equal(t, gff.CExoString("test"), v)
}

func TestPackCResRefIsLowercased(t *testing.T) {
	root := gff.NewStruct(0xFFFFFFFF).Set("template", gff.CResRef("TeSt"))

	data, err := gff.Pack(root, "UTC ")
	require.NoError(t, err)

	parsed, err := gff.Parse(data)
	require.NoError(t, err)

	v, ok := parsed.Get("template")
	require.True(t, ok)
	assert.Equal(t, gff.CResRef("test"), v)
}

func TestPackLocalizedString(t *testing.T) {
	loc := gff.NewLocString(0x1234).
		With(gff.LangEnglish, gff.GenderMale, "Hello").
		With(gff.LangFrench, gff.GenderMale, "Salut")

	root := gff.NewStruct(0xFFFFFFFF).Set("description", gff.LocStringValue{LocString: loc})

	data, err := gff.Pack(root, "DLG ")
	require.NoError(t, err)

	parsed, err := gff.Parse(data)
	require.NoError(t, err)

	v, ok := parsed.Get("description")
	require.True(t, ok)

	got := v.(gff.LocStringValue)
	assert.Equal(t, uint32(0x1234), got.TlkRef)

	en, ok := got.Get(gff.LangEnglish, gff.GenderMale)
	require.True(t, ok)
	assert.Equal(t, "Hello", en)

	fr, ok := got.Get(gff.LangFrench, gff.GenderMale)
	require.True(t, ok)
	assert.Equal(t, "Salut", fr)
}

func TestPackNestedStructsViaList(t *testing.T) {
	s1 := gff.NewStruct(1).Set("a", gff.Byte(1))
	s2 := gff.NewStruct(2).Set("b", gff.Byte(2))
	root := gff.NewStruct(0xFFFFFFFF).Set("items", gff.ListValue{s1, s2})

	data, err := gff.Pack(root, "MOD ")
	require.NoError(t, err)

	parsed, err := gff.Parse(data)
	require.NoError(t, err)

	v, ok := parsed.Get("items")
	require.True(t, ok)

	list := v.(gff.ListValue)
	require.Len(t, list, 2)
	assert.Equal(t, uint32(1), list[0].Type)
	assert.Equal(t, uint32(2), list[1].Type)
}

func TestPackParseRoundTripIsStructurallyEqual(t *testing.T) {
	inner := gff.NewStruct(7).Set("x", gff.Int(-1))
	root := gff.NewStruct(0xFFFFFFFF).
		Set("name", gff.CExoString("hero")).
		Set("level", gff.Byte(12)).
		Set("data", gff.Void{0x01, 0x02, 0x03}).
		Set("nested", gff.StructValue{Struct: inner})

	data, err := gff.Pack(root, "BIC ")
	require.NoError(t, err)

	parsed, err := gff.Parse(data)
	require.NoError(t, err)
	assert.True(t, root.Equal(parsed))
}

func TestParsePackRoundTripIsByteIdentical(t *testing.T) {
	root := gff.NewStruct(0xFFFFFFFF).
		Set("field1", gff.Byte(1)).
		Set("field2", gff.CExoString("hi"))

	original, err := gff.Pack(root, "BIC ")
	require.NoError(t, err)

	parsed, err := gff.Parse(original)
	require.NoError(t, err)

	repacked, err := gff.Pack(parsed, "BIC ")
	require.NoError(t, err)
	assert.Equal(t, original, repacked)
}

func TestCorpusFixturesRoundTripByteIdentically(t *testing.T) {
	cache := corpus.NewCache()

	fixtures := map[string]*gff.Struct{
		"minimal":  gff.NewStruct(0xFFFFFFFF),
		"one-byte": gff.NewStruct(0xFFFFFFFF).Set("f", gff.Byte(9)),
	}

	for name, s := range fixtures {
		data, err := gff.Pack(s, "BIC ")
		require.NoError(t, err)
		cache.Put(name, data)
	}

	for name := range fixtures {
		data, ok := cache.Get(name)
		require.True(t, ok)

		parsed, err := gff.Parse(data)
		require.NoError(t, err)

		repacked, err := gff.Pack(parsed, "BIC ")
		require.NoError(t, err)
		assert.Equal(t, data, repacked)
	}
}

func TestParseRejectsCyclicStructReference(t *testing.T) {
	// Hand-built file: struct 0 holds a Struct field pointing at struct 1,
	// which holds a Struct field pointing back at struct 0.
	//
	// Two structs, two fields (one per struct), one label reused twice.
	// struct 0: type=0, locator=0 (field idx), count=1
	// struct 1: type=0, locator=1 (field idx), count=1
	structs := concatU32(0, 0, 1, 0, 1, 1)
	// field 0: type=Struct(14), label=0, slot=struct idx 1
	// field 1: type=Struct(14), label=0, slot=struct idx 0
	fields := concatU32(14, 0, 1, 14, 0, 0)
	labels := make([]byte, 16)

	data := buildFile(structs, fields, labels, nil, nil, nil)

	_, err := gff.Parse(data)
	assert.Error(t, err)
}

func concatU32(vals ...uint32) []byte {
	out := make([]byte, 0, len(vals)*4)
	for _, v := range vals {
		out = append(out, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}

	return out
}

func buildFile(structs, fields, labels, fieldData, fieldIndices, listIndices []byte) []byte {
	out := make([]byte, 56)
	copy(out[0:4], []byte("BIC "))
	copy(out[4:8], []byte("V3.2"))

	offset := uint32(56)
	writePair := func(pos int, count uint32, byteLen uint32) {
		putU32(out[pos:pos+4], offset)
		putU32(out[pos+4:pos+8], count)
		offset += byteLen
	}

	writePair(8, uint32(len(structs)/12), uint32(len(structs)))
	writePair(16, uint32(len(fields)/12), uint32(len(fields)))
	writePair(24, uint32(len(labels)/16), uint32(len(labels)))
	writePair(32, uint32(len(fieldData)), uint32(len(fieldData)))
	writePair(40, uint32(len(fieldIndices)), uint32(len(fieldIndices)))
	writePair(48, uint32(len(listIndices)), uint32(len(listIndices)))

	out = append(out, structs...)
	out = append(out, fields...)
	out = append(out, labels...)
	out = append(out, fieldData...)
	out = append(out, fieldIndices...)
	out = append(out, listIndices...)

	return out
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
