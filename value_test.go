package gff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/youx/gff"
)

func TestFieldTypeString(t *testing.T) {
	assert.Equal(t, "Byte", gff.TypeByte.String())
	assert.Equal(t, "CExoLocString", gff.TypeCExoLocString.String())
	assert.Equal(t, "List", gff.TypeList.String())
}

func TestValueEqualScalars(t *testing.T) {
	assert.True(t, gff.Equal(gff.Byte(1), gff.Byte(1)))
	assert.False(t, gff.Equal(gff.Byte(1), gff.Byte(2)))
	assert.False(t, gff.Equal(gff.Byte(1), gff.Word(1)))
}

func TestValueEqualVoid(t *testing.T) {
	assert.True(t, gff.Equal(gff.Void{1, 2}, gff.Void{1, 2}))
	assert.False(t, gff.Equal(gff.Void{1, 2}, gff.Void{1, 3}))
	assert.False(t, gff.Equal(gff.Void{1, 2}, gff.Void{1, 2, 3}))
}

func TestValueEqualNestedStructsAndLists(t *testing.T) {
	inner1 := gff.NewStruct(1).Set("a", gff.Byte(1))
	inner2 := gff.NewStruct(1).Set("a", gff.Byte(1))

	a := gff.ListValue{inner1}
	b := gff.ListValue{inner2}
	assert.True(t, gff.Equal(a, b))

	assert.True(t, gff.Equal(gff.StructValue{Struct: inner1}, gff.StructValue{Struct: inner2}))
}

func TestLocStringWithGetRoundTrips(t *testing.T) {
	l := gff.NewLocString(gff.NoTlkRef).
		With(gff.LangEnglish, gff.GenderMale, "hi").
		With(gff.LangEnglish, gff.GenderMale, "hello")

	assert.Len(t, l.Entries, 1)

	text, ok := l.Get(gff.LangEnglish, gff.GenderMale)
	assert.True(t, ok)
	assert.Equal(t, "hello", text)

	_, ok = l.Get(gff.LangFrench, gff.GenderMale)
	assert.False(t, ok)
}
