package gff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youx/gff"
)

func TestStructSetPreservesInsertionOrderAndReplaces(t *testing.T) {
	s := gff.NewStruct(1).
		Set("a", gff.Byte(1)).
		Set("b", gff.Byte(2)).
		Set("a", gff.Byte(9))

	fields := s.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].Label)
	assert.Equal(t, gff.Byte(9), fields[0].Value)
	assert.Equal(t, "b", fields[1].Label)
}

func TestStructGetMissingField(t *testing.T) {
	s := gff.NewStruct(1)
	_, ok := s.Get("nope")
	assert.False(t, ok)
}

func TestStructEqualIgnoresFieldOrder(t *testing.T) {
	a := gff.NewStruct(1).Set("x", gff.Byte(1)).Set("y", gff.Byte(2))
	b := gff.NewStruct(1).Set("y", gff.Byte(2)).Set("x", gff.Byte(1))
	assert.True(t, a.Equal(b))

	c := gff.NewStruct(1).Set("x", gff.Byte(1))
	assert.False(t, a.Equal(c))
}

func TestStructEqualDiffersOnTypeTag(t *testing.T) {
	a := gff.NewStruct(1)
	b := gff.NewStruct(2)
	assert.False(t, a.Equal(b))
}
