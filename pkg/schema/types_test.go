package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePropertyType(t *testing.T) {

	typ, err := ParsePropertyType("STRING")
	require.Nil(t, err)
	assert.Equal(t, PropertyTypeString, typ)

	typ, err = ParsePropertyType("weakreference")
	require.Nil(t, err)
	assert.Equal(t, PropertyTypeWeakReference, typ)

	typ, err = ParsePropertyType("*")
	require.Nil(t, err)
	assert.Equal(t, PropertyTypeUndefined, typ)

	_, err = ParsePropertyType("BOGUS")
	require.NotNil(t, err)
}

func TestPropertyTypeString(t *testing.T) {

	assert.Equal(t, "STRING", PropertyTypeString.String())
	assert.Equal(t, "UNDEFINED", PropertyTypeUndefined.String())
	assert.Equal(t, "WEAKREFERENCE", PropertyTypeWeakReference.String())
	assert.Equal(t, "UNDEFINED", PropertyType(999).String())
}

func TestParseOnParentVersion(t *testing.T) {

	v, err := ParseOnParentVersion("version")
	require.Nil(t, err)
	assert.Equal(t, OnParentVersionVersion, v)

	v, err = ParseOnParentVersion("ABORT")
	require.Nil(t, err)
	assert.Equal(t, OnParentVersionAbort, v)

	_, err = ParseOnParentVersion("mandatory")
	require.NotNil(t, err)
}

func TestIsOnParentVersionKeyword(t *testing.T) {

	assert.True(t, IsOnParentVersionKeyword("COPY"))
	assert.True(t, IsOnParentVersionKeyword("ignore"))
	assert.False(t, IsOnParentVersionKeyword("abstract"))
}

func TestGetNodeType(t *testing.T) {

	s := NewSchema()
	s.NodeTypes = append(s.NodeTypes, &NodeType{Name: "a"}, &NodeType{Name: "b"})

	require.NotNil(t, s.GetNodeType("b"))
	assert.Equal(t, "b", s.GetNodeType("b").Name)
	assert.Nil(t, s.GetNodeType("c"))
}
