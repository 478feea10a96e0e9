package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbirk/cnd/pkg/parse"
	"github.com/kbirk/cnd/pkg/schema"
)

func TestWriteCND(t *testing.T) {

	s := schema.NewSchema()
	s.Namespaces["ns"] = "http://example.org/ns"
	s.NodeTypes = append(s.NodeTypes, &schema.NodeType{
		Name:       "ns:doc",
		Supertypes: []string{"nt:base"},
		Abstract:   true,
		Queryable:  true,
		Properties: []*schema.PropertyDefinition{
			{
				Name:               "ns:title",
				RequiredType:       schema.PropertyTypeString,
				DefaultValues:      []string{"Untitled"},
				Mandatory:          true,
				FullTextSearchable: true,
				QueryOrderable:     true,
			},
		},
	})

	out := s.WriteCND()

	assert.Contains(t, out, "<ns = 'http://example.org/ns'>")
	assert.Contains(t, out, "[ns:doc] > nt:base abstract")
	assert.Contains(t, out, "- ns:title (STRING) = 'Untitled' mandatory")
}

func TestWriteCNDQuotesNames(t *testing.T) {

	s := schema.NewSchema()
	s.NodeTypes = append(s.NodeTypes, &schema.NodeType{
		Name:      "my weird name",
		Queryable: true,
	})

	out := s.WriteCND()
	assert.Contains(t, out, "['my weird name']")
}

func TestWriteCNDRoundTrip(t *testing.T) {

	content := `
		<ns = 'http://example.org/ns'>

		[ns:doc] > nt:base, mix:referenceable abstract orderable primaryitem ns:title
		  - ns:title (STRING) = 'Untitled' mandatory autocreated
		  - ns:pages (LONG) protected multiple VERSION < '[0,100]'
		  - * (UNDEFINED) nofulltext noqueryorder
		  + ns:attachment (nt:base, nt:unstructured) = nt:unstructured mandatory sns IGNORE
		  + * (nt:base) protected

		[ns:folder] > nt:base mixin noquery
	`

	first, err := parse.Parse(content)
	require.Nil(t, err)

	second, err := parse.Parse(first.WriteCND())
	require.Nil(t, err)

	assert.Equal(t, first, second)
}

func TestWriteCNDRoundTripEmptySchema(t *testing.T) {

	s, err := parse.Parse("")
	require.Nil(t, err)

	assert.Equal(t, "", s.WriteCND())

	again, err := parse.Parse(s.WriteCND())
	require.Nil(t, err)
	assert.Equal(t, s, again)
}
