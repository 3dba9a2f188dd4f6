package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecLookup(t *testing.T) {
	r := &ProductRecord{
		PartNumber: "91255A540",
		Specifications: []Specification{
			{Attribute: "Material", Values: []string{"18-8 Stainless Steel", "Stainless"}},
			{Attribute: "Thread Size", Values: []string{`1/4"-20`}},
			{Attribute: "Empty", Values: nil},
		},
	}

	t.Run("case insensitive match", func(t *testing.T) {
		spec, ok := r.Spec("material")
		require.True(t, ok)
		assert.Equal(t, "Material", spec.Attribute)
	})

	t.Run("first value wins", func(t *testing.T) {
		assert.Equal(t, "18-8 Stainless Steel", r.SpecValue("Material"))
	})

	t.Run("missing attribute", func(t *testing.T) {
		_, ok := r.Spec("Finish")
		assert.False(t, ok)
		assert.Equal(t, "", r.SpecValue("Finish"))
	})

	t.Run("attribute with no values", func(t *testing.T) {
		assert.Equal(t, "", r.SpecValue("Empty"))
	})
}

func TestProductRecordJSON(t *testing.T) {
	payload := `{
		"PartNumber": "91255A540",
		"DetailDescription": "Button Head Hex Drive Screw",
		"FamilyDescription": "Button Head Hex Drive Screws",
		"ProductCategory": "Screws and Bolts",
		"ProductStatus": "Active",
		"Specifications": [
			{"Attribute": "Material", "Values": ["18-8 Stainless Steel"]}
		]
	}`

	var r ProductRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &r))
	assert.Equal(t, "91255A540", r.PartNumber)
	assert.Equal(t, "Screws and Bolts", r.ProductCategory)
	require.Len(t, r.Specifications, 1)
	assert.Equal(t, "18-8 Stainless Steel", r.Specifications[0].FirstValue())
}
