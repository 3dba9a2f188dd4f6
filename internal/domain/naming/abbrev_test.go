package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/partkit/partkit/internal/domain/catalog"
)

func TestSplitMaterialFinish(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		wantMaterial string
		wantFinish   string
	}{
		{name: "zinc plated steel", value: "Zinc Plated Steel", wantMaterial: "Steel", wantFinish: "Zinc Plated"},
		{name: "black oxide hyphenated", value: "Black-Oxide Alloy Steel", wantMaterial: "Alloy Steel", wantFinish: "Black-Oxide"},
		{name: "yellow chromate", value: "Zinc Yellow-Chromate Plated Steel", wantMaterial: "Steel", wantFinish: "Zinc Yellow-Chromate Plated"},
		{name: "passivated stainless", value: "Passivated 18-8 Stainless Steel", wantMaterial: "18-8 Stainless Steel", wantFinish: "Passivated"},
		{name: "no finish prefix", value: "316 Stainless Steel", wantMaterial: "316 Stainless Steel", wantFinish: ""},
		{name: "bare brass", value: "Brass", wantMaterial: "Brass", wantFinish: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			material, finish := SplitMaterialFinish(tt.value)
			assert.Equal(t, tt.wantMaterial, material)
			assert.Equal(t, tt.wantFinish, finish)
		})
	}
}

func TestSteelGradeMaterial(t *testing.T) {
	record := &catalog.ProductRecord{
		Specifications: []catalog.Specification{
			{Attribute: "Fastener Strength Grade/Class", Values: []string{"Grade 8"}},
		},
	}
	assert.Equal(t, "Grade 8 Steel", SteelGradeMaterial(record, "Steel"))

	metric := &catalog.ProductRecord{
		Specifications: []catalog.Specification{
			{Attribute: "Fastener Strength Grade/Class", Values: []string{"Class 10.9"}},
		},
	}
	assert.Equal(t, "10.9 Steel", SteelGradeMaterial(metric, "Alloy Steel"))

	ungraded := &catalog.ProductRecord{}
	assert.Equal(t, "Steel", SteelGradeMaterial(ungraded, "Steel"))

	unrecognized := &catalog.ProductRecord{
		Specifications: []catalog.Specification{
			{Attribute: "Fastener Strength Grade/Class", Values: []string{"Class A"}},
		},
	}
	assert.Equal(t, "Steel", SteelGradeMaterial(unrecognized, "Steel"))
}

func TestAbbreviateValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "thread with x preserved", value: "5/16x18", want: "5/16x18"},
		{name: "metric thread preserved", value: "M8", want: "M8"},
		{name: "inch fraction thread preserved", value: `1/4"`, want: "1/4"},
		{name: "numbered screw size", value: "No. 10", want: "10"},
		{name: "short value uppercased", value: "Cup", want: "CUP"},
		{name: "long value truncated", value: "Unobtainium", want: "UNOB"},
		{name: "spaces stripped before truncation", value: "Cast Iron Alloy", want: "CAST"},
		{name: "empty stays empty", value: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbbreviateValue(tt.value))
		})
	}
}
