package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partkit/partkit/internal/domain/catalog"
)

func newTestGenerator() *Generator {
	return NewGenerator(NewRegistry())
}

func TestGenerateNameButtonHeadScrew(t *testing.T) {
	g := newTestGenerator()

	r := &catalog.ProductRecord{
		PartNumber:        "91255A540",
		FamilyDescription: "Button Head Hex Drive Screws",
		ProductCategory:   "Screws and Bolts",
		Specifications: []catalog.Specification{
			{Attribute: "Material", Values: []string{"18-8 Stainless Steel"}},
			{Attribute: "Thread Size", Values: []string{`1/4"-20`}},
			{Attribute: "Length", Values: []string{`3/4"`}},
			{Attribute: "Drive Style", Values: []string{"Hex"}},
		},
	}

	assert.Equal(t, "BHS-SS188-1/4x20-0.75-HEX", g.GenerateName(r))
}

func TestGenerateNameSuppressesPassivated(t *testing.T) {
	g := newTestGenerator()

	r := &catalog.ProductRecord{
		PartNumber:        "92196A110",
		FamilyDescription: "Socket Head Screws",
		ProductCategory:   "Screws and Bolts",
		Specifications: []catalog.Specification{
			{Attribute: "Material", Values: []string{"Passivated 18-8 Stainless Steel"}},
			{Attribute: "Thread Size", Values: []string{"4-40"}},
			{Attribute: "Length", Values: []string{`1/2"`}},
			{Attribute: "Drive Style", Values: []string{"Hex"}},
		},
	}

	// Passivation is extracted from the material but never shown.
	assert.Equal(t, "SHS-SS188-4x40-0.5-HEX", g.GenerateName(r))
}

func TestGenerateNameExtractedFinishAndSteelGrade(t *testing.T) {
	g := newTestGenerator()

	r := &catalog.ProductRecord{
		PartNumber:        "91306A425",
		FamilyDescription: "Hex Head Screws",
		ProductCategory:   "Screws and Bolts",
		Specifications: []catalog.Specification{
			{Attribute: "Material", Values: []string{"Zinc Plated Steel"}},
			{Attribute: "Fastener Strength Grade/Class", Values: []string{"Grade 8"}},
			{Attribute: "Thread Size", Values: []string{`3/8"-16`}},
			{Attribute: "Length", Values: []string{`1"`}},
			{Attribute: "Drive Style", Values: []string{"External Hex"}},
		},
	}

	assert.Equal(t, "HHS-SG8-3/8x16-1-EHEX-ZP", g.GenerateName(r))
}

func TestGenerateNameWasherKeepsScrewSizeLabel(t *testing.T) {
	g := newTestGenerator()

	r := &catalog.ProductRecord{
		PartNumber:        "90107A029",
		FamilyDescription: "Washers",
		ProductCategory:   "Washers",
		Specifications: []catalog.Specification{
			{Attribute: "Material", Values: []string{"18-8 Stainless Steel"}},
			{Attribute: "For Screw Size", Values: []string{"1/4"}},
		},
	}

	// Washer screw sizes are labels, not dimensions: "1/4" must not
	// become "0.25".
	assert.Equal(t, "FW-SS188-1/4", g.GenerateName(r))
}

func TestGenerateNameSpacerConvertsScrewSize(t *testing.T) {
	g := newTestGenerator()

	r := &catalog.ProductRecord{
		PartNumber:        "92510A100",
		FamilyDescription: "Aluminum Unthreaded Spacers",
		ProductCategory:   "Spacers",
		Specifications: []catalog.Specification{
			{Attribute: "Material", Values: []string{"Aluminum"}},
			{Attribute: "For Screw Size", Values: []string{`1/4"`}},
			{Attribute: "OD", Values: []string{`1/2"`}},
			{Attribute: "Length", Values: []string{`3/8"`}},
		},
	}

	assert.Equal(t, "ASP-AL-0.25-0.5-0.375", g.GenerateName(r))
}

func TestGenerateNameBearingFillerMaterial(t *testing.T) {
	g := newTestGenerator()

	r := &catalog.ProductRecord{
		PartNumber:        "6389K117",
		FamilyDescription: "Sleeve Bearings",
		ProductCategory:   "Bearings",
		Specifications: []catalog.Specification{
			{Attribute: "Material", Values: []string{"Nylon"}},
			{Attribute: "Filler Material", Values: []string{"MDS"}},
			{Attribute: "For Shaft Diameter", Values: []string{`1/2"`}},
			{Attribute: "OD", Values: []string{`3/4"`}},
			{Attribute: "Length", Values: []string{`1"`}},
		},
	}

	assert.Equal(t, "SB-MDSNYL-0.5-0.75-1", g.GenerateName(r))
}

func TestGenerateNameHexNut(t *testing.T) {
	g := newTestGenerator()

	r := &catalog.ProductRecord{
		PartNumber:        "91841A005",
		FamilyDescription: "Hex Nuts",
		ProductCategory:   "Nuts",
		Specifications: []catalog.Specification{
			{Attribute: "Material", Values: []string{"Zinc Plated Steel"}},
			{Attribute: "Thread Size", Values: []string{"8-32"}},
		},
	}

	assert.Equal(t, "HN-S-8x32-ZP", g.GenerateName(r))
}

func TestGenerateNameMissingFieldsAreSkipped(t *testing.T) {
	g := newTestGenerator()

	r := &catalog.ProductRecord{
		PartNumber:        "98164A120",
		FamilyDescription: "Female Threaded Hex Standoffs",
		ProductCategory:   "Standoffs",
		Specifications: []catalog.Specification{
			{Attribute: "Material", Values: []string{"Aluminum"}},
			{Attribute: "Length", Values: []string{`1"`}},
		},
	}

	// Thread Size and Finish are absent; their positions collapse.
	assert.Equal(t, "FSO-AL-1", g.GenerateName(r))
}

func TestFallbackName(t *testing.T) {
	g := newTestGenerator()

	t.Run("uses first four family words", func(t *testing.T) {
		r := &catalog.ProductRecord{
			PartNumber:        "1234A56",
			FamilyDescription: "Specialty Hinge, Heavy Duty, Stainless",
			ProductCategory:   "Hinges",
		}
		assert.Equal(t, "SPECIALTY-HINGE-HEAVY-DUTY-1234A56", g.GenerateName(r))
	})

	t.Run("empty family", func(t *testing.T) {
		r := &catalog.ProductRecord{PartNumber: "1234A56"}
		assert.Equal(t, "UNKNOWN-1234A56", g.GenerateName(r))
	})
}

func TestFindSpecification(t *testing.T) {
	registry := NewRegistry()
	spacer, ok := registry.Template("unthreaded_spacer")
	require.True(t, ok)

	t.Run("spacer templates alias the screw size field", func(t *testing.T) {
		assert.Equal(t, []string{"For Screw Size"}, spacer.SpecAliases["For Screw Size"])
		for _, category := range []string{"aluminum_unthreaded_spacer", "stainless_steel_unthreaded_spacer", "nylon_unthreaded_spacer"} {
			tmpl, ok := registry.Template(category)
			require.True(t, ok, category)
			assert.NotEmpty(t, tmpl.SpecAliases["For Screw Size"], category)
		}
	})

	t.Run("resolves the attribute named by the template", func(t *testing.T) {
		r := &catalog.ProductRecord{Specifications: []catalog.Specification{
			{Attribute: "For Screw Size", Values: []string{`1/4"`}},
		}}
		spec, ok := FindSpecification(r, "For Screw Size", spacer)
		require.True(t, ok)
		assert.Equal(t, `1/4"`, spec.FirstValue())
	})

	t.Run("falls back to an alias when the logical name is absent", func(t *testing.T) {
		tmpl := NewTemplate("SP", []string{"For Screw Size"}, nil).
			WithAliases(map[string][]string{"For Screw Size": {"ID"}})
		r := &catalog.ProductRecord{Specifications: []catalog.Specification{
			{Attribute: "ID", Values: []string{`0.257"`}},
		}}
		spec, ok := FindSpecification(r, "For Screw Size", tmpl)
		require.True(t, ok)
		assert.Equal(t, `0.257"`, spec.FirstValue())
	})

	t.Run("skipped when neither the name nor an alias is present", func(t *testing.T) {
		r := &catalog.ProductRecord{Specifications: []catalog.Specification{
			{Attribute: "OD", Values: []string{`1/2"`}},
		}}
		_, ok := FindSpecification(r, "For Screw Size", spacer)
		assert.False(t, ok)
	})
}

func TestGenerateNameSpacerWithoutScrewSize(t *testing.T) {
	g := newTestGenerator()

	r := &catalog.ProductRecord{
		PartNumber:        "92510A200",
		FamilyDescription: "Aluminum Unthreaded Spacers",
		ProductCategory:   "Spacers",
		Specifications: []catalog.Specification{
			{Attribute: "Material", Values: []string{"Aluminum"}},
			{Attribute: "OD", Values: []string{`1/2"`}},
			{Attribute: "Length", Values: []string{`3/8"`}},
		},
	}

	// No screw-size attribute at all: the token is dropped, not blanked.
	assert.Equal(t, "ASP-AL-0.5-0.375", g.GenerateName(r))
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	require.Greater(t, registry.Len(), 100)

	bhs, ok := registry.Template("button_head_screw")
	require.True(t, ok)
	assert.Equal(t, "BHS", bhs.Prefix)
	assert.Equal(t, []string{"Material", "Thread Size", "Length", "Drive Style", "Finish"}, bhs.KeySpecs)

	_, ok = registry.Template("unknown")
	assert.False(t, ok)

	assert.Contains(t, registry.Categories(), "flat_washer")
}
