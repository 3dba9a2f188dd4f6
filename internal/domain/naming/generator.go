package naming

import (
	"strings"

	"github.com/partkit/partkit/internal/domain/catalog"
)

// Generator produces short human-readable technical names for catalog
// records by classifying them and applying the matching category template.
type Generator struct {
	registry *Registry
}

// NewGenerator creates a generator over the given template registry.
func NewGenerator(registry *Registry) *Generator {
	return &Generator{registry: registry}
}

// Registry exposes the underlying template registry.
func (g *Generator) Registry() *Registry {
	return g.registry
}

// GenerateName builds the name for a record. Records whose category has no
// template get a fallback name derived from the family description, so
// this never returns an empty string for a record with a part number.
func (g *Generator) GenerateName(record *catalog.ProductRecord) string {
	category := DetectCategory(record)
	template, ok := g.registry.Template(category)
	if !ok {
		return FallbackName(record)
	}
	return g.applyTemplate(record, template, category)
}

// applyTemplate walks the template fields in order, resolves each against
// the record, and joins the non-empty tokens with hyphens. A finish
// extracted from the material earlier in the walk feeds the Finish field
// when the record has no explicit Finish specification.
func (g *Generator) applyTemplate(record *catalog.ProductRecord, template NamingTemplate, category string) string {
	parts := []string{template.Prefix}
	extractedFinish := ""

	for _, field := range template.KeySpecs {
		spec, ok := FindSpecification(record, field, template)
		if !ok {
			if strings.EqualFold(field, "Finish") && extractedFinish != "" {
				if token := resolveFinish(template, "", extractedFinish); token != "" {
					parts = append(parts, token)
				}
			}
			// Other missing fields are skipped silently.
			continue
		}

		token := g.resolveField(record, template, category, field, spec.FirstValue(), &extractedFinish)
		if token != "" {
			parts = append(parts, token)
		}
	}

	return strings.Join(parts, "-")
}

// FindSpecification locates the record specification for a template field,
// trying the field name first and then any template aliases in order. The
// returned string is the attribute name that actually matched.
func FindSpecification(record *catalog.ProductRecord, field string, template NamingTemplate) (catalog.Specification, bool) {
	if spec, ok := record.Spec(field); ok {
		return spec, true
	}
	for _, alias := range template.SpecAliases[field] {
		if spec, ok := record.Spec(alias); ok {
			return spec, true
		}
	}
	return catalog.Specification{}, false
}

// resolveField turns one raw specification value into a name token, or ""
// when the field contributes nothing.
func (g *Generator) resolveField(record *catalog.ProductRecord, template NamingTemplate, category, field, value string, extractedFinish *string) string {
	switch RoleFor(field) {
	case RoleMaterial:
		return resolveMaterial(record, template, value, extractedFinish)
	case RoleFinish:
		return resolveFinish(template, value, *extractedFinish)
	case RoleScrewSize:
		if strings.Contains(category, "washer") {
			// Washer screw sizes are opaque labels: "6" and "1/4" must
			// survive as-is, not become decimals.
			return template.Abbreviate(value)
		}
		return resolveDimension(template, value)
	case RoleDimension:
		return resolveDimension(template, value)
	case RoleThreadSize:
		return template.Abbreviate(ExtractThreadWithPitch(record, value))
	default:
		return template.Abbreviate(value)
	}
}

// resolveMaterial strips an embedded finish (remembering it for the Finish
// field), folds in bearing filler material, upgrades graded steels, and
// abbreviates the result.
func resolveMaterial(record *catalog.ProductRecord, template NamingTemplate, value string, extractedFinish *string) string {
	material, finish := SplitMaterialFinish(value)
	*extractedFinish = finish

	if isFilledBearingPrefix(template.Prefix) {
		if filler := record.SpecValue("Filler Material"); filler != "" && filler != "None" && filler != "Not Specified" {
			material = filler + "-Filled " + material
		}
	} else if strings.EqualFold(material, "Steel") || strings.EqualFold(material, "Alloy Steel") {
		material = SteelGradeMaterial(record, material)
	}

	return template.Abbreviate(material)
}

// isFilledBearingPrefix reports whether a template names a bearing family
// whose material may carry a filler (sleeve and ball bearings).
func isFilledBearingPrefix(prefix string) bool {
	return strings.HasSuffix(prefix, "B") &&
		(strings.HasPrefix(prefix, "FSB") || strings.HasPrefix(prefix, "SB") || strings.HasPrefix(prefix, "BB"))
}

// resolveFinish prefers the explicit value over a finish extracted from
// the material. Passivation is the default state of stainless hardware,
// so "PASS" is suppressed.
func resolveFinish(template NamingTemplate, value, extractedFinish string) string {
	finish := value
	if finish == "" {
		finish = extractedFinish
	}
	if finish == "" {
		return ""
	}
	token := template.Abbreviate(finish)
	if token == "PASS" {
		return ""
	}
	return token
}

// resolveDimension converts the value to decimal form and then consults
// the dictionary with the converted value. Unlike other fields, an
// unlisted dimension is used verbatim rather than generically abbreviated.
func resolveDimension(template NamingTemplate, value string) string {
	converted := ConvertLengthToDecimal(value)
	if abbrev, ok := template.SpecAbbreviations[converted]; ok {
		return abbrev
	}
	return converted
}

// FallbackName names records with no usable template: up to four words of
// the family description, uppercased with commas dropped, suffixed with
// the part number.
func FallbackName(record *catalog.ProductRecord) string {
	words := strings.Fields(record.FamilyDescription)
	if len(words) > 4 {
		words = words[:4]
	}
	if len(words) == 0 {
		return "UNKNOWN-" + record.PartNumber
	}
	head := strings.ReplaceAll(strings.ToUpper(strings.Join(words, "-")), ",", "")
	return head + "-" + record.PartNumber
}
