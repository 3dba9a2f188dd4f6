package naming

import "strings"

// NamingTemplate describes how to build a name for one category of parts:
// a short prefix, the ordered list of logical fields that make up the
// name, optional per-field attribute aliases, and a value→token
// abbreviation dictionary.
//
// Templates are built once at registry construction and never mutated, so
// a single abbreviation map is shared by value across all sibling
// templates of a product family.
type NamingTemplate struct {
	// Prefix is the category short code, e.g. "BHS" or "FW". Never empty.
	Prefix string
	// KeySpecs lists the logical field names in output order. Order is
	// part of the naming contract; reordering changes generated names.
	// Never empty.
	KeySpecs []string
	// SpecAliases maps a logical field name to alternate catalog
	// attribute names accepted in its place, tried in order. May be nil.
	SpecAliases map[string][]string
	// SpecAbbreviations maps raw specification values to name tokens.
	// Consulted by exact match before the generic abbreviation fallback.
	SpecAbbreviations map[string]string
}

// NewTemplate creates a template with the given prefix and ordered fields,
// sharing the provided abbreviation dictionary.
func NewTemplate(prefix string, keySpecs []string, abbrevs map[string]string) NamingTemplate {
	return NamingTemplate{
		Prefix:            prefix,
		KeySpecs:          keySpecs,
		SpecAbbreviations: abbrevs,
	}
}

// WithAliases returns a copy of the template with the given alias table.
func (t NamingTemplate) WithAliases(aliases map[string][]string) NamingTemplate {
	t.SpecAliases = aliases
	return t
}

// Abbreviate looks the raw value up in the template dictionary and falls
// back to the generic abbreviation when no entry exists.
func (t NamingTemplate) Abbreviate(value string) string {
	if abbrev, ok := t.SpecAbbreviations[value]; ok {
		return abbrev
	}
	return AbbreviateValue(value)
}

// FieldRole is the semantic role of a logical field name. It decides which
// value transform the assembler applies; roles are derived from the field
// name once and matched exhaustively rather than re-comparing strings in
// the transform step.
type FieldRole int

const (
	// RoleDefault applies dictionary lookup with the generic fallback.
	RoleDefault FieldRole = iota
	// RoleMaterial splits embedded finishes and upgrades steel grades.
	RoleMaterial
	// RoleFinish emits the finish token, falling back to a finish
	// extracted from the material, and suppresses "PASS".
	RoleFinish
	// RoleScrewSize is the context-sensitive "For Screw Size" field:
	// opaque label in washer templates, dimension elsewhere.
	RoleScrewSize
	// RoleDimension converts inch fractions and metric values to
	// decimal strings.
	RoleDimension
	// RoleThreadSize normalizes separators and resolves thread pitch.
	RoleThreadSize
)

// RoleFor classifies a logical field name into its transform role.
func RoleFor(fieldName string) FieldRole {
	lower := strings.ToLower(fieldName)
	switch {
	case isMaterialField(lower):
		return RoleMaterial
	case lower == "finish":
		return RoleFinish
	case lower == "for screw size":
		return RoleScrewSize
	case isThreadSizeField(lower):
		return RoleThreadSize
	case isDimensionField(lower):
		return RoleDimension
	default:
		return RoleDefault
	}
}

func isMaterialField(lower string) bool {
	return lower == "material" ||
		lower == "housing material" ||
		strings.HasSuffix(lower, " material")
}

func isThreadSizeField(lower string) bool {
	return lower == "thread size" ||
		lower == "thread (a) size" ||
		lower == "thread (b) size" ||
		strings.HasPrefix(lower, "thread size") ||
		(strings.HasPrefix(lower, "thread (") && strings.Contains(lower, ") size"))
}

func isDimensionField(lower string) bool {
	return isDiameterField(lower) ||
		isLengthField(lower) ||
		lower == "width" || strings.HasSuffix(lower, " width") ||
		lower == "height" || strings.HasSuffix(lower, " height") ||
		lower == "od" || strings.HasSuffix(lower, " od") ||
		lower == "id" || strings.HasSuffix(lower, " id") ||
		strings.Contains(lower, "mounting hole center")
}

func isDiameterField(lower string) bool {
	return lower == "diameter" ||
		strings.HasSuffix(lower, " diameter") ||
		strings.HasPrefix(lower, "diameter ") ||
		lower == "bore" ||
		strings.HasSuffix(lower, " bore")
}

func isLengthField(lower string) bool {
	return lower == "length" ||
		strings.HasSuffix(lower, " length") ||
		strings.HasPrefix(lower, "length ")
}
