package naming

import (
	"strings"
	"unicode"

	"github.com/partkit/partkit/internal/domain/catalog"
)

// finishPrefixes are finish phrases the catalog embeds at the front of a
// material value ("Zinc Plated Steel"). Order matters only in that longer
// phrases appear before their shorter variants.
var finishPrefixes = []string{
	"Black-Oxide ", "Black Oxide ", "Zinc Plated ", "Zinc-Plated ",
	"Zinc Yellow-Chromate Plated ", "Zinc Yellow Chromate Plated ",
	"Galvanized ", "Cadmium Plated ", "Cadmium-Plated ",
	"Nickel Plated ", "Nickel-Plated ", "Chrome Plated ", "Chrome-Plated ",
	"Passivated ", "Plain ", "Unfinished ",
}

// SplitMaterialFinish separates an embedded finish prefix from a material
// value. It returns the bare material and the extracted finish, or the
// original value and "" when no known finish prefix is present.
func SplitMaterialFinish(materialValue string) (material, finish string) {
	for _, prefix := range finishPrefixes {
		if strings.HasPrefix(materialValue, prefix) {
			return strings.TrimPrefix(materialValue, prefix), strings.TrimSpace(prefix)
		}
	}
	return materialValue, ""
}

// steelGrades maps a substring of the "Fastener Strength Grade/Class"
// specification to the graded material label used for abbreviation.
// Checked in order so inch grades win over metric fragments.
var steelGrades = []struct {
	marker string
	label  string
}{
	{"Grade 1", "Grade 1 Steel"},
	{"Grade 2", "Grade 2 Steel"},
	{"Grade 5", "Grade 5 Steel"},
	{"Grade 8", "Grade 8 Steel"},
	{"8.8", "8.8 Steel"},
	{"10.9", "10.9 Steel"},
	{"12.9", "12.9 Steel"},
}

// SteelGradeMaterial upgrades a bare "Steel" or "Alloy Steel" material to
// a grade-specific label when the record carries a strength grade/class
// specification. Without a recognizable grade the original material is
// returned.
func SteelGradeMaterial(record *catalog.ProductRecord, material string) string {
	grade := record.SpecValue("Fastener Strength Grade/Class")
	if grade == "" {
		return material
	}
	for _, g := range steelGrades {
		if strings.Contains(grade, g.marker) {
			return g.label
		}
	}
	return material
}

// AbbreviateValue produces a deterministic token for a value that has no
// dictionary entry. Thread designations are preserved nearly intact so
// they stay legible; "No. <n>" screw sizes reduce to "<n>"; everything
// else collapses to an uppercased short code.
func AbbreviateValue(value string) string {
	if looksLikeThread(value) {
		return strings.ReplaceAll(value, `"`, "")
	}

	if n, ok := strings.CutPrefix(value, "No. "); ok {
		return n
	}

	clean := strings.ReplaceAll(strings.ReplaceAll(value, `"`, ""), " ", "")
	if len(clean) <= 3 {
		return strings.ToUpper(clean)
	}
	runes := []rune(clean)
	return strings.ToUpper(string(runes[:4]))
}

// looksLikeThread reports whether a value reads as a thread designation:
// "5/16x18", "M8x1.25", "1/4-20" and the like.
func looksLikeThread(value string) bool {
	if strings.Contains(value, "x") {
		return true
	}
	if len(value) > 1 && value[0] == 'M' && unicode.IsDigit(rune(value[1])) {
		return true
	}
	if len(value) > 0 && unicode.IsDigit(rune(value[0])) && strings.Contains(value, "/") {
		return true
	}
	return false
}
