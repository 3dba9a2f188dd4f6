package naming

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/partkit/partkit/internal/domain/catalog"
)

// PartAnalysis is the full diagnostic picture of how a record maps onto
// the naming system: which specifications the template consumes, which it
// expects but cannot find, and how the generated name decomposes.
type PartAnalysis struct {
	PartNumber         string              `json:"part_number"`
	Category           string              `json:"category"`
	DetectedType       string              `json:"detected_type"`
	FamilyDescription  string              `json:"family_description"`
	ProductDescription string              `json:"product_description"`
	Specifications     []SpecAnalysis      `json:"specifications"`
	MissingSpecs       []string            `json:"missing_specs"`
	UnmappedSpecs      []string            `json:"unmapped_specs"`
	TemplateUsed       string              `json:"template_used,omitempty"`
	TemplateSpecs      []string            `json:"template_specs"`
	SpecAliases        map[string][]string `json:"spec_aliases,omitempty"`
	GeneratedName      string              `json:"generated_name"`
	SuggestedName      string              `json:"suggested_name,omitempty"`
	NameComponents     []NameComponent     `json:"name_components"`
	Suggestions        []string            `json:"suggestions"`
}

// SpecAnalysis describes one record specification and whether the
// template consumes it.
type SpecAnalysis struct {
	Name       string   `json:"name"`
	Values     []string `json:"values"`
	UsedInName bool     `json:"used_in_name"`
	Source     string   `json:"source"`
}

// NameComponent ties one hyphen-separated token of the generated name
// back to the template field that produced it.
type NameComponent struct {
	Component string `json:"component"`
	Source    string `json:"source"`
}

// Analyzer inspects records against the naming system for debugging and
// template curation.
type Analyzer struct {
	generator *Generator
}

// NewAnalyzer creates an analyzer sharing the generator's registry.
func NewAnalyzer(generator *Generator) *Analyzer {
	return &Analyzer{generator: generator}
}

// Analyze produces the full analysis for a record.
func (a *Analyzer) Analyze(record *catalog.ProductRecord) PartAnalysis {
	detectedType := DetectCategory(record)
	template, hasTemplate := a.generator.Registry().Template(detectedType)

	analysis := PartAnalysis{
		PartNumber:         record.PartNumber,
		Category:           record.ProductCategory,
		DetectedType:       detectedType,
		FamilyDescription:  record.FamilyDescription,
		ProductDescription: record.DetailDescription,
	}

	for _, spec := range record.Specifications {
		mapped := hasTemplate && isSpecMapped(spec.Attribute, template)
		source := "unmapped"
		if mapped {
			source = "direct"
		} else {
			analysis.UnmappedSpecs = append(analysis.UnmappedSpecs, spec.Attribute)
		}
		analysis.Specifications = append(analysis.Specifications, SpecAnalysis{
			Name:       spec.Attribute,
			Values:     spec.Values,
			UsedInName: mapped,
			Source:     source,
		})
	}

	if hasTemplate {
		analysis.TemplateUsed = detectedType
		analysis.TemplateSpecs = template.KeySpecs
		analysis.SpecAliases = template.SpecAliases
		for _, field := range template.KeySpecs {
			if _, ok := FindSpecification(record, field, template); !ok {
				analysis.MissingSpecs = append(analysis.MissingSpecs, field)
			}
		}
	}

	analysis.GeneratedName = a.generator.GenerateName(record)
	analysis.SuggestedName = a.suggestName(record, template, hasTemplate, analysis.MissingSpecs, analysis.GeneratedName)
	analysis.NameComponents = breakdownName(analysis.GeneratedName, detectedType, template, hasTemplate)
	analysis.Suggestions = buildSuggestions(record, hasTemplate, analysis.UnmappedSpecs, analysis.MissingSpecs)

	return analysis
}

// isSpecMapped reports whether an attribute appears in the template's key
// specs or any alias list.
func isSpecMapped(attribute string, template NamingTemplate) bool {
	for _, field := range template.KeySpecs {
		if field == attribute {
			return true
		}
	}
	for _, aliases := range template.SpecAliases {
		for _, alias := range aliases {
			if alias == attribute {
				return true
			}
		}
	}
	return false
}

// suggestName proposes a name extended with a likely finish when the
// template expects a Finish field the record does not provide.
func (a *Analyzer) suggestName(record *catalog.ProductRecord, template NamingTemplate, hasTemplate bool, missing []string, current string) string {
	if !hasTemplate {
		return ""
	}
	expectsFinish := false
	for _, field := range template.KeySpecs {
		if field == "Finish" {
			expectsFinish = true
		}
	}
	finishMissing := false
	for _, field := range missing {
		if field == "Finish" {
			finishMissing = true
		}
	}
	if !expectsFinish || !finishMissing {
		return ""
	}
	finish := suggestFinishForMaterial(record)
	if finish == "" || strings.HasSuffix(current, "-"+finish) {
		return ""
	}
	return current + "-" + finish
}

// suggestFinishForMaterial guesses the customary finish for the record's
// material. Stainless is normally passivated, plain steel zinc plated,
// brass left bare, aluminum clear anodized. "?" marks a true unknown.
func suggestFinishForMaterial(record *catalog.ProductRecord) string {
	material := strings.ToLower(record.SpecValue("Material"))
	switch {
	case material == "":
		return "?"
	case strings.Contains(material, "stainless"):
		return "PASS"
	case strings.Contains(material, "steel"):
		return "ZP"
	case strings.Contains(material, "brass"):
		return "UNFINISHED"
	case strings.Contains(material, "aluminum"):
		return "CLEAR"
	default:
		return "?"
	}
}

// breakdownName maps each hyphenated token of the name back to the
// template field that positionally produced it. The mapping is best
// effort: skipped fields shift later tokens, so positions past the known
// fields are labeled as unknown.
func breakdownName(name, category string, template NamingTemplate, hasTemplate bool) []NameComponent {
	if !hasTemplate {
		return []NameComponent{{Component: name, Source: "Unknown template"}}
	}

	parts := strings.Split(name, "-")
	components := make([]NameComponent, 0, len(parts))
	components = append(components, NameComponent{
		Component: parts[0],
		Source:    fmt.Sprintf("Template prefix (%s)", category),
	})
	for i, part := range parts[1:] {
		source := fmt.Sprintf("Unknown spec %d", i+1)
		if i < len(template.KeySpecs) {
			source = template.KeySpecs[i]
		}
		components = append(components, NameComponent{Component: part, Source: source})
	}
	return components
}

func buildSuggestions(record *catalog.ProductRecord, hasTemplate bool, unmapped, missing []string) []string {
	if !hasTemplate {
		return []string{"! No template found for this part type. Consider adding a new template."}
	}

	var suggestions []string
	if len(missing) == 0 && len(unmapped) == 0 {
		suggestions = append(suggestions, "+ Template uses all available key specifications")
	}
	if len(missing) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("? Missing expected specifications: %s", strings.Join(missing, ", ")),
			"  -> These specs might be named differently in the API",
			"  -> Consider adding aliases to the template",
		)
	}
	if len(unmapped) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("* Unmapped specifications available: %s", strings.Join(unmapped, ", ")),
			"  -> These could be added to the template for more detailed names",
		)
	}
	if strings.Contains(strings.ToLower(record.FamilyDescription), "stainless") && len(missing) > 0 {
		suggestions = append(suggestions, "> Stainless steel parts often have finish embedded in material")
	}
	return suggestions
}

// FormatHuman renders an analysis as indented text for terminal display.
func FormatHuman(analysis PartAnalysis, showTemplate, showAliases bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Part Analysis: %s\n\n", analysis.PartNumber)

	b.WriteString("Product Info:\n")
	fmt.Fprintf(&b, "   Category: %s\n", analysis.Category)
	fmt.Fprintf(&b, "   Family: %s\n", analysis.FamilyDescription)
	fmt.Fprintf(&b, "   Detected Type: %s\n\n", analysis.DetectedType)

	fmt.Fprintf(&b, "Specifications (%d found):\n", len(analysis.Specifications))
	for _, spec := range analysis.Specifications {
		status, usage := "-", "not used"
		if spec.UsedInName {
			status, usage = "+", "used in name"
		}
		fmt.Fprintf(&b, "   %s %s: %s (%s)\n", status, spec.Name, strings.Join(spec.Values, ", "), usage)
	}
	b.WriteString("\n")

	if showTemplate {
		if analysis.TemplateUsed != "" {
			fmt.Fprintf(&b, "Template: %s\n", analysis.TemplateUsed)
			fmt.Fprintf(&b, "   Expected: [%s]\n", strings.Join(analysis.TemplateSpecs, ", "))
			if showAliases && len(analysis.SpecAliases) > 0 {
				b.WriteString("   Aliases:\n")
				for field, aliases := range analysis.SpecAliases {
					fmt.Fprintf(&b, "   - %s: %s\n", field, strings.Join(aliases, ", "))
				}
			}
		} else {
			b.WriteString("Template: none found\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Generated Name: %s\n", analysis.GeneratedName)
	if analysis.SuggestedName != "" {
		fmt.Fprintf(&b, "Suggested Name with Finish: %s\n", analysis.SuggestedName)
	}
	if len(analysis.NameComponents) > 0 {
		b.WriteString("   Components:\n")
		for _, c := range analysis.NameComponents {
			fmt.Fprintf(&b, "   - %s: %s\n", c.Component, c.Source)
		}
	}
	b.WriteString("\n")

	if len(analysis.Suggestions) > 0 {
		b.WriteString("Suggestions:\n")
		for _, s := range analysis.Suggestions {
			fmt.Fprintf(&b, "   %s\n", s)
		}
	}

	return b.String()
}

// FormatJSON renders an analysis as pretty-printed JSON.
func FormatJSON(analysis PartAnalysis) (string, error) {
	out, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
