package naming

import "sort"

// Registry holds every category naming template. It is built once at
// startup and read-only afterward, so it is safe for concurrent use.
type Registry struct {
	templates map[string]NamingTemplate
}

// NewRegistry builds the full template set for all supported product
// families.
func NewRegistry() *Registry {
	templates := make(map[string]NamingTemplate)
	registerScrewTemplates(templates)
	registerWasherTemplates(templates)
	registerNutTemplates(templates)
	registerStandoffTemplates(templates)
	registerSpacerTemplates(templates)
	registerPinTemplates(templates)
	registerBearingTemplates(templates)
	registerPulleyTemplates(templates)
	registerLatchTemplates(templates)
	registerCableHolderTemplates(templates)
	return &Registry{templates: templates}
}

// Template returns the template for a category key. The second return
// value is false for categories without a template, including "unknown".
func (r *Registry) Template(category string) (NamingTemplate, bool) {
	t, ok := r.templates[category]
	return t, ok
}

// Categories lists every registered category key in sorted order.
func (r *Registry) Categories() []string {
	keys := make([]string, 0, len(r.templates))
	for k := range r.templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of registered templates.
func (r *Registry) Len() int {
	return len(r.templates)
}
