package dto

import "github.com/partkit/partkit/internal/domain/catalog"

// SpecificationDTO is one product attribute in a request body.
type SpecificationDTO struct {
	Attribute string   `json:"attribute" binding:"required"`
	Values    []string `json:"values"`
}

// ProductRecordRequest carries a catalog record for naming or analysis.
// Fields use snake_case like the rest of this API, not the upstream
// catalog's PascalCase.
type ProductRecordRequest struct {
	PartNumber        string             `json:"part_number" binding:"required,max=50,partnum"`
	DetailDescription string             `json:"detail_description"`
	FamilyDescription string             `json:"family_description"`
	ProductCategory   string             `json:"product_category"`
	Specifications    []SpecificationDTO `json:"specifications" binding:"dive"`
}

// ToRecord converts the request body to a domain record.
func (r *ProductRecordRequest) ToRecord() *catalog.ProductRecord {
	specs := make([]catalog.Specification, 0, len(r.Specifications))
	for _, s := range r.Specifications {
		specs = append(specs, catalog.Specification{
			Attribute: s.Attribute,
			Values:    s.Values,
		})
	}
	return &catalog.ProductRecord{
		PartNumber:        r.PartNumber,
		DetailDescription: r.DetailDescription,
		FamilyDescription: r.FamilyDescription,
		ProductCategory:   r.ProductCategory,
		Specifications:    specs,
	}
}

// NameResponse is the result of a naming request.
type NameResponse struct {
	PartNumber       string `json:"part_number"`
	DetectedCategory string `json:"detected_category"`
	GeneratedName    string `json:"generated_name"`
}
