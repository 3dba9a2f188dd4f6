package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProductRecord is a single catalog entry as returned by the upstream
// product API. The naming engine treats it as read-only input; nothing in
// this package or in the engine ever mutates a record after construction.
type ProductRecord struct {
	PartNumber        string          `json:"PartNumber"`
	DetailDescription string          `json:"DetailDescription"`
	FamilyDescription string          `json:"FamilyDescription"`
	ProductCategory   string          `json:"ProductCategory"`
	ProductStatus     string          `json:"ProductStatus"`
	Specifications    []Specification `json:"Specifications"`
}

// Specification is one named attribute of a product. The catalog may list
// several values per attribute; only the first one is meaningful for
// naming, the rest are alternates kept for display.
type Specification struct {
	Attribute string   `json:"Attribute"`
	Values    []string `json:"Values"`
}

// FirstValue returns the first value of the specification, or "" when the
// catalog supplied none.
func (s Specification) FirstValue() string {
	if len(s.Values) == 0 {
		return ""
	}
	return s.Values[0]
}

// Spec finds a specification by attribute name, case-insensitively.
// The second return value reports whether a match was found.
func (r *ProductRecord) Spec(attribute string) (Specification, bool) {
	for _, s := range r.Specifications {
		if strings.EqualFold(s.Attribute, attribute) {
			return s, true
		}
	}
	return Specification{}, false
}

// SpecValue returns the first value of the named specification, or ""
// when the record does not carry it.
func (r *ProductRecord) SpecValue(attribute string) string {
	s, ok := r.Spec(attribute)
	if !ok {
		return ""
	}
	return s.FirstValue()
}

// PriceBreak is one price tier for a product.
type PriceBreak struct {
	Amount          decimal.Decimal `json:"Amount"`
	MinimumQuantity float64         `json:"MinimumQuantity"`
	UnitOfMeasure   string          `json:"UnitOfMeasure"`
}

// ChangedProduct is one entry from the catalog change feed.
type ChangedProduct struct {
	PartNumber   string `json:"PartNumber"`
	ChangeType   string `json:"ChangeType"`
	DateOfChange string `json:"DateOfChange"`
}
