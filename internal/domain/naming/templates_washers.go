package naming

// washerAbbreviations keeps "Steel" spelled out; washer names read better
// with the full word since they have no length component.
func washerAbbreviations() map[string]string {
	return map[string]string{
		"316 Stainless Steel":  "SS316",
		"18-8 Stainless Steel": "SS188",
		"Stainless Steel":      "SS",
		"Steel":                "Steel",
		"Alloy Steel":          "Steel",
		"Spring Steel":         "Steel",
		"Brass":                "Brass",
		"Aluminum":             "AL",
		"Nylon":                "Nylon",
		"Plastic":              "Plastic",
		"Rubber":               "Rubber",

		"Zinc Plated":                 "ZP",
		"Zinc-Plated":                 "ZP",
		"Zinc Yellow-Chromate Plated": "ZYC",
		"Zinc Yellow Chromate Plated": "ZYC",
		"Black Oxide":                 "BO",
		"Black-Oxide":                 "BO",
		"Cadmium Plated":              "CD",
		"Cadmium-Plated":              "CD",
		"Nickel Plated":               "NI",
		"Nickel-Plated":               "NI",
		"Chrome Plated":               "CR",
		"Chrome-Plated":               "CR",
		"Galvanized":                  "GAL",
	}
}

var washerPrefixes = map[string]string{
	"cup_washer":            "CW",
	"curved_washer":         "CRVW",
	"dished_washer":         "DW",
	"domed_washer":          "DMW",
	"double_clipped_washer": "DCW",
	"clipped_washer":        "CLW",
	"flat_washer":           "FW",
	"hillside_washer":       "HW",
	"notched_washer":        "NW",
	"perforated_washer":     "PW",
	"pronged_washer":        "PRW",
	"rectangular_washer":    "RW",
	"sleeve_washer":         "SW",
	"slotted_washer":        "SLW",
	"spherical_washer":      "SPW",
	"split_washer":          "SPLW",
	"square_washer":         "SQW",
	"tab_washer":            "TW",
	"tapered_washer":        "TPW",
	"tooth_washer":          "TOW",
	"wave_washer":           "WW",
	"wedge_washer":          "WDW",
}

func registerWasherTemplates(templates map[string]NamingTemplate) {
	abbrevs := washerAbbreviations()
	fields := []string{"Material", "For Screw Size", "Finish"}
	for category, prefix := range washerPrefixes {
		templates[category] = NewTemplate(prefix, fields, abbrevs)
	}
}
