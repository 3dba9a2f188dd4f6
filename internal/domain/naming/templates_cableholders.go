package naming

func cableHolderAbbreviations() map[string]string {
	return map[string]string{
		"Nylon Plastic":   "NY",
		"Plastic":         "PL",
		"Polyethylene":    "PE",
		"Polypropylene":   "PP",
		"PVC":             "PVC",
		"Aluminum":        "AL",
		"Steel":           "STEEL",
		"Stainless Steel": "SS",

		"Screw In":      "SI",
		"Screw-In":      "SI",
		"Adhesive":      "ADH",
		"Self-Adhesive": "ADH",
		"Snap In":       "SNP",
		"Snap-In":       "SNP",
		"Push Mount":    "PUSH",
		"Tie Mount":     "TIE",

		// Bundle diameters as decimals
		`1/8"`:  "0.125",
		`3/16"`: "0.1875",
		`1/4"`:  "0.25",
		`5/16"`: "0.3125",
		`3/8"`:  "0.375",
		`1/2"`:  "0.5",
		`5/8"`:  "0.625",
		`3/4"`:  "0.75",
		`1"`:    "1",

		"No. 4":  "4",
		"No. 6":  "6",
		"No. 8":  "8",
		"No. 10": "10",
		"#4":     "4",
		"#6":     "6",
		"#8":     "8",
		"#10":    "10",
	}
}

func registerCableHolderTemplates(templates map[string]NamingTemplate) {
	abbrevs := cableHolderAbbreviations()

	templates["cable_holder"] = NewTemplate("CH",
		[]string{"Material", "Mount Type", "For Maximum Bundle Diameter", "For Screw Size"}, abbrevs)
	templates["generic_cable_holder"] = NewTemplate("CH",
		[]string{"Material", "Mount Type", "For Maximum Bundle Diameter"}, abbrevs)
}
