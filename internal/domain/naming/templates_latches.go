package naming

func latchAbbreviations() map[string]string {
	return map[string]string{
		"304 Stainless Steel":  "SS304",
		"316 Stainless Steel":  "SS316",
		"18-8 Stainless Steel": "SS188",
		"Stainless Steel":      "SS",
		"Steel":                "STEEL",
		"Aluminum":             "AL",
		"Brass":                "BRASS",
		"Zinc Plated Steel":    "STEEL-ZP",
		"Chrome Plated Steel":  "STEEL-CR",

		"Screw On":      "SO",
		"Screw-On":      "SO",
		"Weld On":       "WO",
		"Weld-On":       "WO",
		"Bolt On":       "BO",
		"Bolt-On":       "BO",
		"Surface Mount": "SM",
		"Surface":       "SM",

		// Latching distances as decimals
		`1/8"`:  "0.125",
		`3/16"`: "0.1875",
		`1/4"`:  "0.25",
		`5/16"`: "0.3125",
		`3/8"`:  "0.375",
		`1/2"`:  "0.5",
		`5/8"`:  "0.625",
		`3/4"`:  "0.75",
		`1"`:    "1",

		"Locking":     "L",
		"Nonlocking":  "NL",
		"Non-locking": "NL",
		"Keyed":       "K",
		"Adjustable":  "ADJ",
		"Fixed":       "F",

		"130 lbs.": "130",
		"200 lbs.": "200",
		"250 lbs.": "250",
		"300 lbs.": "300",
		"400 lbs.": "400",
		"500 lbs.": "500",
	}
}

func registerLatchTemplates(templates map[string]NamingTemplate) {
	abbrevs := latchAbbreviations()

	templates["draw_latch"] = NewTemplate("DL",
		[]string{"Material", "Mount Type", "Latching Distance", "Draw Latch Type"}, abbrevs)
	templates["toggle_latch"] = NewTemplate("TL",
		[]string{"Material", "Mount Type", "Latching Distance"}, abbrevs)
	templates["compression_latch"] = NewTemplate("CL",
		[]string{"Material", "Mount Type"}, abbrevs)
	templates["slam_latch"] = NewTemplate("SL",
		[]string{"Material", "Mount Type"}, abbrevs)
	templates["generic_latch"] = NewTemplate("LATCH",
		[]string{"Material", "Mount Type"}, abbrevs)
}
