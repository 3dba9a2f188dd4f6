package naming

func standoffAbbreviations() map[string]string {
	return map[string]string{
		"316 Stainless Steel":  "SS316",
		"18-8 Stainless Steel": "SS188",
		"Stainless Steel":      "SS",
		"Steel":                "S",
		"Alloy Steel":          "S",
		"Brass":                "Brass",
		"Aluminum":             "AL",
		"Nylon":                "Nylon",

		"Grade 1 Steel":       "SG1",
		"Grade 2 Steel":       "SG2",
		"Grade 5 Steel":       "SG5",
		"Grade 8 Steel":       "SG8",
		"8.8 Steel":           "S8.8",
		"10.9 Steel":          "S10.9",
		"12.9 Steel":          "S12.9",
		"Grade 1 Alloy Steel": "SG1",
		"Grade 2 Alloy Steel": "SG2",
		"Grade 5 Alloy Steel": "SG5",
		"Grade 8 Alloy Steel": "SG8",
		"8.8 Alloy Steel":     "S8.8",
		"10.9 Alloy Steel":    "S10.9",
		"12.9 Alloy Steel":    "S12.9",

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

func registerStandoffTemplates(templates map[string]NamingTemplate) {
	abbrevs := standoffAbbreviations()
	fields := []string{"Material", "Thread Size", "Length", "Finish"}

	templates["male_female_hex_standoff"] = NewTemplate("MFSO", fields, abbrevs)
	templates["female_hex_standoff"] = NewTemplate("FSO", fields, abbrevs)
	templates["generic_standoff"] = NewTemplate("SO", fields, abbrevs)
}
