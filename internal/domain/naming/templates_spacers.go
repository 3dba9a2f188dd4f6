package naming

func spacerAbbreviations() map[string]string {
	return map[string]string{
		"Acetal Plastic":       "ACET",
		"Acetal":               "ACET",
		"Polyethylene":         "PE",
		"Polypropylene":        "PP",
		"PEEK":                 "PEEK",
		"PTFE":                 "PTFE",
		"Polycarbonate":        "PC",
		"316 Stainless Steel":  "SS316",
		"18-8 Stainless Steel": "SS188",
		"Stainless Steel":      "SS",
		"Steel":                "S",
		"Alloy Steel":          "S",
		"Brass":                "Brass",
		"Aluminum":             "AL",
		"Nylon":                "Nylon",
		"Titanium":             "TI",

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
		"Black Anodized":              "BA",
		"Black-Anodized":              "BA",
	}
}

func registerSpacerTemplates(templates map[string]NamingTemplate) {
	abbrevs := spacerAbbreviations()
	fields := []string{"Material", "For Screw Size", "OD", "Length", "Finish"}

	// Spacer bores are labeled by compatible screw size; prefer that
	// over the precise ID attribute.
	aliases := map[string][]string{
		"For Screw Size": {"For Screw Size"},
	}

	templates["unthreaded_spacer"] = NewTemplate("SP", fields, abbrevs).WithAliases(aliases)
	templates["aluminum_unthreaded_spacer"] = NewTemplate("ASP", fields, abbrevs).WithAliases(aliases)
	templates["stainless_steel_unthreaded_spacer"] = NewTemplate("SSSP", fields, abbrevs).WithAliases(aliases)

	// Nylon spacers never carry a finish.
	templates["nylon_unthreaded_spacer"] = NewTemplate("NSP",
		[]string{"Material", "For Screw Size", "OD", "Length"}, abbrevs).WithAliases(aliases)
}
