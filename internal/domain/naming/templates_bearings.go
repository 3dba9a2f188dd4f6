package naming

func bearingAbbreviations() map[string]string {
	return map[string]string{
		"MDS-Filled Nylon Plastic": "MDSNYL",
		"MDS-Filled Nylon":         "MDSNYL",
		"Nylon Plastic":            "NYL",
		"Bronze SAE 841":           "BR841",
		"Bronze SAE 863":           "BR863",
		"Cast Bronze":              "CB",
		"Oil-Filled Bronze":        "OFB",
		"PTFE":                     "PTFE",
		"Rulon":                    "RUL",
		"Graphite":                 "GRAPH",
		"Steel-Backed PTFE":        "SBPTFE",
		"Bronze":                   "BR",
		"Steel":                    "S",
		"Stainless Steel":          "SS",
		"303 Stainless Steel":      "SS303",
		"Aluminum":                 "AL",
		"Plastic":                  "PL",
	}
}

func registerBearingTemplates(templates map[string]NamingTemplate) {
	abbrevs := bearingAbbreviations()

	sleeveFields := []string{"Material", "For Shaft Diameter", "OD", "Length"}
	templates["flanged_sleeve_bearing"] = NewTemplate("FSB", sleeveFields, abbrevs)
	templates["sleeve_bearing"] = NewTemplate("SB", sleeveFields, abbrevs)
	templates["flanged_bearing"] = NewTemplate("FB", sleeveFields, abbrevs)

	templates["ball_bearing"] = NewTemplate("BB",
		[]string{"Material", "Bore", "OD"}, abbrevs)
	templates["linear_bearing"] = NewTemplate("LB",
		[]string{"Material", "For Shaft Diameter", "Length"}, abbrevs)
	templates["needle_bearing"] = NewTemplate("NB",
		[]string{"Material", "Bore", "OD", "Length"}, abbrevs)
	templates["roller_bearing"] = NewTemplate("RB",
		[]string{"Material", "Bore", "OD", "Length"}, abbrevs)

	// The catalog writes this attribute with a stray space before the
	// second hyphen.
	mountedFields := []string{"Housing Material", "For Shaft Diameter", "Mounting Hole Center -to-Center", "Overall Height"}
	templates["flange_mounted_ball_bearing"] = NewTemplate("MFBB", mountedFields, abbrevs)
	templates["low_profile_flange_mounted_ball_bearing"] = NewTemplate("LPMFBB", mountedFields, abbrevs)
	templates["pillow_block_mounted_ball_bearing"] = NewTemplate("PBMBB", mountedFields, abbrevs)
	templates["generic_mounted_bearing"] = NewTemplate("MBB",
		[]string{"Housing Material", "For Shaft Diameter", "Overall Height"}, abbrevs)

	templates["generic_bearing"] = NewTemplate("BRG",
		[]string{"Material", "Type"}, abbrevs)
}
