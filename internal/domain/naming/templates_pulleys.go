package naming

func pulleyAbbreviations() map[string]string {
	return map[string]string{
		"Steel":               "S",
		"Stainless Steel":     "SS",
		"303 Stainless Steel": "SS303",
		"316 Stainless Steel": "SS316",
		"Aluminum":            "AL",
		"Bronze":              "BR",
		"Cast Iron":           "CI",
		"Plastic":             "PL",
		"Nylon":               "NYL",

		"Ball":   "BALL",
		"Plain":  "PLAIN",
		"Roller": "ROLLER",
		"None":   "NONE",

		"For Pulling":            "PULL",
		"For Lifting":            "LIFT",
		"For Horizontal Pulling": "HPULL",
	}
}

func registerPulleyTemplates(templates map[string]NamingTemplate) {
	abbrevs := pulleyAbbreviations()
	ropeFields := []string{"Material", "For Rope Diameter", "OD", "Bearing Type"}

	templates["wire_rope_pulley"] = NewTemplate("WRP", ropeFields, abbrevs)
	templates["rope_pulley"] = NewTemplate("RP", ropeFields, abbrevs)
	templates["sheave"] = NewTemplate("SHV", ropeFields, abbrevs)
	templates["v_belt_pulley"] = NewTemplate("VBP",
		[]string{"Material", "For Belt Width", "OD", "Bearing Type"}, abbrevs)
	templates["pulley"] = NewTemplate("PUL",
		[]string{"Material", "OD", "Bearing Type"}, abbrevs)
}
