package naming

// pinAbbreviations serves clevis pins and, extended with a couple of
// collar-specific alloys, shaft collars.
func pinAbbreviations() map[string]string {
	return map[string]string{
		"316 Stainless Steel":  "SS316",
		"18-8 Stainless Steel": "SS188",
		"Stainless Steel":      "SS",
		"Steel":                "S",
		"Alloy Steel":          "S",
		"Brass":                "Brass",
		"Aluminum":             "AL",
		"Titanium":             "TI",

		"Grade 1 Steel": "SG1",
		"Grade 2 Steel": "SG2",
		"Grade 5 Steel": "SG5",
		"Grade 8 Steel": "SG8",
		"8.8 Steel":     "S8.8",
		"10.9 Steel":    "S10.9",
		"12.9 Steel":    "S12.9",

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

		"Retaining Ring Groove": "RRG",
		// A plain end type adds nothing to the name.
		"Plain": "",
	}
}

func registerPinTemplates(templates map[string]NamingTemplate) {
	pinAbbrevs := pinAbbreviations()
	pinFields := []string{"Material", "Diameter", "Usable Length", "Finish"}

	templates["clevis_pin"] = NewTemplate("CP", pinFields, pinAbbrevs)
	templates["clevis_pin_with_retaining_ring_groove"] = NewTemplate("CPRRG", pinFields, pinAbbrevs)

	collarAbbrevs := pinAbbreviations()
	collarAbbrevs["303 Stainless Steel"] = "SS303"
	collarAbbrevs["1215 Carbon Steel"] = "1215S"
	collarFields := []string{"Material", "For Shaft Diameter", "OD", "Width", "Finish"}

	templates["face_mount_shaft_collar"] = NewTemplate("FMSC", collarFields, collarAbbrevs)
	templates["flange_mount_shaft_collar"] = NewTemplate("FLSC", collarFields, collarAbbrevs)
}
