package naming

func nutAbbreviations() map[string]string {
	return map[string]string{
		"316 Stainless Steel":  "SS316",
		"18-8 Stainless Steel": "SS188",
		"Stainless Steel":      "SS",
		"Steel":                "S",
		"Alloy Steel":          "S",
		"Brass":                "Brass",
		"Aluminum":             "AL",
		"Nylon":                "Nylon",
		"Plastic":              "Plastic",

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

// nutPrefixes covers common, specialty, and fallback nut types. All
// locking variants share the LN prefix; the sub-type only affects
// detection, not the rendered name.
var nutPrefixes = map[string]string{
	"hex_nut":     "HN",
	"wing_nut":    "WN",
	"cap_nut":     "CN",
	"flange_nut":  "FN",
	"generic_nut": "N",

	"nylon_insert_locknut":     "LN",
	"generic_locknut":          "LN",
	"cotter_pin_locknut":       "LN",
	"distorted_thread_locknut": "LN",
	"flex_top_locknut":         "LN",
	"lock_washer_locknut":      "LN",
	"serrations_locknut":       "LN",
	"spring_stop_locknut":      "LN",
	"steel_insert_locknut":     "LN",

	"acorn_nut":            "AN",
	"barrel_nut":           "BN",
	"cage_nut":             "CAGEN",
	"castle_nut":           "CASN",
	"clinch_nut":           "CLIN",
	"coupling_nut":         "COUPN",
	"jam_nut":              "JN",
	"knurled_thumb_nut":    "KTN",
	"machine_screw_nut":    "MSN",
	"panel_nut":            "PN",
	"push_on_nut":          "PON",
	"rivet_nut":            "RN",
	"round_nut":            "ROUNDN",
	"screw_mount_nut":      "SMN",
	"snap_in_nut":          "SIN",
	"socket_nut":           "SN",
	"speed_nut":            "SPEEDN",
	"square_nut":           "SQN",
	"tamper_resistant_nut": "TRN",
	"threadless_nut":       "TLN",
	"thumb_nut":            "TN",
	"tube_end_nut":         "TEN",
	"twist_close_nut":      "TCN",
	"weld_nut":             "WLN",
	"with_pilot_hole_nut":  "PHN",
}

func registerNutTemplates(templates map[string]NamingTemplate) {
	abbrevs := nutAbbreviations()
	fields := []string{"Material", "Thread Size", "Finish"}
	for category, prefix := range nutPrefixes {
		templates[category] = NewTemplate(prefix, fields, abbrevs)
	}
}
