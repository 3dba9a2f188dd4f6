package naming

// screwAbbreviations is shared by every screw template. Materials collapse
// to short codes ("Steel" is just "S" for screws), graded steels carry the
// grade, and drive styles get their shop-floor abbreviations.
func screwAbbreviations() map[string]string {
	return map[string]string{
		// Materials
		"316 Stainless Steel":  "SS316",
		"18-8 Stainless Steel": "SS188",
		"Stainless Steel":      "SS",
		"Steel":                "S",
		"Alloy Steel":          "S",
		"Brass":                "Brass",
		"Aluminum":             "AL",
		"Nylon":                "Nylon",
		"Plastic":              "Plastic",

		// Steel grades
		"Grade 1 Steel":        "SG1",
		"Grade 2 Steel":        "SG2",
		"Grade 5 Steel":        "SG5",
		"Grade 8 Steel":        "SG8",
		"8.8 Steel":            "S8.8",
		"10.9 Steel":           "S10.9",
		"12.9 Steel":           "S12.9",
		"Grade 1 Alloy Steel":  "SG1",
		"Grade 2 Alloy Steel":  "SG2",
		"Grade 5 Alloy Steel":  "SG5",
		"Grade 8 Alloy Steel":  "SG8",
		"8.8 Alloy Steel":      "S8.8",
		"10.9 Alloy Steel":     "S10.9",
		"12.9 Alloy Steel":     "S12.9",

		// Finishes
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

		// Drive styles
		"External Hex":          "EHEX",
		"Hex":                   "HEX",
		"Phillips":              "PH",
		"Torx":                  "TX",
		"Torx Plus":             "TXP",
		"Slotted":               "SL",
		"Square":                "SQUARE",
		"Tamper-Resistant Hex":  "TRHEX",
		"Tamper-Resistant Torx": "TRTX",
		"Pozidriv®":             "PZ",
		"Pozidriv":              "PZ",
		"6-Lobe":                "6L",
		"12-Point":              "12PT",
		"Double Hex":            "DHEX",
		"Splined":               "SPL",
		"Triangle":              "TRI",
		"Spline":                "SP",
		"Clutch":                "CLU",
		"One-Way":               "1WAY",
		"Pin-in-Torx":           "PINTX",
		"Pin Hex":               "PINHEX",
	}
}

var screwHeadFields = []string{"Material", "Thread Size", "Length", "Drive Style", "Finish"}
var screwSpecialtyFields = []string{"Material", "Thread Size", "Length", "Finish"}

// headScrewPrefixes are driven head types whose names carry a drive style.
var headScrewPrefixes = map[string]string{
	"button_head_screw":         "BHS",
	"socket_head_screw":         "SHS",
	"high_socket_head_screw":    "HSHS",
	"low_socket_head_screw":     "LSHS",
	"ultra_low_socket_head_screw": "ULSHS",
	"standard_socket_head_screw":  "SSHS",
	"flat_head_screw":           "FHS",
	"narrow_flat_head_screw":    "NFHS",
	"standard_flat_head_screw":  "SFHS",
	"undercut_flat_head_screw":  "UFHS",
	"wide_flat_head_screw":      "WFHS",
	"pan_head_screw":            "PHS",
	"hex_head_screw":            "HHS",
	"rounded_head_screw":        "RHS",
	"oval_head_screw":           "OHS",
	"standard_oval_head_screw":  "SOHS",
	"undercut_oval_head_screw":  "UOHS",
	"square_head_screw":         "SQHS",
	"binding_head_screw":        "BINHS",
	"carriage_head_screw":       "CARHS",
	"cheese_head_screw":         "CHHS",
	"fillister_head_screw":      "FILHS",
	"pancake_head_screw":        "PCHS",
	"round_head_screw":          "RNDHS",
	"truss_head_screw":          "THS",
	"12_point_head_screw":       "12PHS",
	"domed_head_screw":          "DMHS",
	"pentagon_head_screw":       "PENTHS",
}

// specialtyScrewPrefixes are gripped or formed screws named without a
// drive style.
var specialtyScrewPrefixes = map[string]string{
	"thumb_screw":           "THUMB",
	"four_arm_thumb_screw":  "FATS",
	"hex_thumb_screw":       "HTS",
	"multilobe_thumb_screw": "MLTS",
	"rectangle_thumb_screw": "RCTS",
	"round_thumb_screw":     "RNDTS",
	"spade_thumb_screw":     "SPDTS",
	"two_arm_thumb_screw":   "TATS",
	"wing_thumb_screw":      "WTS",
	"eye_screw":             "EYE",
	"hook_screw":            "HOOK",
	"ring_screw":            "RING",
	"knob_screw":            "KNOB",
	"tee_screw":             "TEE",
	"threaded_screw":        "TS",
	"captive_panel_screw":   "CPS",
	"headless_screw":        "HLS",
	"t_handle_screw":        "THNDL",
	"t_slot_screw":          "TSLOT",
	"l_handle_screw":        "LHNDL",
}

// threadFormingPrefixes are the TF variants of the common head types.
var threadFormingPrefixes = map[string]string{
	"thread_forming_screw":                  "TFS",
	"thread_forming_button_head_screw":      "TFBHS",
	"thread_forming_socket_head_screw":      "TFSHS",
	"thread_forming_high_socket_head_screw": "TFHSHS",
	"thread_forming_low_socket_head_screw":  "TFLSHS",
	"thread_forming_flat_head_screw":        "TFFHS",
	"thread_forming_pan_head_screw":         "TFPHS",
	"thread_forming_hex_head_screw":         "TFHHS",
}

func registerScrewTemplates(templates map[string]NamingTemplate) {
	abbrevs := screwAbbreviations()

	for category, prefix := range headScrewPrefixes {
		templates[category] = NewTemplate(prefix, screwHeadFields, abbrevs)
	}
	for category, prefix := range specialtyScrewPrefixes {
		templates[category] = NewTemplate(prefix, screwSpecialtyFields, abbrevs)
	}
	for category, prefix := range threadFormingPrefixes {
		templates[category] = NewTemplate(prefix, screwHeadFields, abbrevs)
	}

	// Fallback for screws with no recognized head type. No drive style,
	// the family rarely states one.
	templates["generic_screw"] = NewTemplate("SCREW", screwSpecialtyFields, abbrevs)
}
