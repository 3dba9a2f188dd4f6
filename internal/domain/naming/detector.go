package naming

import (
	"strings"

	"github.com/partkit/partkit/internal/domain/catalog"
)

// DetectCategory classifies a product record into a template category key.
// Detection is an ordered substring waterfall over the lowercased family
// and category descriptions; more specific branches come first, and the
// first match wins. Records matching nothing yield "unknown".
func DetectCategory(record *catalog.ProductRecord) string {
	family := strings.ToLower(record.FamilyDescription)
	category := strings.ToLower(record.ProductCategory)

	switch {
	case strings.Contains(family, "thread-forming") || strings.Contains(family, "thread forming"):
		return detectThreadFormingScrew(family)
	case strings.Contains(family, "screw"):
		return detectScrewHead(family)
	case strings.Contains(family, "washer"):
		return detectWasher(family)
	case strings.Contains(category, "nut") || strings.Contains(family, "nut"):
		return detectNut(family)
	case strings.Contains(family, "unthreaded spacer") ||
		(strings.Contains(category, "spacers") && strings.Contains(family, "spacer")):
		return detectSpacer(family)
	case strings.Contains(category, "standoff") || strings.Contains(family, "standoff"):
		return detectStandoff(family)
	case strings.Contains(category, "bearing") || strings.Contains(family, "bearing"):
		return detectBearing(record, family, category)
	case strings.Contains(category, "pins") || strings.Contains(family, "pin"):
		return detectPin(family)
	case strings.Contains(category, "shaft collars") || strings.Contains(family, "shaft collar"):
		return detectShaftCollar(family)
	case strings.Contains(category, "pulleys") || strings.Contains(family, "pulley") ||
		strings.Contains(family, "sheave"):
		return detectPulley(family)
	case strings.Contains(family, "latch"):
		return detectLatch(family)
	case strings.Contains(family, "cable holder") || strings.Contains(category, "cable holders"):
		return detectCableHolder(record)
	default:
		return "unknown"
	}
}

// detectThreadFormingScrew narrows a thread-forming family to a head type.
func detectThreadFormingScrew(family string) string {
	isScrew := strings.Contains(family, "screw")
	switch {
	case isScrew && strings.Contains(family, "button head"):
		return "thread_forming_button_head_screw"
	case isScrew && strings.Contains(family, "high socket head"):
		return "thread_forming_high_socket_head_screw"
	case isScrew && (strings.Contains(family, "low socket head") || strings.Contains(family, "low-profile socket head")):
		return "thread_forming_low_socket_head_screw"
	case isScrew && strings.Contains(family, "socket head"):
		return "thread_forming_socket_head_screw"
	case isScrew && strings.Contains(family, "flat head"):
		return "thread_forming_flat_head_screw"
	case isScrew && strings.Contains(family, "pan head"):
		return "thread_forming_pan_head_screw"
	case isScrew && strings.Contains(family, "hex head"):
		return "thread_forming_hex_head_screw"
	default:
		return "thread_forming_screw"
	}
}

// screwHeadBranches pairs a family substring with the category it maps to.
// Order is significant: compound head names ("high socket head") must be
// tested before their shorter suffixes ("socket head").
var screwHeadBranches = []struct {
	marker   string
	category string
}{
	{"button head", "button_head_screw"},
	{"high socket head", "high_socket_head_screw"},
	{"low socket head", "low_socket_head_screw"},
	{"low-profile socket head", "low_socket_head_screw"},
	{"ultra low socket head", "ultra_low_socket_head_screw"},
	{"ultra low-profile socket head", "ultra_low_socket_head_screw"},
	{"standard socket head", "standard_socket_head_screw"},
	{"socket head", "socket_head_screw"},
	{"narrow flat head", "narrow_flat_head_screw"},
	{"standard flat head", "standard_flat_head_screw"},
	{"undercut flat head", "undercut_flat_head_screw"},
	{"wide flat head", "wide_flat_head_screw"},
	{"flat head", "flat_head_screw"},
	{"pan head", "pan_head_screw"},
	{"hex head", "hex_head_screw"},
	{"standard oval head", "standard_oval_head_screw"},
	{"undercut oval head", "undercut_oval_head_screw"},
	{"oval head", "oval_head_screw"},
	{"square head", "square_head_screw"},
	{"binding head", "binding_head_screw"},
	{"carriage head", "carriage_head_screw"},
	{"cheese head", "cheese_head_screw"},
	{"fillister head", "fillister_head_screw"},
	{"pancake head", "pancake_head_screw"},
	{"round head", "round_head_screw"},
	{"truss head", "truss_head_screw"},
	{"rounded head", "rounded_head_screw"},
	{"12-point", "12_point_head_screw"},
	{"t-handle", "t_handle_screw"},
	{"t-slot", "t_slot_screw"},
	{"l-handle", "l_handle_screw"},
	{"domed", "domed_head_screw"},
	{"headless", "headless_screw"},
	{"pentagon", "pentagon_head_screw"},
	{"four arm thumb", "four_arm_thumb_screw"},
	{"hex thumb", "hex_thumb_screw"},
	{"multilobe thumb", "multilobe_thumb_screw"},
	{"rectangle thumb", "rectangle_thumb_screw"},
	{"round thumb", "round_thumb_screw"},
	{"spade thumb", "spade_thumb_screw"},
	{"two arm thumb", "two_arm_thumb_screw"},
	{"wing thumb", "wing_thumb_screw"},
	{"thumb", "thumb_screw"},
	{"captive panel", "captive_panel_screw"},
	{"hook", "hook_screw"},
	{"ring", "ring_screw"},
	{"eye", "eye_screw"},
	{"knob", "knob_screw"},
	{"threaded", "threaded_screw"},
	{"tee", "tee_screw"},
}

func detectScrewHead(family string) string {
	for _, b := range screwHeadBranches {
		if strings.Contains(family, b.marker) {
			return b.category
		}
	}
	return "generic_screw"
}

var washerBranches = []struct {
	marker   string
	category string
}{
	{"cup", "cup_washer"},
	{"curved", "curved_washer"},
	{"dished", "dished_washer"},
	{"domed", "domed_washer"},
	{"double clipped", "double_clipped_washer"},
	{"double-clipped", "double_clipped_washer"},
	{"clipped", "clipped_washer"},
	{"hillside", "hillside_washer"},
	{"notched", "notched_washer"},
	{"perforated", "perforated_washer"},
	{"pronged", "pronged_washer"},
	{"rectangular", "rectangular_washer"},
	{"sleeve", "sleeve_washer"},
	{"slotted", "slotted_washer"},
	{"spherical", "spherical_washer"},
	{"split", "split_washer"},
	{"square", "square_washer"},
	{"tab", "tab_washer"},
	{"tapered", "tapered_washer"},
	{"tooth", "tooth_washer"},
	{"wave", "wave_washer"},
	{"wedge", "wedge_washer"},
}

// detectWasher defaults to flat_washer when no shape keyword matches.
func detectWasher(family string) string {
	for _, b := range washerBranches {
		if strings.Contains(family, b.marker) {
			return b.category
		}
	}
	return "flat_washer"
}

// lockingNutBranches are locknut sub-types checked in priority order.
// Most require both the sub-type keyword and a locknut keyword; nylon
// insert is recognized on its own and outranks the branches below it,
// so a spring-stop nylon-insert locknut classifies as nylon insert.
var lockingNutBranches = []struct {
	marker     string
	category   string
	standalone bool
}{
	{"cotter pin", "cotter_pin_locknut", false},
	{"distorted thread", "distorted_thread_locknut", false},
	{"flex-top", "flex_top_locknut", false},
	{"lock washer", "lock_washer_locknut", false},
	{"nylon insert", "nylon_insert_locknut", true},
	{"nylon-insert", "nylon_insert_locknut", true},
	{"serrations", "serrations_locknut", false},
	{"spring-stop", "spring_stop_locknut", false},
	{"steel insert", "steel_insert_locknut", false},
}

var nutBranches = []struct {
	marker   string
	category string
}{
	{"acorn nut", "acorn_nut"},
	{"acornnut", "acorn_nut"},
	{"barrel nut", "barrel_nut"},
	{"cage nut", "cage_nut"},
	{"castle nut", "castle_nut"},
	{"clinch nut", "clinch_nut"},
	{"coupling nut", "coupling_nut"},
	{"flange nut", "flange_nut"},
	{"flangenut", "flange_nut"},
	{"hex nut", "hex_nut"},
	{"hexnut", "hex_nut"},
	{"jam nut", "jam_nut"},
	{"knurled thumb nut", "knurled_thumb_nut"},
	{"machine screw nut", "machine_screw_nut"},
	{"panel nut", "panel_nut"},
	{"push on nut", "push_on_nut"},
	{"push-on nut", "push_on_nut"},
	{"rivet nut", "rivet_nut"},
	{"round nut", "round_nut"},
	{"screw mount", "screw_mount_nut"},
	{"snap in", "snap_in_nut"},
	{"snap-in", "snap_in_nut"},
	{"socket nut", "socket_nut"},
	{"speed", "speed_nut"},
	{"square", "square_nut"},
	{"tamper resistant", "tamper_resistant_nut"},
	{"tamper-resistant", "tamper_resistant_nut"},
	{"threadless", "threadless_nut"},
	{"thumb", "thumb_nut"},
	{"tube end", "tube_end_nut"},
	{"twist close", "twist_close_nut"},
	{"twist-close", "twist_close_nut"},
	{"weld", "weld_nut"},
	{"with pilot hole", "with_pilot_hole_nut"},
	{"wing nut", "wing_nut"},
	{"wingnut", "wing_nut"},
	{"cap nut", "cap_nut"},
	{"capnut", "cap_nut"},
}

// detectNut checks locking sub-types before plain nut shapes so that
// "Steel Insert Hex Locknut" never falls through to hex_nut.
func detectNut(family string) string {
	isLocknut := strings.Contains(family, "locknut") || strings.Contains(family, "lock nut")
	for _, b := range lockingNutBranches {
		if (b.standalone || isLocknut) && strings.Contains(family, b.marker) {
			return b.category
		}
	}
	if isLocknut {
		return "generic_locknut"
	}
	for _, b := range nutBranches {
		if strings.Contains(family, b.marker) {
			return b.category
		}
	}
	return "generic_nut"
}

func detectStandoff(family string) string {
	switch {
	case strings.Contains(family, "male-female") || strings.Contains(family, "male female"):
		return "male_female_hex_standoff"
	case strings.Contains(family, "female") && strings.Contains(family, "threaded"):
		return "female_hex_standoff"
	default:
		return "generic_standoff"
	}
}

// detectSpacer splits spacers by material keyword in the family text.
func detectSpacer(family string) string {
	switch {
	case strings.Contains(family, "aluminum"):
		return "aluminum_unthreaded_spacer"
	case strings.Contains(family, "stainless steel") || strings.Contains(family, "18-8") ||
		strings.Contains(family, "316"):
		return "stainless_steel_unthreaded_spacer"
	case strings.Contains(family, "nylon"):
		return "nylon_unthreaded_spacer"
	default:
		return "unthreaded_spacer"
	}
}

func detectPin(family string) string {
	switch {
	case strings.Contains(family, "clevis pin with retaining ring groove"):
		return "clevis_pin_with_retaining_ring_groove"
	case strings.Contains(family, "clevis pin"):
		return "clevis_pin"
	default:
		return "generic_pin"
	}
}

func detectShaftCollar(family string) string {
	switch {
	case strings.Contains(family, "face-mount shaft collar") || strings.Contains(family, "face mount shaft collar"):
		return "face_mount_shaft_collar"
	case strings.Contains(family, "flange-mount shaft collar") || strings.Contains(family, "flange mount shaft collar"):
		return "flange_mount_shaft_collar"
	default:
		return "generic_shaft_collar"
	}
}

// detectBearing is the only detector that consults specifications: mounted
// bearings use the "Mounted Bearing Type" attribute, and plain bearings
// may declare a flange through "Plain Bearing Type".
func detectBearing(record *catalog.ProductRecord, family, category string) string {
	plainType := record.SpecValue("Plain Bearing Type")

	if strings.Contains(family, "mounted") || strings.Contains(category, "mounted") {
		mountType := strings.ToLower(record.SpecValue("Mounted Bearing Type"))
		detail := strings.ToLower(record.DetailDescription)
		switch {
		case strings.Contains(mountType, "flange"):
			if strings.Contains(family, "low-profile") || strings.Contains(family, "low profile") ||
				strings.Contains(detail, "low-profile") || strings.Contains(detail, "low profile") {
				return "low_profile_flange_mounted_ball_bearing"
			}
			return "flange_mounted_ball_bearing"
		case strings.Contains(mountType, "pillow"):
			return "pillow_block_mounted_ball_bearing"
		default:
			return "generic_mounted_bearing"
		}
	}

	switch {
	case strings.Contains(family, "flanged") || strings.EqualFold(plainType, "Flanged"):
		if strings.Contains(family, "sleeve") || strings.Contains(family, "plain") {
			return "flanged_sleeve_bearing"
		}
		return "flanged_bearing"
	case strings.Contains(family, "sleeve") || strings.Contains(family, "plain"):
		return "sleeve_bearing"
	case strings.Contains(family, "ball"):
		return "ball_bearing"
	case strings.Contains(family, "linear"):
		return "linear_bearing"
	case strings.Contains(family, "needle"):
		return "needle_bearing"
	case strings.Contains(family, "roller"):
		return "roller_bearing"
	default:
		return "generic_bearing"
	}
}

func detectPulley(family string) string {
	switch {
	case strings.Contains(family, "wire rope"):
		return "wire_rope_pulley"
	case strings.Contains(family, "rope") && !strings.Contains(family, "wire"):
		return "rope_pulley"
	case strings.Contains(family, "v-belt") || strings.Contains(family, "belt"):
		return "v_belt_pulley"
	case strings.Contains(family, "sheave"):
		return "sheave"
	default:
		return "pulley"
	}
}

func detectLatch(family string) string {
	switch {
	case strings.Contains(family, "draw"):
		return "draw_latch"
	case strings.Contains(family, "toggle"):
		return "toggle_latch"
	case strings.Contains(family, "compression"):
		return "compression_latch"
	case strings.Contains(family, "slam"):
		return "slam_latch"
	default:
		return "generic_latch"
	}
}

// detectCableHolder picks the screw-mount variant when the record declares
// a mounting screw size.
func detectCableHolder(record *catalog.ProductRecord) string {
	if record.SpecValue("For Screw Size") != "" {
		return "cable_holder"
	}
	return "generic_cable_holder"
}
