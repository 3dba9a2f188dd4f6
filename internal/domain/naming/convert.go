package naming

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/partkit/partkit/internal/domain/catalog"
)

// metricPitchPattern finds a metric thread pitch in free text, e.g.
// "M6 x 1 mm Thread" captures "1".
var metricPitchPattern = regexp.MustCompile(`M\d+\s*x?\s*(\d+\.?\d*)\s*mm`)

// ConvertLengthToDecimal renders inch-fraction catalog dimensions as
// decimal strings: `3/4"` → "0.75", `1-3/8"` → "1.375", `2"` → "2".
// Mixed numbers written with a space (`1 3/8"`) are normalized to the
// hyphen form first. Metric values lose their "mm" suffix. Anything that
// does not parse (including a zero denominator) is returned unconverted.
func ConvertLengthToDecimal(value string) string {
	switch {
	case strings.Contains(value, `"`):
		clean := strings.ReplaceAll(strings.ReplaceAll(value, `"`, ""), " ", "-")
		return fractionToDecimal(clean)
	case strings.Contains(value, "mm"):
		return strings.TrimSpace(strings.ReplaceAll(value, "mm", ""))
	default:
		return value
	}
}

// fractionToDecimal parses "<whole>-<num>/<den>", "<num>/<den>", or a
// plain whole number, and formats the sum as a decimal string with at
// most five fractional digits, trailing zeros trimmed.
func fractionToDecimal(clean string) string {
	whole := clean
	frac := ""
	if i := strings.Index(clean, "/"); i >= 0 {
		frac = clean
		whole = ""
		if j := strings.Index(clean, "-"); j >= 0 && j < i {
			whole = clean[:j]
			frac = clean[j+1:]
		}
	}

	total := decimal.Zero
	if whole != "" {
		w, err := decimal.NewFromString(whole)
		if err != nil {
			return clean
		}
		total = w
	}
	if frac != "" {
		numStr, denStr, ok := strings.Cut(frac, "/")
		if !ok {
			return clean
		}
		num, err := decimal.NewFromString(strings.TrimSpace(numStr))
		if err != nil {
			return clean
		}
		den, err := decimal.NewFromString(strings.TrimSpace(denStr))
		if err != nil || den.IsZero() {
			return clean
		}
		total = total.Add(num.Div(den))
	}

	return formatDecimal(total)
}

// formatDecimal renders a decimal with up to five fractional digits,
// trimming trailing zeros and a dangling decimal point.
func formatDecimal(d decimal.Decimal) string {
	s := d.StringFixed(5)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// ExtractThreadWithPitch normalizes a thread size to the "<size>x<pitch>"
// form. Hyphen separators become "x". Metric sizes without an explicit
// pitch get one from the detail description when it matches
// "M<n> x <pitch> mm", or from a "Thread Pitch" specification. Inch sizes
// without a pitch consult a "...Threads per Inch" specification; a
// leading "No. " on the size is dropped so "No. 10" renders as "10x24".
func ExtractThreadWithPitch(record *catalog.ProductRecord, threadSize string) string {
	thread := strings.ReplaceAll(threadSize, "-", "x")

	if strings.Contains(thread, "x") {
		return thread
	}

	if strings.HasPrefix(thread, "M") {
		if m := metricPitchPattern.FindStringSubmatch(record.DetailDescription); m != nil {
			return thread + "x" + m[1]
		}
		if pitch := record.SpecValue("Thread Pitch"); pitch != "" {
			return thread + "x" + strings.TrimSpace(strings.ReplaceAll(pitch, "mm", ""))
		}
		return thread
	}

	if tpi := threadsPerInch(record); tpi != "" {
		size := strings.TrimPrefix(thread, "No. ")
		return size + "x" + tpi
	}

	return thread
}

// threadsPerInch returns the first value of any specification whose
// attribute ends in "Threads per Inch", or "".
func threadsPerInch(record *catalog.ProductRecord) string {
	for _, s := range record.Specifications {
		if strings.HasSuffix(strings.ToLower(s.Attribute), "threads per inch") {
			return strings.TrimSpace(s.FirstValue())
		}
	}
	return ""
}
