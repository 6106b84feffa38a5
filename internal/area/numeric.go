// Package area holds the floor-area model: numeric field handling, width and
// height pairs, room rows, the row collection and focus navigation.
//
// Everything in this package is pure state manipulation. Persistence and
// rendering live in the store and app packages.
package area

import (
	"math"
	"regexp"
	"strconv"
)

var (
	// keystrokePattern accepts empty input or digits with at most two
	// decimal places, including in-progress text such as "12." or ".5".
	keystrokePattern = regexp.MustCompile(`^[0-9]*(\.[0-9]{0,2})?$`)

	// completePattern matches a fully typed two-decimal value.
	completePattern = regexp.MustCompile(`^[0-9]+\.[0-9]{2}$`)
)

// Parse converts field text to a number. Empty, non-numeric and non-finite
// input report ok=false.
func Parse(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// ValidKeystroke reports whether text is an acceptable field value after an
// edit. Rejected edits leave the field unchanged.
func ValidKeystroke(text string) bool {
	return keystrokePattern.MatchString(text)
}

// Complete reports whether text is a finished two-decimal value, which
// triggers auto-advance to the next field.
func Complete(text string) bool {
	return completePattern.MatchString(text)
}

// Format rewrites parseable text as a fixed two-decimal string. Anything
// else, such as a lone ".", is returned unchanged.
func Format(text string) string {
	n, ok := Parse(text)
	if !ok {
		return text
	}
	return FormatArea(Round2(n))
}

// Round2 rounds half away from zero to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// FormatArea renders a value with exactly two decimals.
func FormatArea(x float64) string {
	s := strconv.FormatFloat(x, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
