package store

import "github.com/spf13/cast"

// ToFloat converts any stored or user-supplied value to a float64, coercing
// missing, null or malformed values to 0. One bad spreadsheet-era row must
// never block totals for an entire job, so every numeric read in the app
// goes through this single lenient conversion point rather than ad hoc
// parsing at each call site.
func ToFloat(v any) float64 {
	return cast.ToFloat64(v)
}

// ToInt is the integer counterpart of ToFloat, used for man-day counts.
func ToInt(v any) int {
	return cast.ToInt(v)
}
