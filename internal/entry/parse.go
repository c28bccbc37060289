package entry

import "strconv"

// OverflowMarker replaces a field's text when Advance finds a magnitude
// above MaxMagnitude. The field must be cleared before it can be edited.
const OverflowMarker = "Over 360!"

// MaxMagnitude is the largest absolute value a field may hold on Advance.
const MaxMagnitude = 360.0

// Parse reads a field buffer as a decimal number.
//
// Only plain keypad numerals are accepted: an optional leading minus, digits,
// and at most one decimal point, with at least one digit. Empty buffers,
// a lone sign or point, the overflow marker and anything else report ok=false.
// Callers choose their own default for that case.
func Parse(s string) (v float64, ok bool) {
	digits, points := 0, 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			points++
		case r == '-' && i == 0:
		default:
			return 0, false
		}
	}
	if digits == 0 || points > 1 {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
