// Package entry implements the keypad state machine that edits the six
// angle fields of a sight reduction.
package entry

import "fmt"

// Field identifies one of the six angle entry slots.
type Field int

const (
	NoField Field = iota // Input disabled
	LHADegrees
	LHAMinutes
	LatDegrees
	LatMinutes
	DecDegrees
	DecMinutes
)

// FieldCount is the number of entry slots.
const FieldCount = 6

// Fields lists the slots in entry order.
var Fields = []Field{LHADegrees, LHAMinutes, LatDegrees, LatMinutes, DecDegrees, DecMinutes}

// Quantity names the angle a pair of fields describes.
type Quantity int

const (
	LHA Quantity = iota
	Latitude
	Declination
)

func (q Quantity) String() string {
	switch q {
	case LHA:
		return "LHA"
	case Latitude:
		return "Lat"
	case Declination:
		return "Dec"
	default:
		return "?"
	}
}

// Valid reports whether f is one of the six slots.
func (f Field) Valid() bool {
	return f >= LHADegrees && f <= DecMinutes
}

// IsDegrees reports whether f is the degrees half of its pair.
// Only degrees fields may carry a sign.
func (f Field) IsDegrees() bool {
	return f.Valid() && f%2 == 1
}

// Partner returns the other half of f's pair.
func (f Field) Partner() Field {
	switch {
	case !f.Valid():
		return NoField
	case f.IsDegrees():
		return f + 1
	default:
		return f - 1
	}
}

// Degrees returns the degrees field of f's pair.
func (f Field) Degrees() Field {
	if f.IsDegrees() {
		return f
	}
	return f.Partner()
}

// Next returns the following field, wrapping from the last to the first.
func (f Field) Next() Field {
	if !f.Valid() {
		return NoField
	}
	return f%FieldCount + 1
}

// Prev returns the preceding field, wrapping from the first to the last.
func (f Field) Prev() Field {
	if !f.Valid() {
		return NoField
	}
	return (f+FieldCount-2)%FieldCount + 1
}

// Quantity returns which angle f belongs to.
func (f Field) Quantity() Quantity {
	return Quantity((f - 1) / 2)
}

func (f Field) String() string {
	if !f.Valid() {
		return "none"
	}
	if f.IsDegrees() {
		return f.Quantity().String() + "°"
	}
	return f.Quantity().String() + "'"
}

// MarshalText implements encoding.TextMarshaler.
func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Field) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "none" {
		*f = NoField
		return nil
	}
	for _, candidate := range Fields {
		if candidate.String() == s {
			*f = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown field %q", s)
}
