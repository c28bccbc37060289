package entry

import (
	"fmt"
	"strings"

	"github.com/litescript/sightcalc/internal/astro"
)

// MaxLen is the longest text a field accepts from the keypad.
const MaxLen = 10

// Feedback is the outcome of a keypad action, used by the presentation
// layer to pick a tone or flash.
type Feedback int

const (
	FeedbackNone     Feedback = iota // Ignored; nothing to signal
	FeedbackAccepted                 // Input taken
	FeedbackRejected                 // Input refused, state unchanged (or overflow marked)
	FeedbackAdvanced                 // Cursor moved to the next field
)

func (f Feedback) String() string {
	switch f {
	case FeedbackNone:
		return "none"
	case FeedbackAccepted:
		return "accepted"
	case FeedbackRejected:
		return "rejected"
	case FeedbackAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Feedback) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Pair holds the degrees and minutes text of one angle.
type Pair struct {
	Degrees string
	Minutes string
}

// Decimal returns the pair as signed decimal degrees. Unparseable degrees
// give 0 regardless of minutes; unparseable minutes contribute nothing.
func (p Pair) Decimal() float64 {
	deg, ok := Parse(p.Degrees)
	if !ok {
		return 0
	}
	mins, ok := Parse(p.Minutes)
	if !ok {
		return deg
	}
	return astro.DegMin(deg, mins)
}

// Buffers is the text of all six fields.
type Buffers struct {
	LHA Pair
	Lat Pair
	Dec Pair
}

// Get returns the text of field f, or "" for an invalid field.
func (b Buffers) Get(f Field) string {
	if p := (&b).ptr(f); p != nil {
		return *p
	}
	return ""
}

func (b *Buffers) ptr(f Field) *string {
	switch f {
	case LHADegrees:
		return &b.LHA.Degrees
	case LHAMinutes:
		return &b.LHA.Minutes
	case LatDegrees:
		return &b.Lat.Degrees
	case LatMinutes:
		return &b.Lat.Minutes
	case DecDegrees:
		return &b.Dec.Degrees
	case DecMinutes:
		return &b.Dec.Minutes
	default:
		return nil
	}
}

// Values is the three angles as signed decimal degrees.
type Values struct {
	LHA float64
	Lat float64
	Dec float64
}

// Store is the angle entry state machine. It is not safe for concurrent
// use; see state.Manager for a locked wrapper.
type Store struct {
	buf    Buffers
	active Field
}

// NewStore returns a store with empty fields and the first field active.
func NewStore() *Store {
	return &Store{active: LHADegrees}
}

// Active returns the active field, or NoField when input is disabled.
func (s *Store) Active() Field {
	return s.active
}

// Buffer returns the text of field f.
func (s *Store) Buffer(f Field) string {
	return s.buf.Get(f)
}

// Buffers returns a copy of all six fields.
func (s *Store) Buffers() Buffers {
	return s.buf
}

// Values returns the live decimal-degree angles without folding anything
// into storage.
func (s *Store) Values() Values {
	return Values{
		LHA: s.buf.LHA.Decimal(),
		Lat: s.buf.Lat.Decimal(),
		Dec: s.buf.Dec.Decimal(),
	}
}

// Overflowed reports whether field f holds the overflow marker.
func (s *Store) Overflowed(f Field) bool {
	return s.buf.Get(f) == OverflowMarker
}

// Append adds a keypad character to the active field.
//
// A minus sign is only taken as the first character of a degrees field,
// a decimal point only once per field, and nothing past MaxLen characters.
func (s *Store) Append(ch rune) Feedback {
	p := s.buf.ptr(s.active)
	if p == nil {
		return FeedbackNone
	}
	if *p == OverflowMarker {
		return FeedbackRejected
	}

	switch {
	case ch == '-':
		if !s.active.IsDegrees() || *p != "" {
			return FeedbackRejected
		}
	case ch == '.':
		if strings.ContainsRune(*p, '.') {
			return FeedbackRejected
		}
	case ch < '0' || ch > '9':
		return FeedbackRejected
	}

	if len(*p) > MaxLen-1 {
		return FeedbackRejected
	}
	*p += string(ch)
	return FeedbackAccepted
}

// ClearActive empties the active field.
func (s *Store) ClearActive() Feedback {
	if p := s.buf.ptr(s.active); p != nil {
		*p = ""
	}
	return FeedbackAccepted
}

// ClearAll empties every field and makes the first one active.
func (s *Store) ClearAll() Feedback {
	s.buf = Buffers{}
	s.active = LHADegrees
	return FeedbackAccepted
}

// Advance validates the active field and moves to the next one.
//
// A value whose magnitude exceeds MaxMagnitude is replaced by the overflow
// marker and the cursor stays put. Empty or partial entries pass.
func (s *Store) Advance() Feedback {
	p := s.buf.ptr(s.active)
	if p == nil {
		return FeedbackNone
	}
	if *p == OverflowMarker {
		return FeedbackRejected
	}
	if v, ok := Parse(*p); ok && (v > MaxMagnitude || v < -MaxMagnitude) {
		*p = OverflowMarker
		return FeedbackRejected
	}
	s.active = s.active.Next()
	return FeedbackAdvanced
}

// FoldMinutes merges the active pair's minutes into its degrees field and
// clears the minutes field. It works from either half of the pair and
// never moves the cursor.
//
// The half that is not active must be non-empty and the minutes must
// parse. Folding from the minutes slot when the degrees text does not
// parse gives minutes/60 with no sign applied; from the degrees slot the
// same input is rejected.
func (s *Store) FoldMinutes() Feedback {
	if !s.active.Valid() {
		return FeedbackNone
	}

	degField := s.active.Degrees()
	minField := degField.Partner()
	degText := s.buf.ptr(degField)
	minText := s.buf.ptr(minField)

	if *s.buf.ptr(s.active.Partner()) == "" {
		return FeedbackRejected
	}
	mins, ok := Parse(*minText)
	if !ok {
		return FeedbackRejected
	}

	var folded float64
	if deg, ok := Parse(*degText); ok {
		folded = astro.DegMin(deg, mins)
	} else if s.active.IsDegrees() {
		return FeedbackRejected
	} else {
		folded = mins / 60
	}

	*degText = fmt.Sprintf("%.5f", folded)
	*minText = ""
	return FeedbackAccepted
}

// Select makes f the active field. Any valid field may be selected at any
// time, including in the middle of editing another.
func (s *Store) Select(f Field) Feedback {
	if !f.Valid() {
		return FeedbackRejected
	}
	s.active = f
	return FeedbackAccepted
}

// Disable clears the active field so keypad input is ignored.
func (s *Store) Disable() {
	s.active = NoField
}
