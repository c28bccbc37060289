package state

import (
	"fmt"
	"strings"

	"github.com/litescript/sightcalc/internal/entry"
)

// InputKind distinguishes keypad events.
type InputKind int

const (
	InputDigit InputKind = iota
	InputOperator
	InputSelect
)

// Operator is one of the keypad's operator keys.
type Operator int

const (
	OpEnter       Operator = iota // Validate and advance
	OpClearEntry                  // CE
	OpClearAll                    // C
	OpFoldMinutes                 // °
)

func (o Operator) String() string {
	switch o {
	case OpEnter:
		return "Enter"
	case OpClearEntry:
		return "CE"
	case OpClearAll:
		return "C"
	case OpFoldMinutes:
		return "°"
	default:
		return "?"
	}
}

// Input is a single event from the presentation layer.
type Input struct {
	Kind  InputKind
	Char  rune        // InputDigit: 0-9, '-' or '.'
	Op    Operator    // InputOperator
	Field entry.Field // InputSelect
}

// Digit returns a character key event.
func Digit(ch rune) Input {
	return Input{Kind: InputDigit, Char: ch}
}

// Press returns an operator key event.
func Press(op Operator) Input {
	return Input{Kind: InputOperator, Op: op}
}

// SelectField returns a direct field selection event.
func SelectField(f entry.Field) Input {
	return Input{Kind: InputSelect, Field: f}
}

func (in Input) String() string {
	switch in.Kind {
	case InputDigit:
		return string(in.Char)
	case InputOperator:
		return in.Op.String()
	case InputSelect:
		return "select " + in.Field.String()
	default:
		return "?"
	}
}

// ParseInput converts a replay token into an Input. Tokens are single
// keypad characters, the operator names ENTER, CE, C and DEG, or F1-F6
// to select a field directly. Operator names are case-insensitive.
func ParseInput(token string) (Input, error) {
	switch strings.ToUpper(token) {
	case "ENTER":
		return Press(OpEnter), nil
	case "CE":
		return Press(OpClearEntry), nil
	case "C":
		return Press(OpClearAll), nil
	case "DEG", "°":
		return Press(OpFoldMinutes), nil
	}

	if len(token) == 2 && (token[0] == 'F' || token[0] == 'f') {
		f := entry.Field(token[1] - '0')
		if f.Valid() {
			return SelectField(f), nil
		}
	}

	if len(token) == 1 {
		ch := rune(token[0])
		if (ch >= '0' && ch <= '9') || ch == '-' || ch == '.' {
			return Digit(ch), nil
		}
	}

	return Input{}, fmt.Errorf("unknown key %q", token)
}

// ParseInputs splits a space separated replay script into inputs. A token
// made only of keypad characters, such as "-12.5", is typed one key at a time.
func ParseInputs(script string) ([]Input, error) {
	var inputs []Input
	for _, tok := range strings.Fields(script) {
		in, err := ParseInput(tok)
		if err == nil {
			inputs = append(inputs, in)
			continue
		}
		if !isKeypadRun(tok) {
			return nil, err
		}
		for _, ch := range tok {
			inputs = append(inputs, Digit(ch))
		}
	}
	return inputs, nil
}

func isKeypadRun(s string) bool {
	for _, ch := range s {
		if (ch < '0' || ch > '9') && ch != '-' && ch != '.' {
			return false
		}
	}
	return s != ""
}
