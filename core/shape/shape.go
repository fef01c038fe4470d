// Package shape abstracts dot-bracket structures into shape levels 5, 3 and 1.
//
// Level 5 keeps only helix nesting. Level 1 also marks unpaired regions
// between and around helices with '_' and opens a new bracket group at every
// gap inside a helix. Level 3 is level 1 with the '_' markers removed.
package shape

import (
	"fmt"
	"strconv"

	"rnashapes-core/dotbracket"
	"rnashapes-core/stem"
)

// Level names a shape abstraction level.
type Level int

const (
	Level1 Level = 1
	Level3 Level = 3
	Level5 Level = 5
)

// Levels lists the supported levels in output order.
var Levels = []Level{Level1, Level3, Level5}

func (l Level) String() string { return "level" + strconv.Itoa(int(l)) }

// ParseLevel accepts "1", "3", "5" (optionally prefixed with "level").
func ParseLevel(s string) (Level, error) {
	if len(s) > 5 && s[:5] == "level" {
		s = s[5:]
	}
	switch s {
	case "1":
		return Level1, nil
	case "3":
		return Level3, nil
	case "5":
		return Level5, nil
	}
	return 0, fmt.Errorf("unknown shape level %q (want 1, 3 or 5)", s)
}

// Shapes holds the three abstractions of one structure.
type Shapes struct {
	Level5 string
	Level3 string
	Level1 string
}

// At returns the shape string for level l ("" for unknown levels).
func (s Shapes) At(l Level) string {
	switch l {
	case Level1:
		return s.Level1
	case Level3:
		return s.Level3
	case Level5:
		return s.Level5
	}
	return ""
}

// Find validates structure, segments it into stems and composes its shapes.
// Validation errors wrap dotbracket.ErrInvalidAlphabet or dotbracket.ErrUnbalanced.
func Find(structure string) (Shapes, error) {
	if err := dotbracket.Validate(structure); err != nil {
		return Shapes{}, err
	}
	stems, err := stem.Segment(structure)
	if err != nil {
		return Shapes{}, err
	}
	return Compose(structure, stems), nil
}
