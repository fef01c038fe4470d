// core/dotbracket/validate.go
package dotbracket

import (
	"errors"
	"fmt"
	"strings"
)

// Structure alphabet.
const (
	Open     = '('
	Close    = ')'
	Unpaired = '.'
)

var (
	// ErrInvalidAlphabet reports a character outside "()."
	ErrInvalidAlphabet = errors.New("invalid dot-bracket character")
	// ErrUnbalanced reports unequal bracket counts or a ')' without an open '('.
	ErrUnbalanced = errors.New("unbalanced parentheses")
)

// Error carries the offending position of a rejected structure.
// Kind is one of the sentinel errors above.
type Error struct {
	Kind error
	Pos  int
	Char rune
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrInvalidAlphabet:
		return fmt.Sprintf("%v %q at %d; allowed: ( ) .", e.Kind, e.Char, e.Pos+1)
	case ErrUnbalanced:
		if e.Char == Close {
			return fmt.Sprintf("%v: ')' at %d has no matching '('", e.Kind, e.Pos+1)
		}
		return fmt.Sprintf("%v: '(' at %d is never closed", e.Kind, e.Pos+1)
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error { return e.Kind }

// Normalize trims surrounding whitespace (trailing CR/LF from files).
func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}

// Validate checks the alphabet and full bracket nesting. A nil return
// guarantees every ')' closes an earlier '(' and no '(' is left open.
// Alphabet errors win over nesting errors.
func Validate(s string) error {
	for i, r := range s {
		if r != Open && r != Close && r != Unpaired {
			return &Error{Kind: ErrInvalidAlphabet, Pos: i, Char: r}
		}
	}
	depth, outer := 0, -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case Open:
			if depth == 0 {
				outer = i
			}
			depth++
		case Close:
			if depth == 0 {
				return &Error{Kind: ErrUnbalanced, Pos: i, Char: Close}
			}
			depth--
		}
	}
	if depth != 0 {
		return &Error{Kind: ErrUnbalanced, Pos: outer, Char: Open}
	}
	return nil
}

// IsValid is the pass/fail form of Validate.
func IsValid(s string) bool { return Validate(s) == nil }

// Counts returns the number of '(', ')' and '.' characters in s.
func Counts(s string) (opened, closed, unpaired int) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case Open:
			opened++
		case Close:
			closed++
		case Unpaired:
			unpaired++
		}
	}
	return
}
