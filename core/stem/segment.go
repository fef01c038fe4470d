// core/stem/segment.go
package stem

import (
	"errors"
	"fmt"
)

// ErrStructuralContradiction means a ')' was scanned with no open '(' left.
// Structures accepted by dotbracket.Validate never produce it.
var ErrStructuralContradiction = errors.New("structural contradiction")

// Segment scans structure once and returns its stems. A new stem starts at
// every closing run; the run ends when an opening bracket interrupts it or
// when a pop exposes an opener already marked as the end of an enclosing stem.
func Segment(structure string) ([]Stem, error) {
	stems, _, err := scan(structure)
	return stems, err
}

// scan also reports the number of cursor advances.
func scan(structure string) ([]Stem, int, error) {
	var (
		c       = &cursor{s: structure}
		openers = make([]int, 0, len(structure)/2)
		ended   = make([]bool, len(structure))
		stems   []Stem
	)

	for !c.done() {
		switch c.peek() {
		case '(':
			openers = append(openers, c.pos())
		case ')':
			var cur Stem
		run:
			for !c.done() {
				switch c.peek() {
				case ')':
					if len(openers) == 0 {
						return nil, c.advances, fmt.Errorf("%w: ')' at %d with no open '('", ErrStructuralContradiction, c.pos()+1)
					}
					top := openers[len(openers)-1]
					openers = openers[:len(openers)-1]
					cur.Pairs = append(cur.Pairs, Pair{Open: top, Close: c.pos()})
					if n := len(openers); n > 0 && ended[openers[n-1]] {
						break run
					}
				case '(':
					if n := len(openers); n > 0 {
						ended[openers[n-1]] = true
					}
					c.rewind()
					break run
				}
				c.advance()
			}
			stems = append(stems, cur)
		}
		c.advance()
	}
	return stems, c.advances, nil
}
