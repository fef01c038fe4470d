// core/shape/compose.go
package shape

import (
	"strings"

	"rnashapes-core/stem"
)

// fragment is the level-1 token run registered at one structure position.
type fragment struct {
	level1 string
	level5 byte
}

// Compose builds the three shape levels from a structure and its stems
// (as returned by stem.Segment). It does not revalidate its input.
func Compose(structure string, stems []stem.Stem) Shapes {
	n := len(structure)
	frags := make([]*fragment, n)
	occupied := make([]bool, n)

	for _, st := range stems {
		if st.Len() == 0 {
			continue
		}
		opening, closing := stemFragments(st)
		openers, closers := st.Openers(), st.Closers()
		markRange(occupied, openers[0], openers[len(openers)-1])
		markRange(occupied, closers[0], closers[len(closers)-1])
		frags[openers[0]] = &fragment{level1: opening, level5: '['}
		frags[closers[0]] = &fragment{level1: closing, level5: ']'}
	}

	var l1, l5 strings.Builder
	gap := false // l1 currently ends with '_'
	for i := 0; i < n; i++ {
		if f := frags[i]; f != nil {
			l1.WriteString(f.level1)
			l5.WriteByte(f.level5)
			gap = false
		}
		if structure[i] == '.' && !gap && !occupied[i] {
			l1.WriteByte('_')
			gap = true
		}
	}

	level1 := strings.ReplaceAll(l1.String(), "[_]", "[]")
	return Shapes{
		Level5: l5.String(),
		Level3: strings.ReplaceAll(level1, "_", ""),
		Level1: level1,
	}
}

// stemFragments returns the opening and closing level-1 tokens of one stem.
// The closing side is built mirrored: tokens are prepended.
func stemFragments(st stem.Stem) (opening, closing string) {
	var (
		o    []byte
		c    []byte
		prev stem.Pair
	)
	for i, p := range st.ByOpener() {
		if i == 0 {
			o = append(o, '[')
			c = append([]byte{']'}, c...)
			prev = p
			continue
		}
		if abs(p.Open-prev.Open) != 1 {
			o = append(o, '_')
		}
		if abs(p.Close-prev.Close) != 1 {
			c = append([]byte{'_'}, c...)
		}
		if o[len(o)-1] == '_' || c[0] == '_' {
			o = append(o, '[')
			c = append([]byte{']'}, c...)
		}
		prev = p
	}
	return string(o), string(c)
}

func markRange(occupied []bool, lo, hi int) {
	for i := lo; i <= hi; i++ {
		occupied[i] = true
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
