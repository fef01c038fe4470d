// Package stem partitions the base pairs of a dot-bracket structure into
// stems (helices), in the order their closing runs are scanned.
package stem

import "sort"

// Pair is one base pair; Open < Close.
type Pair struct {
	Open  int
	Close int
}

// Stem is one helix. Pairs are kept in formation order (innermost first).
type Stem struct {
	Pairs []Pair
}

// Len returns the number of base pairs in the stem.
func (s Stem) Len() int { return len(s.Pairs) }

// Openers returns the opening positions in ascending order.
func (s Stem) Openers() []int {
	out := make([]int, len(s.Pairs))
	for i, p := range s.Pairs {
		out[i] = p.Open
	}
	sort.Ints(out)
	return out
}

// Closers returns the closing positions in ascending order.
func (s Stem) Closers() []int {
	out := make([]int, len(s.Pairs))
	for i, p := range s.Pairs {
		out[i] = p.Close
	}
	sort.Ints(out)
	return out
}

// ByOpener returns the pairs sorted by ascending opening position.
func (s Stem) ByOpener() []Pair {
	out := append([]Pair(nil), s.Pairs...)
	sort.Slice(out, func(i, j int) bool { return out[i].Open < out[j].Open })
	return out
}

// CloserOf returns the partner of opening position open, if it belongs to s.
func (s Stem) CloserOf(open int) (int, bool) {
	for _, p := range s.Pairs {
		if p.Open == open {
			return p.Close, true
		}
	}
	return -1, false
}

// Span returns the outermost positions covered by the stem
// (minimum opener, maximum closer). An empty stem returns (-1, -1).
func (s Stem) Span() (lo, hi int) {
	if len(s.Pairs) == 0 {
		return -1, -1
	}
	lo, hi = s.Pairs[0].Open, s.Pairs[0].Close
	for _, p := range s.Pairs[1:] {
		if p.Open < lo {
			lo = p.Open
		}
		if p.Close > hi {
			hi = p.Close
		}
	}
	return lo, hi
}
