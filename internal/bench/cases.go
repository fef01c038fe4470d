// Package bench is the shape regression harness: it replays files of
// (structure, level 5, level 3, level 1) line groups and tallies mismatches.
package bench

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"rnashapes-core/shape"
	"rnashapes/internal/dbn"
)

// Case is one four-line group of a regression file.
type Case struct {
	Line      int // 1-based line of the structure
	Structure string
	Want      shape.Shapes
}

// ParseCases reads groups of four trimmed lines: structure, level 5,
// level 3, level 1. Empty lines are data (the level-5 shape of an unpaired
// structure is empty); only blank lines that would leave an incomplete
// trailing group are dropped.
func ParseCases(r io.Reader) ([]Case, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan cases: %w", err)
	}
	for len(lines)%4 != 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines)%4 != 0 {
		start := len(lines) - len(lines)%4 + 1
		return nil, fmt.Errorf("incomplete case group starting at line %d (want 4 lines per case)", start)
	}

	cases := make([]Case, 0, len(lines)/4)
	for i := 0; i < len(lines); i += 4 {
		cases = append(cases, Case{
			Line:      i + 1,
			Structure: lines[i],
			Want:      shape.Shapes{Level5: lines[i+1], Level3: lines[i+2], Level1: lines[i+3]},
		})
	}
	return cases, nil
}

// LoadCases reads a regression file ("-" = stdin, ".gz" decompressed).
func LoadCases(path string) ([]Case, error) {
	rc, err := dbn.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	cases, err := ParseCases(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}
