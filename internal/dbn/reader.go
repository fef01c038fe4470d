// Package dbn reads dot-bracket structure files.
//
// Accepted layout (one structure per record):
//
//	# comment
//	>id optional description
//	GGGAAACCC          optional sequence line
//	(((...))) (-3.40)  structure; trailing fields such as RNAfold energies are ignored
//
// Records without a header are named after their line number.
package dbn

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Record is one structure and where it came from.
type Record struct {
	ID        string
	Seq       string
	Structure string
	Source    string
	Line      int
}

// ParseCtx scans r and calls emit for each structure record. Cancellation via
// ctx is checked between lines. Return a non-nil error from emit to stop early.
func ParseCtx(ctx context.Context, r io.Reader, source string, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id, seq string
		lineNo  int
	)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "", line[0] == '#':
			continue
		case line[0] == '>':
			id = headerID(line[1:])
			seq = ""
			continue
		case isSequence(line):
			seq += line
			continue
		}
		rec := Record{
			ID:        id,
			Seq:       seq,
			Structure: strings.Fields(line)[0],
			Source:    source,
			Line:      lineNo,
		}
		if rec.ID == "" {
			rec.ID = strconv.Itoa(lineNo)
		}
		if err := emit(rec); err != nil {
			return err
		}
		id, seq = "", ""
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: scan: %w", source, err)
	}
	return nil
}

// StreamPathCtx opens path ("-" = stdin, ".gz" decompressed) and parses it.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return ParseCtx(ctx, rc, path, emit)
}

// Open returns a reader for path: "-" is stdin and ".gz" files are decompressed.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}
	return fh, nil
}

func headerID(h string) string {
	f := strings.Fields(h)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// isSequence reports whether line is a bare nucleotide line (letters only).
func isSequence(line string) bool {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
			return false
		}
	}
	return true
}
