// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Encode writes every value of in as one JSON line to out and drains in
// fully even after an error. isBroken recognizes broken/closed pipe errors,
// which are suppressed.
func Encode[T any](out io.Writer, in <-chan T, isBroken func(error) bool) error {
	bw := bwPool.Get().(*bufio.Writer)
	// Rebind to the actual output while keeping the pooled buffer.
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	var err error
	for v := range in {
		if err != nil {
			continue
		}
		err = enc.Encode(v)
	}
	if err == nil {
		err = bw.Flush()
	}
	if isBroken != nil && isBroken(err) {
		return nil
	}
	return err
}

// EncodeIndent writes v as indented JSON to w.
func EncodeIndent(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
