// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"rnashapes/pkg/api"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
)

// Options shared by all writers.
type Options struct {
	Header bool // column header (tsv) / record header (text)
	Sort   bool // sort shapes by source, then id
	Pretty bool // lipgloss rendering where supported
	Level  int  // text: print only this level (0 = all three)
}

// ShapeWriterFunc drains in and writes every shape to w.
type ShapeWriterFunc func(w io.Writer, in <-chan api.ShapeV1, o Options) error

// ReportWriterFunc writes one regression report.
type ReportWriterFunc func(w io.Writer, r api.BenchReportV1, o Options) error

// Writer registries (format → handler). Register in init() blocks.
var (
	ShapeWriters  = map[string]ShapeWriterFunc{}
	ReportWriters = map[string]ReportWriterFunc{}
)

// Register helpers (idempotent last-wins)
func RegisterShape(format string, fn ShapeWriterFunc)   { ShapeWriters[format] = fn }
func RegisterReport(format string, fn ReportWriterFunc) { ReportWriters[format] = fn }

// StartShapeWriter spins up a writer goroutine for format. Close the returned
// channel when done, then read the error channel once.
func StartShapeWriter(out io.Writer, format string, o Options, bufSize int) (chan<- api.ShapeV1, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.ShapeV1, bufSize)
	errCh := make(chan error, 1)

	fn, ok := ShapeWriters[format]
	go func() {
		if !ok {
			for range in {
			}
			errCh <- fmt.Errorf("unknown shape format %q (no writer registered)", format)
			return
		}
		src := (<-chan api.ShapeV1)(in)
		if o.Sort {
			src = sorted(in)
		}
		err := fn(out, src, o)
		// drain so producers never block on a failed writer
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}

// WriteReport dispatches a regression report to the writer for format.
func WriteReport(format string, w io.Writer, r api.BenchReportV1, o Options) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, r, o)
}

// sorted buffers in and replays it ordered by source file, then id.
func sorted(in <-chan api.ShapeV1) <-chan api.ShapeV1 {
	list := drain(in)
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Source != list[j].Source {
			return list[i].Source < list[j].Source
		}
		return list[i].ID < list[j].ID
	})
	out := make(chan api.ShapeV1, len(list))
	for _, s := range list {
		out <- s
	}
	close(out)
	return out
}

func drain(in <-chan api.ShapeV1) []api.ShapeV1 {
	list := make([]api.ShapeV1, 0, 128)
	for s := range in {
		list = append(list, s)
	}
	return list
}
