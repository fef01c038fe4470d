// internal/writers/shapes.go
package writers

import (
	"bufio"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"rnashapes/internal/jsonlutil"
	"rnashapes/internal/pretty"
	"rnashapes/pkg/api"
)

func init() {
	RegisterShape(FormatText, writeShapesText)
	RegisterShape(FormatTSV, writeShapesTSV)

	// JSON array
	RegisterShape(FormatJSON, func(w io.Writer, in <-chan api.ShapeV1, _ Options) error {
		return jsonlutil.EncodeIndent(w, drain(in))
	})

	// JSONL streaming
	RegisterShape(FormatJSONL, func(w io.Writer, in <-chan api.ShapeV1, _ Options) error {
		return jsonlutil.Encode[api.ShapeV1](w, in, IsBrokenPipe)
	})

	// YAML sequence
	RegisterShape(FormatYAML, func(w io.Writer, in <-chan api.ShapeV1, _ Options) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(drain(in)); err != nil {
			return err
		}
		return enc.Close()
	})
}

// TSVHeader is the first line of tsv output.
const TSVHeader = "# id\tstructure\tlevel5\tlevel3\tlevel1\tstems"

// writeShapesText prints level 1, level 3 and level 5 on separate lines
// (or only o.Level). With o.Header each record starts with ">id".
func writeShapesText(w io.Writer, in <-chan api.ShapeV1, o Options) error {
	bw := bufio.NewWriter(w)
	for s := range in {
		if o.Pretty {
			if _, err := fmt.Fprintln(bw, pretty.RenderShape(s)); err != nil {
				return err
			}
			continue
		}
		if o.Header {
			if _, err := fmt.Fprintf(bw, ">%s\n", s.ID); err != nil {
				return err
			}
		}
		for _, line := range textLevels(s, o.Level) {
			if _, err := fmt.Fprintln(bw, line); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func textLevels(s api.ShapeV1, level int) []string {
	switch level {
	case 1:
		return []string{s.Level1}
	case 3:
		return []string{s.Level3}
	case 5:
		return []string{s.Level5}
	}
	return []string{s.Level1, s.Level3, s.Level5}
}

func writeShapesTSV(w io.Writer, in <-chan api.ShapeV1, o Options) error {
	bw := bufio.NewWriter(w)
	if o.Header {
		if _, err := fmt.Fprintln(bw, TSVHeader); err != nil {
			return err
		}
	}
	for s := range in {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			s.ID, s.Structure, s.Level5, s.Level3, s.Level1, s.Stems); err != nil {
			return err
		}
	}
	return bw.Flush()
}
