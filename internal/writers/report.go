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
	RegisterReport(FormatText, writeReportText)
	RegisterReport(FormatJSON, func(w io.Writer, r api.BenchReportV1, _ Options) error {
		return jsonlutil.EncodeIndent(w, r)
	})
	RegisterReport(FormatYAML, func(w io.Writer, r api.BenchReportV1, _ Options) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	})
}

func writeReportText(w io.Writer, r api.BenchReportV1, o Options) error {
	bw := bufio.NewWriter(w)
	if o.Pretty {
		fmt.Fprintln(bw, pretty.RenderReport(r))
		return bw.Flush()
	}

	fmt.Fprintf(bw, "run\t%s\n", r.RunID)
	if r.Source != "" {
		fmt.Fprintf(bw, "source\t%s\n", r.Source)
	}
	fmt.Fprintf(bw, "cases\t%d\n", r.Cases)
	fmt.Fprintf(bw, "passed\t%d\n", r.Passed)
	fmt.Fprintf(bw, "failed_level5\t%d\n", r.FailedLevel5)
	fmt.Fprintf(bw, "failed_level3\t%d\n", r.FailedLevel3)
	fmt.Fprintf(bw, "failed_level1\t%d\n", r.FailedLevel1)
	fmt.Fprintf(bw, "invalid\t%d\n", r.Invalid)
	fmt.Fprintf(bw, "success_ratio\t%.4f\n", r.SuccessRatio)

	for _, sec := range []struct {
		name string
		list []api.MismatchV1
	}{
		{"level5", r.Level5},
		{"level3", r.Level3},
		{"level1", r.Level1},
		{"invalid", r.InvalidCases},
	} {
		if len(sec.list) == 0 {
			continue
		}
		fmt.Fprintf(bw, "\n# %s mismatches (line\tstructure\tgot\twant)\n", sec.name)
		for _, m := range sec.list {
			fmt.Fprintf(bw, "%d\t%s\t%s\t%s\n", m.Line, m.Structure, m.Got, m.Want)
		}
	}
	return bw.Flush()
}
