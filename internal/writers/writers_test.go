package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"rnashapes/pkg/api"
)

var sample = []api.ShapeV1{
	{ID: "b", Structure: "(())...(())", Level5: "[][]", Level3: "[][]", Level1: "[]_[]", Stems: 2},
	{ID: "a", Structure: "...", Level1: "_"},
}

func write(t *testing.T, format string, o Options) string {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartShapeWriter(&buf, format, o, 1)
	for _, s := range sample {
		in <- s
	}
	close(in)
	require.NoError(t, <-done)
	return buf.String()
}

func TestShapeText(t *testing.T) {
	got := write(t, FormatText, Options{})
	assert.Equal(t, "[]_[]\n[][]\n[][]\n_\n\n\n", got)

	got = write(t, FormatText, Options{Header: true, Level: 1})
	assert.Equal(t, ">b\n[]_[]\n>a\n_\n", got)
}

func TestShapeTSV_Sorted(t *testing.T) {
	got := write(t, FormatTSV, Options{Header: true, Sort: true})
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, TSVHeader, lines[0])
	assert.Equal(t, "a\t...\t\t\t_\t0", lines[1])
	assert.Equal(t, "b\t(())...(())\t[][]\t[][]\t[]_[]\t2", lines[2])
}

func TestShapeJSONAndJSONL(t *testing.T) {
	var got []api.ShapeV1
	require.NoError(t, json.Unmarshal([]byte(write(t, FormatJSON, Options{})), &got))
	if diff := cmp.Diff(sample, got); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}

	lines := strings.Split(strings.TrimSpace(write(t, FormatJSONL, Options{})), "\n")
	require.Len(t, lines, 2)
	var first api.ShapeV1
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, sample[0], first)
}

func TestShapeYAML(t *testing.T) {
	var got []api.ShapeV1
	require.NoError(t, yaml.Unmarshal([]byte(write(t, FormatYAML, Options{})), &got))
	if diff := cmp.Diff(sample, got); diff != "" {
		t.Fatalf("yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestUnknownShapeFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartShapeWriter(&b, "nope-format", Options{}, 1)
	in <- sample[0]
	close(in)
	err := <-done
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown shape format")
}

func TestReportWriters(t *testing.T) {
	r := api.BenchReportV1{
		RunID: "run-1", Cases: 2, Passed: 1, FailedLevel3: 1, SuccessRatio: 5.0 / 6.0,
		Level3: []api.MismatchV1{{Line: 5, Structure: "(.(.).)", Got: "[[]]", Want: "[]"}},
	}

	var txt bytes.Buffer
	require.NoError(t, WriteReport(FormatText, &txt, r, Options{}))
	assert.Contains(t, txt.String(), "success_ratio\t0.8333")
	assert.Contains(t, txt.String(), "5\t(.(.).)\t[[]]\t[]")

	var js bytes.Buffer
	require.NoError(t, WriteReport(FormatJSON, &js, r, Options{}))
	var back api.BenchReportV1
	require.NoError(t, json.Unmarshal(js.Bytes(), &back))
	assert.Equal(t, r, back)

	var y bytes.Buffer
	require.NoError(t, WriteReport(FormatYAML, &y, r, Options{}))
	assert.Contains(t, y.String(), "run_id: run-1")

	err := WriteReport("xml", &bytes.Buffer{}, r, Options{})
	assert.ErrorContains(t, err, "unknown report format")
}

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatTSV != "tsv" || FormatJSON != "json" || FormatJSONL != "jsonl" || FormatYAML != "yaml" {
		t.Fatalf("output format constants changed")
	}
}
