package dbn

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const sample = `# two hairpins
>hp1 first hairpin
GGGAAACCC
(((...))) (-3.40)

..((..)).
>empty
.....
`

func collect(t *testing.T, ctx context.Context, src string) ([]Record, error) {
	t.Helper()
	var got []Record
	err := ParseCtx(ctx, strings.NewReader(src), "mem", func(r Record) error {
		got = append(got, r)
		return nil
	})
	return got, err
}

func TestParseCtx(t *testing.T) {
	got, err := collect(t, context.Background(), sample)
	require.NoError(t, err)
	want := []Record{
		{ID: "hp1", Seq: "GGGAAACCC", Structure: "(((...)))", Source: "mem", Line: 4},
		{ID: "6", Structure: "..((..)).", Source: "mem", Line: 6},
		{ID: "empty", Structure: ".....", Source: "mem", Line: 8},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCtx_KeepsInvalidStructures(t *testing.T) {
	got, err := collect(t, context.Background(), "((x))\n")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "((x))", got[0].Structure)
}

func TestParseCtx_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := collect(t, ctx, sample)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, got)
}

func TestParseCtx_EmitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := ParseCtx(context.Background(), strings.NewReader(sample), "mem", func(Record) error {
		n++
		return stop
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 1, n)
}

func TestStreamPathCtx_Gzip(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(">a\n((..))\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	path := filepath.Join(t.TempDir(), "s.dbn.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	var got []Record
	require.NoError(t, StreamPathCtx(context.Background(), path, func(r Record) error {
		got = append(got, r)
		return nil
	}))
	require.Len(t, got, 1)
	require.Equal(t, "a", got[0].ID)
	require.Equal(t, path, got[0].Source)
}

func TestStreamPathCtx_Missing(t *testing.T) {
	err := StreamPathCtx(context.Background(), filepath.Join(t.TempDir(), "nope"), func(Record) error { return nil })
	require.Error(t, err)
}
