package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"rnashapes-core/dotbracket"
	"rnashapes-core/shape"
	"rnashapes-core/stem"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Compile-time check: the core adapter satisfies the contract.
var _ Shaper = Core{}

type fakeShaper struct{}

func (fakeShaper) Shape(s string) (shape.Shapes, []stem.Stem, error) {
	return shape.Shapes{Level1: "#" + s}, []stem.Stem{{}}, nil
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func manyStructures(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, ">r%d\n%s(())%s\n", i, strings.Repeat(".", i%5), strings.Repeat(".", i%3))
	}
	return b.String()
}

func TestForEachShape_Core(t *testing.T) {
	fn := writeFile(t, "a.dbn", ">a\n(())...(())\n>bad\n((x))\n")
	var got []Result
	err := ForEachShape(context.Background(), Config{Threads: 2}, []string{fn}, Core{}, func(r Result) error {
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "a", got[0].Record.ID)
	assert.Equal(t, shape.Shapes{Level5: "[][]", Level3: "[][]", Level1: "[]_[]"}, got[0].Shapes)
	assert.Equal(t, 2, got[0].Stems)
	assert.NoError(t, got[0].Err)

	assert.Equal(t, "bad", got[1].Record.ID)
	assert.ErrorIs(t, got[1].Err, dotbracket.ErrInvalidAlphabet)
}

func TestForEachShape_ParallelKeepsOrder(t *testing.T) {
	a := writeFile(t, "a.dbn", manyStructures(200))
	b := writeFile(t, "b.dbn", manyStructures(37))

	run := func(threads int) []string {
		var ids []string
		err := ForEachShape(context.Background(), Config{Threads: threads}, []string{a, b}, fakeShaper{}, func(r Result) error {
			assert.Equal(t, len(ids), r.Seq)
			ids = append(ids, r.Record.ID+"="+r.Shapes.Level1)
			return nil
		})
		require.NoError(t, err)
		return ids
	}
	serial := run(1)
	require.Len(t, serial, 237)
	assert.Equal(t, serial, run(8))
}

func TestForEachShape_VisitErrorStops(t *testing.T) {
	fn := writeFile(t, "a.dbn", manyStructures(500))
	stop := errors.New("stop")
	n := 0
	err := ForEachShape(context.Background(), Config{Threads: 4}, []string{fn}, fakeShaper{}, func(Result) error {
		n++
		if n == 3 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 3, n)
}

func TestForEachShape_MissingFile(t *testing.T) {
	err := ForEachShape(context.Background(), Config{}, []string{filepath.Join(t.TempDir(), "nope")}, Core{}, func(Result) error { return nil })
	require.Error(t, err)
}

func TestForEachShape_Cancelled(t *testing.T) {
	fn := writeFile(t, "a.dbn", manyStructures(50))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachShape(ctx, Config{Threads: 2}, []string{fn}, Core{}, func(Result) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}
