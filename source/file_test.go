package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amitger07/yodle-juggle-fest/format"
	"github.com/amitger07/yodle-juggle-fest/types"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "jugglefest.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFile_LoadPopulation(t *testing.T) {
	t.Run("parses the file", func(t *testing.T) {
		path := writeFile(t, "C C0 H:7 E:7 P:10\nC C1 H:2 E:1 P:1\nJ J0 H:3 E:9 P:2 C1,C0\nJ J1 H:4 E:3 P:7 C0,C1\n")
		src := NewFile(path)
		require.Equal(t, path, src.Path())

		pop, err := src.LoadPopulation(context.Background())

		require.NoError(t, err)
		require.Len(t, pop.Circuits, 2)
		require.Len(t, pop.Jugglers, 2)
		require.Equal(t, "J0 C1:17 C0:104", pop.Jugglers[0].String())
	})

	t.Run("fresh population on every load", func(t *testing.T) {
		src := NewFile(writeFile(t, "C C0 H:1 E:1 P:1\n"))

		first, err := src.LoadPopulation(context.Background())
		require.NoError(t, err)
		second, err := src.LoadPopulation(context.Background())
		require.NoError(t, err)

		require.NotSame(t, first.Circuits[0], second.Circuits[0])
	})

	t.Run("missing file", func(t *testing.T) {
		src := NewFile(filepath.Join(t.TempDir(), "nope.txt"))

		_, err := src.LoadPopulation(context.Background())

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("parse error keeps its line", func(t *testing.T) {
		src := NewFile(writeFile(t, "C C0 H:1 E:1 P:1\nJ J0 H:1 E:1 P:1 C7\n"))

		_, err := src.LoadPopulation(context.Background())

		require.ErrorIs(t, err, types.ErrUnknownCircuit)
		var perr *format.ParseError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, 2, perr.Line)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewFile(writeFile(t, "")).LoadPopulation(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}
