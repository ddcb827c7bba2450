package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amitger07/yodle-juggle-fest/format"
	"github.com/amitger07/yodle-juggle-fest/types"
)

const smallInput = `C C0 H:7 E:7 P:10
C C1 H:2 E:1 P:1
C C2 H:7 E:6 P:4

J J0 H:3 E:9 P:2 C2,C0,C1
J J1 H:4 E:3 P:7 C0,C2,C1
J J2 H:4 E:0 P:10 C0,C2,C1
J J3 H:10 E:3 P:8 C2,C0,C1
J J4 H:6 E:10 P:1 C0,C2,C1
J J5 H:6 E:7 P:7 C0,C2,C1
J J6 H:6 E:8 P:6 C0,C2,C1
J J7 H:7 E:1 P:5 C2,C1,C0
J J8 H:8 E:2 P:3 C1,C0,C2
J J9 H:10 E:2 P:1 C1,C2,C0
J J10 H:6 E:4 P:5 C0,C2,C1
J J11 H:8 E:4 P:7 C0,C1,C2
`

// execute runs the CLI in a temporary working directory.
func execute(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(dir)

	var stdout, stderr bytes.Buffer
	a := newApp(&stdout, &stderr)
	a.newLogger = func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }

	cmd := a.rootCommand()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func readOutput(t *testing.T, dir string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, defaultOutput))
	require.NoError(t, err)

	return string(data)
}

func TestRun_DefaultInput(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, defaultInput, smallInput)
	writeTestFile(t, dir, "config.yaml", "summaryCircuit: 1\nmatcher:\n  seed: 5\n")

	stdout, _, err := execute(t, dir, "--config", "config.yaml")
	require.NoError(t, err)

	output := readOutput(t, dir)
	lines, err := format.ParseAssignment(strings.NewReader(output))
	require.NoError(t, err)
	require.Len(t, lines, 3)
	require.Equal(t, []int{2, 1, 0}, []int{lines[0].CircuitID, lines[1].CircuitID, lines[2].CircuitID})

	var sum int
	for _, m := range lines[1].Members {
		require.Len(t, m.Preferences, 3)
		sum += m.JugglerID
	}
	require.Equal(t, "The sum of the IDs of the jugglers assigned to circuit 1 is "+strconv.Itoa(sum)+"\n", stdout)
}

func TestRun_SummaryCircuitMissing(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, defaultInput, smallInput)

	stdout, _, err := execute(t, dir, "--seed", "3")
	require.ErrorIs(t, err, types.ErrCircuitOutOfRange, "circuit 1970 is not in a three circuit population")
	require.Empty(t, stdout)
	require.FileExists(t, filepath.Join(dir, defaultOutput))
	require.NotEmpty(t, readOutput(t, dir))
}

func TestRun_OtherInputHasNoSummary(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "small.txt", smallInput)
	writeTestFile(t, dir, "config.yaml", "summaryCircuit: 0\n")

	stdout, _, err := execute(t, dir, "--config", "config.yaml", "--seed", "3", "small.txt")
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.NotEmpty(t, readOutput(t, dir))
}

func TestRun_TooManyArguments(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, err := execute(t, dir, "a.txt", "b.txt")
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Usage: jugglefest [input]")

	_, statErr := os.Stat(filepath.Join(dir, defaultOutput))
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRun_Errors(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		_, _, err := execute(t, t.TempDir(), "missing.txt")
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed input", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, dir, "bad.txt", "C C0 H:one E:1 P:1\n")

		_, _, err := execute(t, dir, "bad.txt")
		require.ErrorIs(t, err, types.ErrMalformedInput)
	})

	t.Run("unknown config field", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, dir, "config.yaml", "bogus: true\n")

		_, _, err := execute(t, dir, "--config", "config.yaml")
		require.Error(t, err)
	})

	t.Run("invalid fallback flag", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, dir, defaultInput, smallInput)

		_, _, err := execute(t, dir, "--fallback", "nearest")
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})
}

func TestRun_Deterministic(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "small.txt", smallInput)

	_, _, err := execute(t, dir, "--deterministic", "small.txt")
	require.NoError(t, err)
	first := readOutput(t, dir)

	_, _, err = execute(t, dir, "--deterministic", "small.txt")
	require.NoError(t, err)
	require.Equal(t, first, readOutput(t, dir))
}

func TestRun_MetricsFile(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "small.txt", smallInput)

	_, _, err := execute(t, dir, "--seed", "1", "--fallback", "round-robin", "--metrics-file", "metrics.prom", "small.txt")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "metrics.prom"))
	require.NoError(t, err)
	require.Contains(t, string(data), "jugglefest_population_jugglers 12")
	require.Contains(t, string(data), "jugglefest_matcher_runs_total{result=\"success\"} 1")
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := execute(t, dir, "generate", "--circuits", "4", "--per-circuit", "3", "--preferences", "2", "--seed", "8")
	require.NoError(t, err)

	pop, err := format.ParsePopulation(strings.NewReader(stdout))
	require.NoError(t, err)
	require.Len(t, pop.Circuits, 4)
	require.Len(t, pop.Jugglers, 12)

	t.Run("to a file that the matcher accepts", func(t *testing.T) {
		_, _, err := execute(t, dir, "generate", "--circuits", "4", "--per-circuit", "3", "-o", "pop.txt")
		require.NoError(t, err)

		_, _, err = execute(t, dir, "--seed", "2", "pop.txt")
		require.NoError(t, err)
		require.NotEmpty(t, readOutput(t, dir))
	})

	t.Run("rejects zero circuits", func(t *testing.T) {
		_, _, err := execute(t, dir, "generate", "--circuits", "0")
		require.Error(t, err)
	})
}
