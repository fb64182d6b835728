package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrLoydHD/mei-aa-p1/report"
)

// executeArgs runs a fresh root command with args and returns stdout.
func executeArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out strings.Builder
	root.SetOut(&out)
	root.SetErr(&strings.Builder{})
	root.SetArgs(args)
	_, err := root.ExecuteC()

	return out.String(), err
}

// writeConfig writes a small in-memory-cache sweep config into a temp dir.
func writeConfig(t *testing.T) (cfgPath, outDir string) {
	t.Helper()
	dir := t.TempDir()
	outDir = filepath.Join(dir, "results")
	cfgPath = filepath.Join(dir, "mwc.yaml")
	body := `
experiment:
  min_vertices: 5
  max_vertices: 8
  edge_probabilities: [0.25, 0.75]
  timeout: 1m
output:
  dir: ` + outDir + `
  write_text: true
cache:
  enabled: true
  in_memory: true
logging:
  level: error
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))

	return cfgPath, outDir
}

func TestVersion(t *testing.T) {
	out, err := executeArgs(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mwc version")
}

func TestSolve_PrintsEveryEngine(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	out, err := executeArgs(t, "--config", cfgPath, "solve", "-n", "8", "-p", "0.5")
	require.NoError(t, err)

	assert.Contains(t, out, "Graph: 8 vertices")
	for _, name := range []string{"Exhaustive", "Greedy", "Backtracking"} {
		assert.Contains(t, out, " "+name+" (ops ")
	}
	assert.Equal(t, 3, strings.Count(out, " Max Weight:"))
}

func TestSolve_BadProbability(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	_, err := executeArgs(t, "--config", cfgPath, "solve", "-p", "1.5")
	assert.Error(t, err)
}

func TestRunThenCompare(t *testing.T) {
	cfgPath, outDir := writeConfig(t)

	out, err := executeArgs(t, "--config", cfgPath, "run", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Backtracking")
	assert.Contains(t, out, "complete")

	for _, name := range []string{"Exhaustive", "Greedy", "Backtracking"} {
		f, err := os.Open(filepath.Join(outDir, report.CSVFileName(name)))
		require.NoError(t, err)
		recs, err := report.ReadCSV(f, name)
		f.Close()
		require.NoError(t, err)
		assert.Len(t, recs, 8, name)

		txt, err := os.ReadFile(filepath.Join(outDir, report.TextFileName(name)))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(txt), "Vertices"))
	}

	out, err = executeArgs(t, "--config", cfgPath, "compare")
	require.NoError(t, err)
	assert.Contains(t, out, "mean accuracy")
	assert.Contains(t, out, "of 8 instances")
	_, err = os.Stat(filepath.Join(outDir, "comparison.csv"))
	assert.NoError(t, err)
}

func TestRun_FlagOverridesAndValidation(t *testing.T) {
	cfgPath, outDir := writeConfig(t)

	_, err := executeArgs(t, "--config", cfgPath, "run", "-a", "greedy", "--max-vertices", "6")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, report.CSVFileName("Exhaustive")))
	assert.True(t, os.IsNotExist(err))

	_, err = executeArgs(t, "--config", cfgPath, "run", "--max-vertices", "2")
	assert.Error(t, err)

	_, err = executeArgs(t, "--config", cfgPath, "run", "-a", "simplex")
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	out, err := executeArgs(t, "--config", cfgPath, "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 8 graphs")
}

func TestCompare_MissingFiles(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	_, err := executeArgs(t, "--config", cfgPath, "compare")
	assert.Error(t, err)
}

func TestInvalidLogFlag(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	_, err := executeArgs(t, "--config", cfgPath, "--log-level", "chatty", "generate")
	assert.Error(t, err)
}
