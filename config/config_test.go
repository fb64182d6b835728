package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrLoydHD/mei-aa-p1/clique"
	"github.com/MrLoydHD/mei-aa-p1/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mwc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5, cfg.Experiment.MinVertices)
	assert.Equal(t, 500, cfg.Experiment.MaxVertices)
	assert.Equal(t, []float64{0.125, 0.25, 0.5, 0.75}, cfg.Experiment.EdgeProbabilities)
	assert.Equal(t, int64(108215), cfg.Experiment.Seed)
	assert.Equal(t, 120*time.Second, cfg.Experiment.Timeout)

	algos, err := cfg.ParsedAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, clique.Algorithms, algos)
	assert.Equal(t, clique.SimpleBound, cfg.BoundPolicy())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
experiment:
  algorithms: [greedy, bb]
  min_vertices: 4
  max_vertices: 40
  edge_probabilities: [0.5]
  timeout: 2s
  bound: none
logging:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Experiment.MinVertices)
	assert.Equal(t, 40, cfg.Experiment.MaxVertices)
	assert.Equal(t, []float64{0.5}, cfg.Experiment.EdgeProbabilities)
	assert.Equal(t, 2*time.Second, cfg.Experiment.Timeout)
	assert.Equal(t, clique.NoBound, cfg.BoundPolicy())
	assert.Equal(t, "json", cfg.Logging.Format)
	// Untouched sections keep defaults.
	assert.Equal(t, "results", cfg.Output.Dir)

	algos, err := cfg.ParsedAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, []clique.Algorithm{clique.Greedy, clique.Backtracking}, algos)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "experiment:\n  max_vertices: 40\n")
	t.Setenv("MWC_MAX_VERTICES", "60")
	t.Setenv("MWC_ALGORITHMS", "exhaustive, greedy")
	t.Setenv("MWC_EDGE_PROBABILITIES", "0.25,0.75")
	t.Setenv("MWC_TIMEOUT", "500ms")
	t.Setenv("MWC_CACHE_IN_MEMORY", "true")
	t.Setenv("MWC_METRICS_ADDR", ":9108")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Experiment.MaxVertices)
	assert.Equal(t, []string{"exhaustive", "greedy"}, cfg.Experiment.Algorithms)
	assert.Equal(t, []float64{0.25, 0.75}, cfg.Experiment.EdgeProbabilities)
	assert.Equal(t, 500*time.Millisecond, cfg.Experiment.Timeout)
	assert.True(t, cfg.Cache.InMemory)
	assert.Equal(t, ":9108", cfg.Metrics.Addr)
}

func TestLoad_MalformedEnv(t *testing.T) {
	t.Setenv("MWC_SEED", "not-a-number")
	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MWC_SEED")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeFile(t, "experiment: [unclosed\n")
	_, err := config.Load(path)
	require.Error(t, err)
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*config.Config){
		"max below min":       func(c *config.Config) { c.Experiment.MaxVertices = 2 },
		"probability above 1": func(c *config.Config) { c.Experiment.EdgeProbabilities = []float64{1.5} },
		"zero timeout":        func(c *config.Config) { c.Experiment.Timeout = 0 },
		"unknown algorithm":   func(c *config.Config) { c.Experiment.Algorithms = []string{"simplex"} },
		"no algorithms":       func(c *config.Config) { c.Experiment.Algorithms = nil },
		"bad bound":           func(c *config.Config) { c.Experiment.Bound = "tight" },
		"bad level":           func(c *config.Config) { c.Logging.Level = "loud" },
		"bad metrics addr":    func(c *config.Config) { c.Metrics.Addr = "localhost" },
		"cache without path":  func(c *config.Config) { c.Cache.Path = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestParsedAlgorithms_Deduplicates(t *testing.T) {
	cfg := config.Default()
	cfg.Experiment.Algorithms = []string{"3", "backtracking", "Greedy"}
	algos, err := cfg.ParsedAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, []clique.Algorithm{clique.Backtracking, clique.Greedy}, algos)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := config.NewLogger(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("hidden")
	log.WithField("n", 5).Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"n":5`)

	_, err = config.NewLogger(config.LoggingConfig{Level: "nope", Format: "text"}, &buf)
	assert.Error(t, err)
	_, err = config.NewLogger(config.LoggingConfig{Level: "info", Format: "xml"}, &buf)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
