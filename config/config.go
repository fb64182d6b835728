// Package config loads harness configuration with priority
// environment > file > defaults and validates it.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/MrLoydHD/mei-aa-p1/builder"
	"github.com/MrLoydHD/mei-aa-p1/clique"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MWC_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// validate is a singleton validator instance
var validate = validator.New()

// Config is the full harness configuration.
type Config struct {
	Experiment ExperimentConfig `yaml:"experiment"`
	Output     OutputConfig     `yaml:"output"`
	Cache      CacheConfig      `yaml:"cache"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// ExperimentConfig describes the benchmark sweep.
type ExperimentConfig struct {
	// Algorithms lists engine names accepted by clique.ParseAlgorithm.
	Algorithms        []string      `yaml:"algorithms" validate:"required,min=1,dive,required"`
	MinVertices       int           `yaml:"min_vertices" validate:"min=1"`
	MaxVertices       int           `yaml:"max_vertices" validate:"gtefield=MinVertices"`
	EdgeProbabilities []float64     `yaml:"edge_probabilities" validate:"required,min=1,dive,gte=0,lte=1"`
	Seed              int64         `yaml:"seed"`
	Timeout           time.Duration `yaml:"timeout" validate:"gt=0"`
	Workers           int           `yaml:"workers" validate:"min=1,max=64"`
	Bound             string        `yaml:"bound" validate:"oneof=simple none"`
}

// OutputConfig controls result files.
type OutputConfig struct {
	Dir       string `yaml:"dir" validate:"required"`
	WriteText bool   `yaml:"write_text"`
}

// CacheConfig controls the generated-graph cache.
type CacheConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

// LoggingConfig controls the logrus logger.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig controls the Prometheus endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration of the reference experiment: n in
// [5,500], four edge densities, one seed, and a 120 s per-search limit.
func Default() Config {
	return Config{
		Experiment: ExperimentConfig{
			Algorithms:        []string{"exhaustive", "greedy", "backtracking"},
			MinVertices:       5,
			MaxVertices:       500,
			EdgeProbabilities: []float64{0.125, 0.25, 0.5, 0.75},
			Seed:              builder.DefaultSeed,
			Timeout:           120 * time.Second,
			Workers:           3,
			Bound:             "simple",
		},
		Output: OutputConfig{
			Dir:       "results",
			WriteText: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    "results/cache",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load returns Default overlaid by the YAML file at path (if path is
// non-empty and the file exists) and then by MWC_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadEnv applies MWC_* overrides. Malformed values are errors rather than
// silently ignored.
func loadEnv(cfg *Config) error {
	var errs []error
	env := func(name string) (string, bool) {
		v, ok := os.LookupEnv(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}
	setInt := func(name string, dst *int) {
		if v, ok := env(name); ok {
			i, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = i
		}
	}
	setBool := func(name string, dst *bool) {
		if v, ok := env(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}
	setString := func(name string, dst *string) {
		if v, ok := env(name); ok {
			*dst = v
		}
	}

	if v, ok := env("ALGORITHMS"); ok {
		cfg.Experiment.Algorithms = splitList(v)
	}
	setInt("MIN_VERTICES", &cfg.Experiment.MinVertices)
	setInt("MAX_VERTICES", &cfg.Experiment.MaxVertices)
	if v, ok := env("EDGE_PROBABILITIES"); ok {
		var ps []float64
		for _, s := range splitList(v) {
			p, err := strconv.ParseFloat(s, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%sEDGE_PROBABILITIES: %w", EnvPrefix, err))
				ps = nil
				break
			}
			ps = append(ps, p)
		}
		if ps != nil {
			cfg.Experiment.EdgeProbabilities = ps
		}
	}
	if v, ok := env("SEED"); ok {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			cfg.Experiment.Seed = s
		}
	}
	if v, ok := env("TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sTIMEOUT: %w", EnvPrefix, err))
		} else {
			cfg.Experiment.Timeout = d
		}
	}
	setInt("WORKERS", &cfg.Experiment.Workers)
	setString("BOUND", &cfg.Experiment.Bound)
	setString("OUTPUT_DIR", &cfg.Output.Dir)
	setBool("WRITE_TEXT", &cfg.Output.WriteText)
	setBool("CACHE_ENABLED", &cfg.Cache.Enabled)
	setString("CACHE_PATH", &cfg.Cache.Path)
	setBool("CACHE_IN_MEMORY", &cfg.Cache.InMemory)
	setString("LOG_LEVEL", &cfg.Logging.Level)
	setString("LOG_FORMAT", &cfg.Logging.Format)
	setString("METRICS_ADDR", &cfg.Metrics.Addr)

	if len(errs) > 0 {
		return fmt.Errorf("config: environment: %w", errors.Join(errs...))
	}

	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	return out
}

// Validate checks struct tags and the cross-field rules tags cannot express.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, formatValidationError(err))
	}
	if _, err := c.ParsedAlgorithms(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Cache.Enabled && !c.Cache.InMemory && c.Cache.Path == "" {
		return fmt.Errorf("%w: cache.path: required when the cache is enabled", ErrInvalid)
	}
	if c.Metrics.Addr != "" {
		if _, port, err := net.SplitHostPort(c.Metrics.Addr); err != nil || port == "" {
			return fmt.Errorf("%w: metrics.addr: %q is not host:port", ErrInvalid, c.Metrics.Addr)
		}
	}

	return nil
}

// ParsedAlgorithms resolves Experiment.Algorithms, dropping duplicates.
func (c Config) ParsedAlgorithms() ([]clique.Algorithm, error) {
	seen := make(map[clique.Algorithm]bool, len(c.Experiment.Algorithms))
	out := make([]clique.Algorithm, 0, len(c.Experiment.Algorithms))
	for _, name := range c.Experiment.Algorithms {
		a, err := clique.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}

	return out, nil
}

// BoundPolicy maps Experiment.Bound to the engine policy.
func (c Config) BoundPolicy() clique.BoundPolicy {
	if c.Experiment.Bound == "none" {
		return clique.NoBound
	}

	return clique.SimpleBound
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s", field, e.Param())
		case "max", "lte":
			return fmt.Errorf("%s: must not exceed %s", field, e.Param())
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, e.Param())
		case "gtefield":
			return fmt.Errorf("%s: must be at least %s", field, e.Param())
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, e.Param())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
