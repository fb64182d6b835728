package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/MrLoydHD/mei-aa-p1/clique"
	"github.com/MrLoydHD/mei-aa-p1/experiment"
	"github.com/MrLoydHD/mei-aa-p1/metrics"
	"github.com/MrLoydHD/mei-aa-p1/report"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		minV, maxV int
		timeout    time.Duration
		workers    int
		outDir     string
		algoNames  []string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Benchmark the engines over the configured sweep",
		Long: `run generates (or loads from the cache) every graph of the sweep and
searches it with each selected algorithm. Results are written to
<out>/<Algorithm>_results.csv and, unless disabled, .txt. A run stops at the
first search slower than the timeout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if f.Changed("min-vertices") {
				a.cfg.Experiment.MinVertices = minV
			}
			if f.Changed("max-vertices") {
				a.cfg.Experiment.MaxVertices = maxV
			}
			if f.Changed("timeout") {
				a.cfg.Experiment.Timeout = timeout
			}
			if f.Changed("workers") {
				a.cfg.Experiment.Workers = workers
			}
			if f.Changed("out") {
				a.cfg.Output.Dir = outDir
			}
			if f.Changed("algorithms") {
				a.cfg.Experiment.Algorithms = algoNames
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			return a.run(cmd)
		},
	}

	cmd.Flags().IntVar(&minV, "min-vertices", 0, "smallest graph (overrides config)")
	cmd.Flags().IntVar(&maxV, "max-vertices", 0, "largest graph (overrides config)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-search limit before a run is abandoned (overrides config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "algorithms run concurrently (overrides config)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "results directory (overrides config)")
	cmd.Flags().StringSliceVarP(&algoNames, "algorithms", "a", nil, "exhaustive,greedy,backtracking (overrides config)")

	return cmd
}

func (a *app) run(cmd *cobra.Command) error {
	algos, err := a.cfg.ParsedAlgorithms()
	if err != nil {
		return err
	}
	reg := metrics.NewRegistry()
	stop := a.serveMetrics(reg)
	defer stop()

	ins, err := a.sweep(cmd.Context(), reg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(a.cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("run: results dir: %w", err)
	}

	files := &fileSet{}
	defer func() {
		if cerr := files.Close(); cerr != nil {
			a.log.WithError(cerr).Warn("closing result files")
		}
	}()

	runner := experiment.NewRunner(
		experiment.WithLogger(a.log),
		experiment.WithMetrics(reg),
		experiment.WithTimeout(a.cfg.Experiment.Timeout),
		experiment.WithBound(a.cfg.BoundPolicy()),
		experiment.WithWorkers(a.cfg.Experiment.Workers),
	)
	sums, err := runner.RunAll(cmd.Context(), algos, ins, func(algo clique.Algorithm) (experiment.Sink, error) {
		return a.resultSink(files, algo)
	})

	out := cmd.OutOrStdout()
	for _, s := range sums {
		if s.Algorithm == "" {
			continue
		}
		status := "complete"
		if s.Abandoned {
			status = fmt.Sprintf("stopped at n=%d", s.StoppedAt)
		}
		fmt.Fprintf(out, "%-12s %5d searches  %-18s %s\n", s.Algorithm, s.Records, status, s.Elapsed.Round(time.Millisecond))
		a.log.WithFields(logrus.Fields{
			"run_id":    s.RunID.String(),
			"algorithm": s.Algorithm,
			"records":   s.Records,
		}).Debug("run summary")
	}

	return err
}

// resultSink opens the CSV (and optionally text) file for algo.
func (a *app) resultSink(files *fileSet, algo clique.Algorithm) (experiment.Sink, error) {
	name := algo.String()
	csvFile, err := files.create(filepath.Join(a.cfg.Output.Dir, report.CSVFileName(name)))
	if err != nil {
		return nil, err
	}
	cw, err := report.NewCSVWriter(csvFile)
	if err != nil {
		return nil, err
	}
	sinks := experiment.MultiSink{cw}

	if a.cfg.Output.WriteText {
		txtFile, err := files.create(filepath.Join(a.cfg.Output.Dir, report.TextFileName(name)))
		if err != nil {
			return nil, err
		}
		tw, err := report.NewTextWriter(txtFile)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, tw)
	}

	return sinks, nil
}

// fileSet tracks files created from concurrent runs.
type fileSet struct {
	mu    sync.Mutex
	files []io.Closer
}

func (fs *fileSet) create(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}
	fs.mu.Lock()
	fs.files = append(fs.files, f)
	fs.mu.Unlock()

	return f, nil
}

func (fs *fileSet) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	var errs []error
	for _, f := range fs.files {
		errs = append(errs, f.Close())
	}
	fs.files = nil

	return errors.Join(errs...)
}
