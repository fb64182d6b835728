// Command mwc searches maximum weight cliques and benchmarks the engines
// over generated graph sweeps.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/MrLoydHD/mei-aa-p1/config"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("mwc version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("mwc version %s-dev", version)
}

// app carries state resolved once by the root command.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string

	cfg config.Config
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "mwc",
		Short: "Maximum weight clique search and benchmarks",
		Long: `mwc finds a maximum weight clique with an exhaustive, a greedy or a
branch-and-bound backtracking engine, and benchmarks them over sweeps of
random graphs (n vertices, edge probability p, weights in [1,49]).`,
		Version:      versionString(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "YAML config file (env overrides use the MWC_ prefix)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "trace|debug|info|warn|error (overrides config)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "text|json (overrides config)")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := config.NewLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
