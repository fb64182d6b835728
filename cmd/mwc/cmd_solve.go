package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrLoydHD/mei-aa-p1/builder"
	"github.com/MrLoydHD/mei-aa-p1/clique"
	"github.com/MrLoydHD/mei-aa-p1/report"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		vertices int
		prob     float64
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate one random graph and print each engine's clique",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Experiment.Seed
			}
			algos, err := a.cfg.ParsedAlgorithms()
			if err != nil {
				return err
			}

			g, err := builder.RandomGraph(vertices, prob, seed)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Graph: %d vertices, %d edges, seed %d\n", g.VertexCount(), g.EdgeCount(), seed)

			for _, algo := range algos {
				e, err := clique.NewEngine(algo, clique.WithBound(a.cfg.BoundPolicy()))
				if err != nil {
					return err
				}
				start := time.Now()
				res, err := e.Search(g)
				if err != nil {
					a.log.WithError(err).WithField("algorithm", algo.String()).Warn("search failed")
					continue
				}
				header := fmt.Sprintf("%s (ops %d, tested %d, %s)",
					e.Name(), res.Operations, res.TestedSolutions, time.Since(start).Round(time.Microsecond))
				fmt.Fprint(out, report.FormatClique(res.Clique, header))
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&vertices, "vertices", "n", 10, "number of vertices")
	cmd.Flags().Float64VarP(&prob, "prob", "p", 0.5, "edge probability in [0,1]")
	cmd.Flags().Int64Var(&seed, "seed", builder.DefaultSeed, "generator seed (default from config)")

	return cmd
}
