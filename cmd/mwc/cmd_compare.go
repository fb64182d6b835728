package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MrLoydHD/mei-aa-p1/experiment"
	"github.com/MrLoydHD/mei-aa-p1/report"
)

func newCompareCmd(a *app) *cobra.Command {
	var heuristicPath, exactPath, outPath string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare greedy weights against an exact run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.Output.Dir
			if heuristicPath == "" {
				heuristicPath = filepath.Join(dir, report.CSVFileName("Greedy"))
			}
			if exactPath == "" {
				exactPath = filepath.Join(dir, report.CSVFileName("Backtracking"))
			}

			heuristic, err := readResults(heuristicPath, "Greedy")
			if err != nil {
				return err
			}
			exact, err := readResults(exactPath, "Backtracking")
			if err != nil {
				return err
			}

			c := report.Compare(heuristic, exact)
			if c.Unmatched > 0 {
				a.log.WithField("unmatched", c.Unmatched).Warn("exact results without a greedy counterpart")
			}
			fmt.Fprint(cmd.OutOrStdout(), c.Table())

			if outPath == "" {
				outPath = filepath.Join(dir, "comparison.csv")
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}
			if err := c.WriteCSV(f); err != nil {
				f.Close()
				return fmt.Errorf("compare: %w", err)
			}

			return f.Close()
		},
	}

	cmd.Flags().StringVar(&heuristicPath, "greedy", "", "greedy results CSV (default <out>/Greedy_results.csv)")
	cmd.Flags().StringVar(&exactPath, "exact", "", "exact results CSV (default <out>/Backtracking_results.csv)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "comparison CSV (default <out>/comparison.csv)")

	return cmd
}

func readResults(path, algorithm string) ([]experiment.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}
	defer f.Close()

	return report.ReadCSV(f, algorithm)
}
