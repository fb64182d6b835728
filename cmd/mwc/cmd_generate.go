package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the configured sweep into the graph cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.Cache.Enabled {
				return errors.New("generate: the graph cache is disabled (cache.enabled)")
			}
			ins, err := a.sweep(cmd.Context(), nil)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Generated %d graphs into %s\n", len(ins), a.cfg.Cache.Path)

			return err
		},
	}
}
