package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored solutions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, closeFn, err := newService(cfg)
		if err != nil {
			return err
		}
		defer closeFn()

		metas, err := uc.List(cmd.Context())
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tMOVES\tCREATED")
		for _, m := range metas {
			created := time.Unix(0, m.CreatedAt).UTC().Format(time.RFC3339)
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", m.ID, m.Name, m.Moves, created)
		}
		return tw.Flush()
	},
}

var flagShowFormat string

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored solution",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, closeFn, err := newService(cfg)
		if err != nil {
			return err
		}
		defer closeFn()

		sol, err := uc.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeSolution(cmd.OutOrStdout(), flagShowFormat, sol)
	},
}

func init() {
	showCmd.Flags().StringVar(&flagShowFormat, "format", "text", "output format: text|json|yaml")
}
