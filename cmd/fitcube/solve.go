package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"svw.info/fitcube/internal/domain"
	"svw.info/fitcube/internal/notation"
)

var (
	flagFormat string
	flagSave   bool
	flagName   string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Search for a path that fills the cube",
	Long: `Search depth-first from the corner (0,0,0) for a path whose travels
follow the fixed distance sequence and occupy every cell exactly once.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, closeFn, err := newService(cfg)
		if err != nil {
			return err
		}
		defer closeFn()

		moves, st, err := uc.Solve(cmd.Context())
		logger.Debug("search finished", "nodes", st.Nodes, "dur", st.Duration)
		if errors.Is(err, domain.ErrNoSolution) {
			fmt.Fprintln(cmd.OutOrStdout(), "Could not find solution.")
			return err
		}
		if err != nil {
			return err
		}

		sol := &domain.Solution{Name: flagName, Sequence: uc.Sequence, Moves: moves, Nodes: st.Nodes}
		if flagSave {
			if err := uc.Save(cmd.Context(), sol); err != nil {
				return fmt.Errorf("save solution: %w", err)
			}
			logger.Info("solution saved", "id", sol.ID)
		}
		return writeSolution(cmd.OutOrStdout(), flagFormat, sol)
	},
}

var uniqueCmd = &cobra.Command{
	Use:   "unique",
	Short: "Report whether exactly one path exists from the corner",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, closeFn, err := newService(cfg)
		if err != nil {
			return err
		}
		defer closeFn()

		ok, st, err := uc.Unique(cmd.Context())
		if err != nil {
			return err
		}
		logger.Debug("search finished", "nodes", st.Nodes, "dur", st.Duration)
		if ok {
			fmt.Fprintln(cmd.OutOrStdout(), "unique")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "not unique")
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVar(&flagFormat, "format", "text", "output format: text|json|yaml")
	solveCmd.Flags().BoolVar(&flagSave, "save", false, "store the solution")
	solveCmd.Flags().StringVar(&flagName, "name", "", "name to store the solution under")
}

// writeSolution renders sol as text (notation plus one move per line),
// JSON or YAML.
func writeSolution(w io.Writer, format string, sol *domain.Solution) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sol)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(sol)
	case "text", "":
		path, err := notation.Format(sol.Moves)
		if err != nil {
			return err
		}
		if sol.ID != "" {
			fmt.Fprintf(w, "Solution %s\n", sol.ID)
		}
		fmt.Fprintf(w, "Found solution:\n%s\n", path)
		for i, m := range sol.Moves {
			fmt.Fprintf(w, "%3d  %s\n", i, m)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
