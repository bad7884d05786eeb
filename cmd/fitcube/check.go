package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/fitcube/internal/domain"
	"svw.info/fitcube/internal/notation"
)

var errInvalidPath = errors.New("path is not a solution")

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate a path written as @(x,y,z) E2 U1 ...",
	Long: `Replay a path on an empty cube and list every step that leaves the
cube, revisits a cell, breaks the distance sequence or fails to turn.
With no argument, or "-", the path is read from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		moves, err := readPath(cmd, args)
		if err != nil {
			return err
		}
		uc, closeFn, err := newService(cfg)
		if err != nil {
			return err
		}
		defer closeFn()

		ok, conflicts, err := uc.Validate(cmd.Context(), moves)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if ok {
			fmt.Fprintln(out, "ok")
			return nil
		}
		for _, c := range conflicts {
			fmt.Fprintf(out, "step %d at %s: %s\n", c.Step, c.At, c.Reason)
		}
		return errInvalidPath
	},
}

var hintCmd = &cobra.Command{
	Use:   "hint [path]",
	Short: "Suggest the next move for a partial path",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, err := readPath(cmd, args)
		if err != nil {
			return err
		}
		uc, closeFn, err := newService(cfg)
		if err != nil {
			return err
		}
		defer closeFn()

		mv, ok, err := uc.Hint(cmd.Context(), prefix)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "no completion from here")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%d\n", mv.Dir.Letter(), mv.Amount)
		return nil
	},
}

// readPath parses the joined arguments, or stdin when there are none.
func readPath(cmd *cobra.Command, args []string) ([]domain.Move, error) {
	text := strings.Join(args, " ")
	if len(args) == 0 || text == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read path: %w", err)
		}
		text = string(b)
	}
	moves, err := notation.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse path: %w", err)
	}
	return moves, nil
}
