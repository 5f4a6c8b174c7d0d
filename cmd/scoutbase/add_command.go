package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <match> <team> <name>",
		Short: "Append a manual entry (idempotent on match/team/name)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			match, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid match number %q: %w", args[0], err)
			}
			team, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid team number %q: %w", args[1], err)
			}
			name := args[2]

			s, closeSession, err := ctx.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer closeSession()

			before := s.manager.Table().Len()
			e, err := s.manager.Append(match, team, name)
			if err != nil {
				return err
			}

			if s.manager.Table().Len() == before {
				fmt.Fprintf(cmd.OutOrStdout(), "Entry already exists as row %d\n", e.RowID)
				return nil
			}

			if err := s.manager.Save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Appended entry %d on board %s\n", e.RowID, e.Board.Name())
			return nil
		},
	}
	return cmd
}
