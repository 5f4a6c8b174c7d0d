package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var match, team int
	var name string

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an entry after confirming its identity fields",
		Long: `Remove deletes the row with the given id only when --match, --team, and
--name all equal what the row currently holds. The guard protects against
deleting the wrong row via a stale id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id %q: %w", args[0], err)
			}

			s, closeSession, err := ctx.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer closeSession()

			if !s.manager.Remove(match, team, name, id) {
				fmt.Fprintln(cmd.OutOrStdout(), "No entry removed: identity fields do not match")
				return nil
			}

			if err := s.manager.Save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %d\n", id)
			return nil
		},
	}

	cmd.Flags().IntVar(&match, "match", 0, "Match number the row must hold")
	cmd.Flags().IntVar(&team, "team", 0, "Team number the row must hold")
	cmd.Flags().StringVar(&name, "name", "", "Scout name the row must hold")
	_ = cmd.MarkFlagRequired("match")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
