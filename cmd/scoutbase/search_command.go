package main

import (
	"github.com/spf13/cobra"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var flags criteriaFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search entries with prefix and substring matching",
		Long: `Search relaxes the list command's matching: match and team numbers
compare by decimal prefix, names by case-insensitive containment. Values
repeated within one flag combine with OR, different flags with AND.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeSession, err := ctx.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer closeSession()

			view := s.manager.Table().Search(flags.criteria())
			printEntryTable(cmd, s.manager, view)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
