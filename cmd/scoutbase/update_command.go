package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Import scanned source files and reconcile the edited table",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeSession, err := ctx.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer closeSession()

			appended, err := s.manager.Update(cmd.Context())
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "Would append %d new entries (not saved)\n", appended)
				return nil
			}

			if err := s.manager.Save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d raw entries, appended %d new rows\n",
				len(s.manager.Raw()), appended)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Scan and merge without saving")
	return cmd
}
