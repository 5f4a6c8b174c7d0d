package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"scoutbase/internal/review"
	"scoutbase/internal/table"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var flags criteriaFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries matching exact filter criteria",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeSession, err := ctx.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer closeSession()

			view := s.manager.Table().Filter(flags.criteria())
			printEntryTable(cmd, s.manager, view)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func printEntryTable(cmd *cobra.Command, m *review.Manager, view table.View) {
	if view.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "No entries")
		if m.FirstRun() && m.Table().Len() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "New database; run 'scoutbase update' to import scanned entries")
		}
		return
	}

	rows := make([][]string, 0, view.Len())
	for _, id := range view.IDs() {
		row := m.Table().Get(id)
		if row == nil {
			continue
		}
		edited := row.Edited
		if edited == "" {
			edited = "-"
		}
		rows = append(rows, []string{
			strconv.FormatInt(row.ID, 10),
			strconv.Itoa(row.Match),
			strconv.Itoa(row.Team),
			row.Name,
			row.Board,
			edited,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "Match", "Team", "Name", "Board", "Edited"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignLeft, alignLeft, alignLeft},
	))
}
