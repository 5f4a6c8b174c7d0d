package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"scoutbase/internal/board"
	"scoutbase/internal/entry"
	"scoutbase/internal/review"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var flags criteriaFlags
	var next, previous bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one decoded entry, optionally stepping through a filtered view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if next && previous {
				return fmt.Errorf("--next and --previous are mutually exclusive")
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id %q: %w", args[0], err)
			}

			s, closeSession, err := ctx.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer closeSession()

			var shown *entry.Entry
			switch {
			case next || previous:
				view := s.manager.Table().Filter(flags.criteria())
				if next {
					shown, err = s.manager.Next(view, id)
				} else {
					shown, err = s.manager.Previous(view, id)
				}
			default:
				shown, err = s.manager.EntryAt(id)
			}
			if err != nil {
				return err
			}
			if shown == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No entry")
				return nil
			}

			printEntry(cmd, s.manager, shown)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&next, "next", false, "Show the entry after <id> within the filtered view")
	cmd.Flags().BoolVar(&previous, "previous", false, "Show the entry before <id> within the filtered view")
	return cmd
}

func printEntry(cmd *cobra.Command, m *review.Manager, e *entry.Entry) {
	out := cmd.OutOrStdout()

	_, _, lastEdited, err := m.Detail(e.RowID)
	if err != nil {
		lastEdited = ""
	}
	if lastEdited == entry.NeverEdited {
		lastEdited = "never"
	}

	fmt.Fprintf(out, "Entry %d: match %d, team %d, scout %s\n", e.RowID, e.Match, e.Team, e.Name)
	fmt.Fprintf(out, "Board: %s  Started: %s  Edited: %s\n", e.Board.Name(), e.StartTime, lastEdited)
	if e.Comments != "" {
		fmt.Fprintf(out, "Comments: %s\n", e.Comments)
	}

	if len(e.Fields) == 0 {
		fmt.Fprintln(out, "No recorded data")
		return
	}

	rows := make([][]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		rows = append(rows, []string{
			field.Type.Name,
			string(field.Type.Kind),
			formatFieldValue(field),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Field", "Kind", "Value"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	))
}

func formatFieldValue(f entry.Field) string {
	if f.Type.Kind == board.KindBoolean {
		if f.Bool() {
			return "yes"
		}
		return "no"
	}
	return strconv.Itoa(f.Value)
}
