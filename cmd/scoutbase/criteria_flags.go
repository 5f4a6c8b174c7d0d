package main

import (
	"github.com/spf13/cobra"

	"scoutbase/internal/table"
)

// criteriaFlags binds the shared filter/search flags to a command.
type criteriaFlags struct {
	match  []int
	team   []int
	name   []string
	board  []string
	edited []string
}

func (f *criteriaFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&f.match, "match", nil, "Match numbers to keep (repeatable)")
	cmd.Flags().IntSliceVar(&f.team, "team", nil, "Team numbers to keep (repeatable)")
	cmd.Flags().StringSliceVar(&f.name, "name", nil, "Scout names to keep (repeatable)")
	cmd.Flags().StringSliceVar(&f.board, "board", nil, "Board names to keep (repeatable)")
	cmd.Flags().StringSliceVar(&f.edited, "edited", nil, "Edited timestamps to keep; use \"\" for never-edited")
}

func (f *criteriaFlags) criteria() table.Criteria {
	return table.Criteria{
		Match:  f.match,
		Team:   f.team,
		Name:   f.name,
		Board:  f.board,
		Edited: f.edited,
	}
}
