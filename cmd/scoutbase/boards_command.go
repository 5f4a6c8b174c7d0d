package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"scoutbase/internal/board"
)

func newBoardsCommand(ctx *commandContext) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "boards",
		Short: "List the loaded board definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			finder, err := board.NewFinder(cfg.Paths.BoardDir)
			if err != nil {
				return err
			}

			boards := finder.Boards()
			if len(boards) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No board definitions in %s\n", cfg.Paths.BoardDir)
				return nil
			}

			rows := make([][]string, 0, len(boards))
			for _, b := range boards {
				rows = append(rows, []string{
					strconv.Itoa(b.ID()),
					b.Name(),
					strconv.Itoa(len(b.Fields())),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Fields"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight},
			))

			if verbose {
				titler := cases.Title(language.English)
				for _, b := range boards {
					fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", b.Name())
					for i, field := range b.Fields() {
						fmt.Fprintf(cmd.OutOrStdout(), "  %3d %-30s %s\n",
							i, field.Name, titler.String(strings.ReplaceAll(string(field.Kind), "_", " ")))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every field of every board")
	return cmd
}
