package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all edited entries to an export file",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeSession, err := ctx.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer closeSession()

			path := outPath
			if path == "" {
				name := fmt.Sprintf("entries-%s.csv", time.Now().UTC().Format("20060102-150405"))
				path = filepath.Join(s.cfg.Paths.ExportDir, name)
			}

			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer file.Close()

			if err := s.manager.WriteExport(file); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", s.manager.Table().Len(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Export file path (default: timestamped file in export_dir)")
	return cmd
}
