package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/HerbHall/drivepick/internal/backup"
)

func newBackupCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Archive the database and config file as tar.gz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				output = fmt.Sprintf("drivepick-backup-%s.tar.gz", time.Now().Format("20060102-150405"))
			}
			if err := backup.BackupFile(cmd.Context(), a.settings.Database.Path, a.configPath, output); err != nil {
				return fmt.Errorf("backup failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup created: %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default drivepick-backup-{timestamp}.tar.gz)")
	return cmd
}

func newRestoreCmd(_ *app) *cobra.Command {
	var (
		input   string
		dataDir string
		force   bool
	)
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore files from a backup archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := backup.RestoreFile(cmd.Context(), input, dataDir, force)
			if err != nil {
				return fmt.Errorf("restore failed: %w", err)
			}
			for _, n := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "Restored %s\n", n)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restore complete: %d files in %s\n", len(names), dataDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "backup archive to restore")
	cmd.Flags().StringVar(&dataDir, "data-dir", ".", "target directory for restored files")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
