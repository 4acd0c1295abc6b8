package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HerbHall/drivepick/internal/inventory"
	"github.com/HerbHall/drivepick/pkg/models"
)

func newImportCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the CSV-sourced inventory drives from a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			drives, err := inventory.ReadCSV(f)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			ctx := cmd.Context()
			db, repo, err := a.openInventory(ctx)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := repo.ReplaceSource(ctx, models.SourceCSV, drives); err != nil {
				return err
			}

			a.logger.Info("drives imported", zap.String("file", path), zap.Int("count", len(drives)))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d drives from %s\n", len(drives), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "csv", "", "CSV file with a model,available header")
	_ = cmd.MarkFlagRequired("csv")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the inventory as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, repo, err := a.openInventory(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			drives, err := repo.List(ctx)
			if err != nil {
				return err
			}

			if path == "" || path == "-" {
				return inventory.WriteCSV(cmd.OutOrStdout(), drives)
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			if err := inventory.WriteCSV(f, drives); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVar(&path, "csv", "-", "output CSV file (- for stdout)")
	return cmd
}
