package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HerbHall/drivepick/internal/discovery"
	"github.com/HerbHall/drivepick/pkg/models"
)

func newScanCmd(a *app) *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Discover local drives from sysfs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			drives, err := discovery.NewScanner(a.settings.Discovery.Root, a.logger).Scan(ctx)
			if err != nil {
				return err
			}

			if save {
				db, repo, err := a.openInventory(ctx)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := repo.ReplaceSource(ctx, models.SourceSysfs, drives); err != nil {
					return err
				}
				a.logger.Info("discovered drives saved", zap.Int("count", len(drives)))
			}
			return writeJSON(cmd.OutOrStdout(), drives)
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "replace the sysfs drives in the inventory with the scan result")
	return cmd
}
