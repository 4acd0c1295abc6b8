package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/HerbHall/drivepick/docs"
	"github.com/HerbHall/drivepick/internal/discovery"
	"github.com/HerbHall/drivepick/internal/inventory"
	"github.com/HerbHall/drivepick/internal/selector"
	"github.com/HerbHall/drivepick/internal/server"
	"github.com/HerbHall/drivepick/internal/version"
	"github.com/HerbHall/drivepick/pkg/catalog"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

// serve runs the API until ctx is canceled.
func (a *app) serve(ctx context.Context) error {
	a.logger.Info("DrivePick server starting", zap.String("version", version.Short()))

	db, repo, err := a.openInventory(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := selector.NewMetrics(reg)

	engines := []*selector.Engine{
		selector.NewEngine("builtin", catalog.NewCatalog(), a.logger, metrics),
		selector.NewEngine("inventory", repo, a.logger, metrics),
		selector.NewEngine("sysfs", discovery.NewScanner(a.settings.Discovery.Root, a.logger), a.logger, metrics),
	}

	docs.SwaggerInfo.Version = version.Short()
	srv := server.New(server.Options{
		Addr:      a.settings.Server.Addr(),
		Gatherer:  reg,
		Docs:      a.settings.Server.Docs,
		RateLimit: a.settings.RateLimit.RPS,
		Burst:     a.settings.RateLimit.Burst,
	}, a.logger,
		selector.NewHandler(a.settings.Selection.Manufacturers, metrics, a.logger.Named("selector"), engines...),
		inventory.NewHandler(repo, a.logger.Named("inventory")),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("graceful shutdown failed", zap.Error(err))
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.logger.Info("DrivePick server stopped")
	return nil
}
