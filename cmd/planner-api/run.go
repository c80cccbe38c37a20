package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	apiserver "github.com/renovplan/renovation-planner/internal/api_server"
	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/config"
	"github.com/renovplan/renovation-planner/internal/store"
	"github.com/renovplan/renovation-planner/pkg/log"
	"github.com/renovplan/renovation-planner/pkg/metrics"
	"github.com/renovplan/renovation-planner/pkg/migrations"
	"github.com/renovplan/renovation-planner/pkg/objectstore"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the planner api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			zap.S().Fatalw("reading configuration", "error", err)
		}

		undo := log.Setup(cfg.Service.LogLevel)
		defer undo()

		zap.S().Info("Starting API service")
		defer zap.S().Info("API service stopped")

		cat, err := loadCatalog(cfg)
		if err != nil {
			zap.S().Fatalw("loading lot catalog", "error", err)
		}
		zap.S().Infow("lot catalog loaded", "version", cat.Version(), "entries", cat.Len())

		zap.S().Info("Initializing data store")
		db, err := store.InitDB(cfg)
		if err != nil {
			zap.S().Fatalw("initializing data store", "error", err)
		}

		s := store.NewStore(db)
		defer s.Close()

		if cfg.Service.MigrationFolder != "" {
			if err := migrations.MigrateStore(db, cfg.Service.MigrationFolder); err != nil {
				zap.S().Fatalw("running migrations", "error", err)
			}
		} else if err := s.InitialMigration(context.Background()); err != nil {
			zap.S().Fatalw("running initial migration", "error", err)
		}

		prometheus.MustRegister(metrics.NewProjectStatsCollector(s))

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.Address)
			if err != nil {
				zap.S().Fatalw("creating listener", "error", err)
			}

			server := apiserver.New(cfg, s, listener, cat, newUploader(cfg))
			if err := server.Run(ctx); err != nil {
				zap.S().Fatalw("running api server", "error", err)
			}
		}()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.MetricsAddress)
			if err != nil {
				zap.S().Fatalw("creating listener", "error", err)
			}

			metricsServer := metrics.NewServer(cfg.Service.MetricsAddress, listener)
			if err := metricsServer.Run(ctx); err != nil {
				zap.S().Fatalw("running metrics server", "error", err)
			}
		}()

		<-ctx.Done()
		return nil
	},
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Service.CatalogFile == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.Service.CatalogFile)
}

func newUploader(cfg *config.Config) objectstore.Uploader {
	reports := cfg.Service.Reports
	if !reports.Enabled() {
		return nil
	}

	uploader, err := objectstore.NewMinioUploader(
		objectstore.WithEndpoint(reports.Endpoint),
		objectstore.WithBucket(reports.Bucket),
		objectstore.WithAccessKey(reports.AccessKey),
		objectstore.WithSecretKey(reports.SecretKey),
		objectstore.WithSSL(reports.UseSSL),
	)
	if err != nil {
		zap.S().Errorw("failed to create report uploader, publishing disabled", "error", err)
		return nil
	}
	return uploader
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}
