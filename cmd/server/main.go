package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"invoiceflow/internal/application/service"
	"invoiceflow/internal/config"
	"invoiceflow/internal/demomode"
	httpserver "invoiceflow/internal/interfaces/http"
	"invoiceflow/internal/mockdata"
	"invoiceflow/internal/report"
	"invoiceflow/pkg/database"
	"invoiceflow/pkg/logging"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting invoiceflow demo-data server",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	if err := os.MkdirAll("data", 0755); err != nil {
		logger.Fatal("Failed to create data directory", zap.Error(err))
	}

	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	migrator := database.NewMigrator(db, logger)
	if err := migrator.Run(cfg.Database.MigrationsDir); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	demo := demomode.NewManager(demomode.NewSQLiteStore(db.DB), logger)

	data := service.NewDataService(cfg.Demo.Seed, mockdata.Counts{
		Vendors:      cfg.Demo.Vendors,
		Clients:      cfg.Demo.Clients,
		Invoices:     cfg.Demo.Invoices,
		Budgets:      cfg.Demo.Budgets,
		AuditEntries: cfg.Demo.AuditEntries,
		EmailImports: cfg.Demo.EmailImports,
	}, logger)

	exporter, err := report.NewExporter(cfg.Report.OutputDir, logger)
	if err != nil {
		logger.Fatal("Failed to initialize report exporter", zap.Error(err))
	}

	server := httpserver.NewServer(httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, data, demo, exporter, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
