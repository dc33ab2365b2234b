package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agriai/config"
	"agriai/database"
	"agriai/pkg/logging"
	"agriai/pkg/server"
)

var (
	cfg     config.AppConfig
	portArg string
	dbArg   string
	log     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "agriai",
	Short:         "AgriAI farm-management API server",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if portArg != "" {
			cfg.Port = portArg
		}
		if dbArg != "" {
			cfg.DBPath = dbArg
		}
		var err error
		log, err = logging.New(cfg.LogLevel, cfg.LogDev)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.OpenSQLite(cfg.DBPath)
		if err != nil {
			return err
		}
		log.Info("schema up to date", zap.String("db", cfg.DBPath))
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&portArg, "port", "", "listen port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&dbArg, "db", "", "SQLite file (overrides DB_PATH)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	srv, err := server.New(ctx, cfg, db, log, server.Options{})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "agriai:", err)
		os.Exit(1)
	}
}
