package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venue-backoffice/internal/api"
	"venue-backoffice/internal/database"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if flagPort != "" {
			cfg.HTTPPort = flagPort
		}

		db, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if cfg.AutoMigrate {
			if err := database.Migrate(db, logger); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		app := api.New(db, cfg, logger, reg)

		go func() {
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
			logger.Println("Shutting down")
			if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
				logger.Printf("shutdown: %v", err)
			}
		}()

		logger.Println("Server listening on port:", cfg.HTTPPort)
		return app.Listen(":" + cfg.HTTPPort)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagPort, "port", "", "listen port (overrides HTTP_PORT)")
}
