// Package main runs the venue back-office API.
package main

import (
	"fmt"
	"log"
	"os"

	"venue-backoffice/internal/config"
	"venue-backoffice/internal/database"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	flagConfig string
	flagPort   string
)

var logger = log.New(os.Stdout, "", log.LstdFlags)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "venue-backoffice",
	Short:         "Back-office API for venues, recipes, staff and inventory",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "optional YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads .env when present, then the config file and environment.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg, err := config.Load(flagConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Printf("Database connected (%s)", cfg.DatabaseDriver)
	return db, nil
}
