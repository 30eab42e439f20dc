package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invoicer/internal/config"
	"invoicer/internal/logger"
	"invoicer/internal/store"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "invoicer",
	Short: "Invoicer - customer and invoice management with PDF output",
	Long: `Invoicer manages customers and invoices for a small service business
and renders invoices as paginated PDF documents.

Customers and invoices live in a local sqlite database (DATA_PATH,
default invoices.db). The issuing company's details are read from the
environment (COMPANY_NAME, COMPANY_ABN, COMPANY_ADDRESS, COMPANY_PHONE),
optionally via a .env file.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Invoicer " + version)
		fmt.Println("Use --help to see available commands.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore loads the configuration and opens the database. Every
// subcommand goes through here.
func openStore() (*store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Open(cfg.DataPath)
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}
