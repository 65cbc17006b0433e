// cmd/store/main.go
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/your-org/shopstore/internal/config"
	"github.com/your-org/shopstore/internal/infrastructure/database/sqlite"
	"github.com/your-org/shopstore/internal/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "store",
	Short: "Embedded commerce store maintenance CLI",
}

// boot loads configuration, builds the logger and opens the store
func boot() (*config.Config, *logrus.Logger, *sqlite.Connection, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(cfg)

	conn, err := sqlite.NewConnection(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := conn.Health(); err != nil {
		conn.Close()
		return nil, nil, nil, err
	}

	return cfg, log, conn, nil
}

// bootMigrated boots and brings the schema up to date. A migration failure
// is fatal: no repository may run against an unmigrated handle.
func bootMigrated() (*config.Config, *logrus.Logger, *sqlite.Connection, error) {
	cfg, log, conn, err := boot()
	if err != nil {
		return nil, nil, nil, err
	}

	if err := sqlite.NewMigration(conn.GetDB(), log).Run(); err != nil {
		conn.Close()
		return nil, nil, nil, err
	}

	return cfg, log, conn, nil
}

func main() {
	rootCmd.AddCommand(migrateCmd, resetCmd, statsCmd, refreshCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
