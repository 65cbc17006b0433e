// cmd/store/cmd_db.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/your-org/shopstore/internal/infrastructure/database/sqlite"
)

// store migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply all pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, conn, err := bootMigrated()
		if err != nil {
			return err
		}
		defer conn.Close()
		return nil
	},
}

// store reset
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop every table and recreate the schema (destroys all data)",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, conn, err := boot()
		if err != nil {
			return err
		}
		defer conn.Close()

		return sqlite.NewMaintenance(conn.GetDB(), log).Reset()
	},
}

// store stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print row counts for every table",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, conn, err := bootMigrated()
		if err != nil {
			return err
		}
		defer conn.Close()

		stats, err := sqlite.NewMaintenance(conn.GetDB(), log).Stats()
		if err != nil {
			return err
		}

		fmt.Printf("users:            %d\n", stats.Users)
		fmt.Printf("products:         %d\n", stats.Products)
		fmt.Printf("cart items:       %d\n", stats.CartItems)
		fmt.Printf("orders:           %d\n", stats.Orders)
		fmt.Printf("order items:      %d\n", stats.OrderItems)
		fmt.Printf("favorites:        %d\n", stats.Favorites)
		fmt.Printf("payment methods:  %d\n", stats.PaymentMethods)
		fmt.Printf("payments:         %d\n", stats.Payments)
		return nil
	},
}
