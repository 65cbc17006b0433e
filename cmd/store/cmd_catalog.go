// cmd/store/cmd_catalog.go
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/your-org/shopstore/internal/domain/product"
	"github.com/your-org/shopstore/internal/infrastructure/catalog"
)

// store refresh [category]
var refreshCmd = &cobra.Command{
	Use:   "refresh [category]",
	Short: "Refresh the product cache from the remote catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, conn, err := bootMigrated()
		if err != nil {
			return err
		}
		defer conn.Close()

		client := catalog.NewClient(cfg, log)
		service := product.NewService(conn.GetDB(), client)

		var count int
		if len(args) == 1 {
			count, err = service.RefreshCategory(context.Background(), args[0])
		} else {
			count, err = service.Refresh(context.Background())
		}
		if err != nil {
			return err
		}

		fmt.Printf("cached %d products\n", count)
		return nil
	},
}

// store seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in product list into the cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, conn, err := bootMigrated()
		if err != nil {
			return err
		}
		defer conn.Close()

		products := catalog.SeedProducts()
		if err := product.NewRepository(conn.GetDB()).UpsertAll(products); err != nil {
			return err
		}

		fmt.Printf("seeded %d products\n", len(products))
		return nil
	},
}
