// internal/infrastructure/catalog/seed.go
package catalog

import (
	"github.com/your-org/shopstore/internal/domain/product"
)

// SeedProducts returns a built-in product list for populating the cache when
// the remote catalog is unreachable.
func SeedProducts() []product.CatalogProduct {
	return []product.CatalogProduct{
		{
			ID:          1001,
			Title:       "Premium Wireless Headphones",
			Price:       199.99,
			Description: "Noise-cancelling over-ear headphones with 30-hour battery life.",
			Category:    "electronics",
			Image:       "https://images.example.com/products/headphones.jpg",
			Rating:      product.Rating{Rate: 4.6, Count: 412},
		},
		{
			ID:          1002,
			Title:       "Smart Watch Pro",
			Price:       299.99,
			Description: "Fitness tracking, heart-rate monitoring and a week of battery.",
			Category:    "electronics",
			Image:       "https://images.example.com/products/smartwatch.jpg",
			Rating:      product.Rating{Rate: 4.4, Count: 289},
		},
		{
			ID:          1003,
			Title:       "Ultra-Slim Laptop",
			Price:       899.99,
			Description: "13-inch ultrabook with 16GB RAM and all-day battery.",
			Category:    "electronics",
			Image:       "https://images.example.com/products/laptop.jpg",
			Rating:      product.Rating{Rate: 4.7, Count: 156},
		},
		{
			ID:          1004,
			Title:       "Mechanical Gaming Keyboard",
			Price:       129.99,
			Description: "Hot-swappable switches with per-key RGB lighting.",
			Category:    "electronics",
			Image:       "https://images.example.com/products/keyboard.jpg",
			Rating:      product.Rating{Rate: 4.5, Count: 534},
		},
		{
			ID:          1005,
			Title:       "Designer Sunglasses",
			Price:       159.99,
			Description: "Polarized lenses with UV400 protection.",
			Category:    "jewelery",
			Image:       "https://images.example.com/products/sunglasses.jpg",
			Rating:      product.Rating{Rate: 4.2, Count: 98},
		},
		{
			ID:          1006,
			Title:       "Gold Chain Necklace",
			Price:       89.99,
			Description: "18k gold-plated chain, 45cm.",
			Category:    "jewelery",
			Image:       "https://images.example.com/products/necklace.jpg",
			Rating:      product.Rating{Rate: 4.1, Count: 203},
		},
		{
			ID:          1007,
			Title:       "Pearl Earrings",
			Price:       79.99,
			Description: "Freshwater pearls on sterling silver studs.",
			Category:    "jewelery",
			Image:       "https://images.example.com/products/earrings.jpg",
			Rating:      product.Rating{Rate: 4.8, Count: 67},
		},
		{
			ID:          1008,
			Title:       "Classic Denim Jacket",
			Price:       69.99,
			Description: "Mid-weight denim with a relaxed fit.",
			Category:    "men's clothing",
			Image:       "https://images.example.com/products/jacket.jpg",
			Rating:      product.Rating{Rate: 4.3, Count: 321},
		},
	}
}
