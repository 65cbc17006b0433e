// internal/domain/product/entity.go
package product

import (
	"time"
)

// Product represents a cached catalog product. The id mirrors the upstream
// catalog id and is the natural cache key; re-caching replaces the row.
type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:100;index" json:"category"`
	Image       string    `gorm:"size:500" json:"image"`
	RatingRate  float64   `json:"-"`
	RatingCount int       `json:"-"`
	CachedAt    time.Time `json:"cached_at"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// Rating is the nested rating shape of the upstream catalog JSON
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// CatalogProduct is the upstream catalog JSON shape consumed by the cache
type CatalogProduct struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating returns the nested rating view of a cached row
func (p *Product) Rating() Rating {
	return Rating{Rate: p.RatingRate, Count: p.RatingCount}
}
