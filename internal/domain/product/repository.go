// internal/domain/product/repository.go
package product

import (
	"errors"
	"time"

	"github.com/your-org/shopstore/internal/pkg/apperrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a product id is not in the cache
var ErrNotFound = apperrors.New(apperrors.KindNotFound, "product not found")

// Repository handles database operations for the product cache
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new product repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpsertAll replaces each cached row by id inside a single transaction, so a
// partial catalog refresh never leaves a half-updated cache visible to
// readers.
func (r *Repository) UpsertAll(products []CatalogProduct) error {
	if len(products) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]Product, len(products))
	for i, p := range products {
		rows[i] = Product{
			ID:          p.ID,
			Title:       p.Title,
			Price:       p.Price,
			Description: p.Description,
			Category:    p.Category,
			Image:       p.Image,
			RatingRate:  p.Rating.Rate,
			RatingCount: p.Rating.Count,
			CachedAt:    now,
		}
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&rows).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.KindStorage, "failed to refresh product cache", err)
	}

	return nil
}

// GetAll returns every cached product ordered by id
func (r *Repository) GetAll() ([]Product, error) {
	var products []Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to list products", err)
	}
	return products, nil
}

// GetByID retrieves a cached product by its catalog id
func (r *Repository) GetByID(id uint) (*Product, error) {
	var product Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to get product", err)
	}
	return &product, nil
}

// GetByCategory returns cached products of one category ordered by id
func (r *Repository) GetByCategory(category string) ([]Product, error) {
	var products []Product
	if err := r.db.Where("category = ?", category).Order("id").Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to list products by category", err)
	}
	return products, nil
}

// Categories returns the distinct categories present in the cache
func (r *Repository) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&Product{}).
		Distinct("category").
		Where("category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to list categories", err)
	}
	return categories, nil
}
