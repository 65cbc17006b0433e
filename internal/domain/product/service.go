// internal/domain/product/service.go
package product

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// CatalogSource supplies product JSON from the remote catalog
type CatalogSource interface {
	AllProducts(ctx context.Context) ([]CatalogProduct, error)
	ProductsByCategory(ctx context.Context, category string) ([]CatalogProduct, error)
	Categories(ctx context.Context) ([]string, error)
}

// Service handles the offline browsing cache above the repository
type Service struct {
	repo    *Repository
	catalog CatalogSource
}

// NewService creates a new product service
func NewService(db *gorm.DB, catalog CatalogSource) *Service {
	return &Service{
		repo:    NewRepository(db),
		catalog: catalog,
	}
}

// Refresh pulls the full catalog and replaces the cache in one batch
func (s *Service) Refresh(ctx context.Context) (int, error) {
	products, err := s.catalog.AllProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	if err := s.repo.UpsertAll(products); err != nil {
		return 0, err
	}

	return len(products), nil
}

// RefreshCategory refreshes the cache rows of a single category
func (s *Service) RefreshCategory(ctx context.Context, category string) (int, error) {
	products, err := s.catalog.ProductsByCategory(ctx, category)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch category %q: %w", category, err)
	}

	if err := s.repo.UpsertAll(products); err != nil {
		return 0, err
	}

	return len(products), nil
}

// GetAll returns every cached product
func (s *Service) GetAll() ([]Product, error) {
	return s.repo.GetAll()
}

// GetByID returns one cached product
func (s *Service) GetByID(id uint) (*Product, error) {
	return s.repo.GetByID(id)
}

// GetByCategory returns the cached products of one category
func (s *Service) GetByCategory(category string) ([]Product, error) {
	return s.repo.GetByCategory(category)
}

// Categories returns the categories present in the cache
func (s *Service) Categories() ([]string, error) {
	return s.repo.Categories()
}
