// internal/domain/favorites/service.go
package favorites

import (
	"github.com/your-org/shopstore/internal/domain/product"
	"gorm.io/gorm"
)

// Service handles favorites business logic
type Service struct {
	repo *Repository
}

// NewService creates a new favorites service
func NewService(db *gorm.DB) *Service {
	return &Service{
		repo: NewRepository(db),
	}
}

// Toggle flips the favorite state of a product for a user and returns the
// resulting membership: true when the product is now a favorite.
func (s *Service) Toggle(userID uint, p *product.Product) (bool, error) {
	isFavorite, err := s.repo.IsFavorite(userID, p.ID)
	if err != nil {
		return false, err
	}

	if isFavorite {
		if err := s.repo.Remove(userID, p.ID); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := s.repo.Add(userID, p); err != nil {
		return false, err
	}
	return true, nil
}

// Add marks a product as favorite, idempotently
func (s *Service) Add(userID uint, p *product.Product) error {
	return s.repo.Add(userID, p)
}

// Remove unmarks a product
func (s *Service) Remove(userID, productID uint) error {
	return s.repo.Remove(userID, productID)
}

// IsFavorite reports membership
func (s *Service) IsFavorite(userID, productID uint) (bool, error) {
	return s.repo.IsFavorite(userID, productID)
}

// List returns the user's favorites, newest first
func (s *Service) List(userID uint) ([]Favorite, error) {
	return s.repo.List(userID)
}
