// internal/domain/favorites/repository.go
package favorites

import (
	"errors"

	"github.com/your-org/shopstore/internal/domain/product"
	"github.com/your-org/shopstore/internal/pkg/apperrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository handles database operations for favorites
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new favorites repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add marks a product as favorite. Adding an existing favorite is a no-op:
// the insert is ignored on conflict against the (user, product) unique pair.
func (r *Repository) Add(userID uint, p *product.Product) error {
	favorite := Favorite{
		UserID:    userID,
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
	}

	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite).Error
	if err != nil {
		return apperrors.Wrap(apperrors.KindStorage, "failed to add favorite", err)
	}
	return nil
}

// Remove unmarks a product. Removing an absent favorite is a no-op.
func (r *Repository) Remove(userID, productID uint) error {
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&Favorite{}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.KindStorage, "failed to remove favorite", err)
	}
	return nil
}

// IsFavorite reports whether the user has favorited the product
func (r *Repository) IsFavorite(userID, productID uint) (bool, error) {
	var favorite Favorite
	err := r.db.Select("id").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.Wrap(apperrors.KindStorage, "failed to check favorite", err)
	}
	return true, nil
}

// List returns the user's favorites, newest first
func (r *Repository) List(userID uint) ([]Favorite, error) {
	var favorites []Favorite
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to list favorites", err)
	}
	return favorites, nil
}
