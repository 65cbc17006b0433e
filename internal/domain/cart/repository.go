// internal/domain/cart/repository.go
package cart

import (
	"errors"
	"time"

	"github.com/your-org/shopstore/internal/domain/product"
	"github.com/your-org/shopstore/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// ErrLineNotFound is returned when a cart line id does not exist
var ErrLineNotFound = apperrors.New(apperrors.KindNotFound, "cart line not found")

// Repository handles database operations for cart lines
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new cart repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add puts one unit of a product into the user's cart. An existing line for
// (user, product) is incremented by 1; otherwise a new line is inserted with
// quantity 1 and a snapshot of the product's current cache fields. The
// check-then-write pair runs in one transaction so interleaved adds cannot
// produce two lines for the same pair.
func (r *Repository) Add(userID uint, p *product.Product) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing CartItem
		err := tx.Where("user_id = ? AND product_id = ?", userID, p.ID).First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			item := CartItem{
				UserID:    userID,
				ProductID: p.ID,
				Title:     p.Title,
				Price:     p.Price,
				Image:     p.Image,
				Quantity:  1,
			}
			return tx.Create(&item).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&CartItem{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"quantity":   gorm.Expr("quantity + 1"),
				"updated_at": time.Now().UTC(),
			}).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.KindStorage, "failed to add to cart", err)
	}

	return nil
}

// Items returns the user's cart lines, newest first
func (r *Repository) Items(userID uint) ([]CartItem, error) {
	var items []CartItem
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to list cart items", err)
	}
	return items, nil
}

// UpdateQuantity sets the quantity of a cart line. A quantity of zero or
// less deletes the line instead of leaving a zero row.
func (r *Repository) UpdateQuantity(lineID uint, quantity int) error {
	if quantity <= 0 {
		return r.Remove(lineID)
	}

	result := r.db.Model(&CartItem{}).
		Where("id = ?", lineID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.KindStorage, "failed to update cart quantity", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLineNotFound
	}

	return nil
}

// Remove deletes a single cart line
func (r *Repository) Remove(lineID uint) error {
	result := r.db.Delete(&CartItem{}, lineID)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.KindStorage, "failed to remove cart line", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLineNotFound
	}
	return nil
}

// Clear deletes every cart line of a user
func (r *Repository) Clear(userID uint) error {
	err := r.db.Where("user_id = ?", userID).Delete(&CartItem{}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.KindStorage, "failed to clear cart", err)
	}
	return nil
}

// Subtotal returns the sum of price times quantity over the user's lines
func (r *Repository) Subtotal(userID uint) (float64, error) {
	var subtotal float64
	err := r.db.Model(&CartItem{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(price * quantity), 0)").
		Scan(&subtotal).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindStorage, "failed to compute cart subtotal", err)
	}
	return subtotal, nil
}
