// internal/domain/payment/method_repository.go
package payment

import (
	"errors"

	"github.com/your-org/shopstore/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Sentinel errors returned by the method repository
var (
	ErrMethodNotFound = apperrors.New(apperrors.KindNotFound, "payment method not found")
	ErrManyDefaults   = apperrors.New(apperrors.KindInvariant, "more than one default payment method")
)

// MethodRepository handles database operations for stored cards
type MethodRepository struct {
	db *gorm.DB
}

// NewMethodRepository creates a new payment method repository
func NewMethodRepository(db *gorm.DB) *MethodRepository {
	return &MethodRepository{db: db}
}

// Add stores a new card. When the card is requested as default, or is the
// user's first card, all other defaults are cleared and the new row takes
// the flag — clear and insert run in one transaction so interleaved adds
// cannot leave two default rows. The partial unique index on
// payment_methods(user_id) where is_default backs this declaratively.
func (r *MethodRepository) Add(userID uint, req *AddMethodRequest) (*PaymentMethod, error) {
	if req.CardHolder == "" || req.CardNumber == "" || req.ExpiryMonth == "" || req.ExpiryYear == "" || req.CVV == "" {
		return nil, apperrors.New(apperrors.KindValidation, "missing card details")
	}

	cardType := req.CardType
	if cardType == "" {
		cardType = "visa"
	}

	method := PaymentMethod{
		UserID:      userID,
		CardHolder:  req.CardHolder,
		CardNumber:  req.CardNumber,
		CardType:    cardType,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		CVV:         req.CVV,
		IsDefault:   req.IsDefault,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if !method.IsDefault {
			// The user's first card becomes the default regardless.
			var count int64
			if err := tx.Model(&PaymentMethod{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
				return err
			}
			method.IsDefault = count == 0
		}

		if method.IsDefault {
			err := tx.Model(&PaymentMethod{}).
				Where("user_id = ? AND is_default = ?", userID, true).
				Update("is_default", false).Error
			if err != nil {
				return err
			}
		}

		return tx.Create(&method).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to add payment method", err)
	}

	return &method, nil
}

// List returns the user's cards, default first then newest first
func (r *MethodRepository) List(userID uint) ([]PaymentMethod, error) {
	var methods []PaymentMethod
	err := r.db.Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&methods).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to list payment methods", err)
	}
	return methods, nil
}

// GetByID retrieves one stored card
func (r *MethodRepository) GetByID(id uint) (*PaymentMethod, error) {
	var method PaymentMethod
	if err := r.db.First(&method, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMethodNotFound
		}
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to get payment method", err)
	}
	return &method, nil
}

// GetDefault returns the user's default card, verifying the exclusive-flag
// invariant on the way.
func (r *MethodRepository) GetDefault(userID uint) (*PaymentMethod, error) {
	var methods []PaymentMethod
	err := r.db.Where("user_id = ? AND is_default = ?", userID, true).Find(&methods).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to get default payment method", err)
	}
	switch len(methods) {
	case 0:
		return nil, ErrMethodNotFound
	case 1:
		return &methods[0], nil
	default:
		return nil, ErrManyDefaults
	}
}

// SetDefault reassigns the default flag to the given card, atomically
func (r *MethodRepository) SetDefault(userID, methodID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var method PaymentMethod
		err := tx.Where("id = ? AND user_id = ?", methodID, userID).First(&method).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMethodNotFound
		}
		if err != nil {
			return err
		}

		err = tx.Model(&PaymentMethod{}).
			Where("user_id = ? AND is_default = ?", userID, true).
			Update("is_default", false).Error
		if err != nil {
			return err
		}

		return tx.Model(&PaymentMethod{}).
			Where("id = ?", methodID).
			Update("is_default", true).Error
	})
	if err != nil {
		if errors.Is(err, ErrMethodNotFound) {
			return ErrMethodNotFound
		}
		return apperrors.Wrap(apperrors.KindStorage, "failed to set default payment method", err)
	}
	return nil
}

// Delete removes a card. Payments that referenced it keep their own rows;
// the storage engine nulls their payment_method_id (SET NULL, not CASCADE).
func (r *MethodRepository) Delete(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&PaymentMethod{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.KindStorage, "failed to delete payment method", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMethodNotFound
	}
	return nil
}
