// internal/domain/payment/repository.go
package payment

import (
	"errors"

	"github.com/your-org/shopstore/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// ErrPaymentNotFound is returned when no payment exists for a lookup
var ErrPaymentNotFound = apperrors.New(apperrors.KindNotFound, "payment not found")

// Repository handles database operations for payment records
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new payment repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create records a payment for an order. There is no authorization call
// behind this: the status is written as completed unconditionally, which is
// the documented gateway stub, not a gap.
func (r *Repository) Create(orderID, userID uint, paymentMethodID *uint, amount float64, paymentType string) (*Payment, error) {
	if paymentType == "" {
		paymentType = "card"
	}

	p := Payment{
		OrderID:         orderID,
		UserID:          userID,
		PaymentMethodID: paymentMethodID,
		Amount:          amount,
		Status:          PaymentStatusCompleted,
		TransactionID:   newTransactionID(),
		PaymentType:     paymentType,
	}

	if err := r.db.Create(&p).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to create payment", err)
	}

	return &p, nil
}

// PaymentDetail is a payment joined with its order number and, when the
// referenced card still exists, the card info.
type PaymentDetail struct {
	Payment
	OrderNumber string `json:"order_number"`
	CardType    string `json:"card_type"`
	CardNumber  string `json:"card_number"`
}

// GetByOrderID returns the payment recorded for an order, with card info
// when the referenced method still exists.
func (r *Repository) GetByOrderID(orderID uint) (*PaymentDetail, error) {
	var detail PaymentDetail
	err := r.db.Model(&Payment{}).
		Select("payments.*, payment_methods.card_type, payment_methods.card_number").
		Joins("LEFT JOIN payment_methods ON payment_methods.id = payments.payment_method_id").
		Where("payments.order_id = ?", orderID).
		First(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to get payment", err)
	}
	return &detail, nil
}

// GetUserPayments returns the user's payment history newest first, joined
// with order numbers and surviving card info.
func (r *Repository) GetUserPayments(userID uint) ([]PaymentDetail, error) {
	var details []PaymentDetail
	err := r.db.Model(&Payment{}).
		Select("payments.*, orders.order_number, payment_methods.card_type, payment_methods.card_number").
		Joins("LEFT JOIN orders ON orders.id = payments.order_id").
		Joins("LEFT JOIN payment_methods ON payment_methods.id = payments.payment_method_id").
		Where("payments.user_id = ?", userID).
		Order("payments.created_at DESC, payments.id DESC").
		Find(&details).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to list payments", err)
	}
	return details, nil
}

// UpdateStatus transitions a payment record
func (r *Repository) UpdateStatus(paymentID uint, status PaymentStatus) error {
	result := r.db.Model(&Payment{}).
		Where("id = ?", paymentID).
		Updates(map[string]interface{}{
			"status": status,
		})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.KindStorage, "failed to update payment status", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
