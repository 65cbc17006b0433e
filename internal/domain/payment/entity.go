// internal/domain/payment/entity.go
package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/shopstore/internal/domain/order"
	"github.com/your-org/shopstore/internal/domain/user"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PaymentMethod represents a stored card. At most one row per user carries
// is_default; the flag is reassigned exclusively.
type PaymentMethod struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	CardHolder  string    `gorm:"not null;size:100;column:card_holder_name" json:"card_holder_name"`
	CardNumber  string    `gorm:"not null;size:30" json:"card_number"`
	CardType    string    `gorm:"size:20" json:"card_type"`
	ExpiryMonth string    `gorm:"not null;size:2" json:"expiry_month"`
	ExpiryYear  string    `gorm:"not null;size:4" json:"expiry_year"`
	CVV         string    `gorm:"not null;size:4;column:cvv" json:"-"`
	IsDefault   bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// Payment is an immutable payment record. Its link to the payment method is
// a weak reference: deleting the card nulls payment_method_id and leaves the
// rest of the row intact as audit trail.
type Payment struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	OrderID         uint          `gorm:"not null;index" json:"order_id"`
	UserID          uint          `gorm:"not null;index" json:"user_id"`
	PaymentMethodID *uint         `gorm:"index" json:"payment_method_id"`
	Amount          float64       `gorm:"not null" json:"amount"`
	Status          PaymentStatus `gorm:"not null;default:'pending';size:20" json:"status"`
	TransactionID   string        `gorm:"uniqueIndex;not null;size:50" json:"transaction_id"`
	PaymentType     string        `gorm:"size:20" json:"payment_type"`
	CreatedAt       time.Time     `json:"created_at"`

	Method *PaymentMethod `gorm:"foreignKey:PaymentMethodID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Order  order.Order    `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Owner  user.User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// TableName overrides
func (PaymentMethod) TableName() string { return "payment_methods" }
func (Payment) TableName() string       { return "payments" }

// AddMethodRequest represents the data for storing a new card
type AddMethodRequest struct {
	CardHolder  string `json:"card_holder_name"`
	CardNumber  string `json:"card_number"`
	CardType    string `json:"card_type"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
	IsDefault   bool   `json:"is_default"`
}

// newTransactionID builds an application-level transaction id from the
// creation instant and a random uppercase suffix.
func newTransactionID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), suffix)
}
