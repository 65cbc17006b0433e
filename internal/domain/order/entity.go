// internal/domain/order/entity.go
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/shopstore/internal/domain/user"
)

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a known status
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a placed order. The total amount is fixed at creation and
// never recomputed; the order stays pending until a payment is separately
// confirmed.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	OrderNumber     string      `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	TotalAmount     float64     `gorm:"not null" json:"total_amount"`
	Status          OrderStatus `gorm:"not null;default:'pending';size:20" json:"status"`
	ShippingAddress string      `gorm:"size:500" json:"shipping_address"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	User  user.User   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// OrderItem is a frozen snapshot of one cart line at checkout time,
// independent of later product cache changes. Never mutated or individually
// deleted.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Title     string  `gorm:"not null;size:255" json:"title"`
	Price     float64 `gorm:"not null" json:"price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Image     string  `gorm:"size:500" json:"image"`
}

// TableName overrides
func (Order) TableName() string     { return "orders" }
func (OrderItem) TableName() string { return "order_items" }

// ItemsTotal returns the sum of price times quantity over the items
func (o *Order) ItemsTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// newOrderNumber builds an order number from the creation instant and the
// owning user, plus a short random suffix so two orders placed in the same
// millisecond cannot collide on the unique column.
func newOrderNumber(userID uint) string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("ORD-%d-%d-%s", time.Now().UnixMilli(), userID, suffix)
}
