// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/shopstore/internal/domain/user"
)

// CartItem represents one cart line. Title, price and image are a snapshot
// of the product cache taken at add-time: once added, the displayed price is
// insulated from later catalog changes until the user re-adds the product.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Title     string    `gorm:"not null;size:255" json:"title"`
	Price     float64   `gorm:"not null" json:"price"`
	Image     string    `gorm:"size:500" json:"image"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name
func (CartItem) TableName() string {
	return "cart"
}

// LineTotal returns price times quantity for this line
func (c *CartItem) LineTotal() float64 {
	return c.Price * float64(c.Quantity)
}
