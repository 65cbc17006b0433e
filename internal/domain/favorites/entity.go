// internal/domain/favorites/entity.go
package favorites

import (
	"time"

	"github.com/your-org/shopstore/internal/domain/user"
)

// Favorite marks a product as favorited by a user, with a display snapshot
// of the product taken at add-time. At most one row exists per
// (user, product) pair.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_favorites_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_favorites_user_product" json:"product_id"`
	Title     string    `gorm:"not null;size:255" json:"title"`
	Price     float64   `gorm:"not null" json:"price"`
	Image     string    `gorm:"size:500" json:"image"`
	CreatedAt time.Time `json:"created_at"`

	User user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name
func (Favorite) TableName() string {
	return "favorites"
}
