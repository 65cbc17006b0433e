// internal/domain/order/repository.go
package order

import (
	"errors"
	"time"

	"github.com/your-org/shopstore/internal/domain/cart"
	"github.com/your-org/shopstore/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Sentinel errors returned by the repository
var (
	ErrNotFound      = apperrors.New(apperrors.KindNotFound, "order not found")
	ErrNoItems       = apperrors.New(apperrors.KindValidation, "order must contain at least one item")
	ErrInvalidStatus = apperrors.New(apperrors.KindValidation, "unknown order status")
)

// afterItemsInsert is a fault-injection seam used by tests; nil in production.
var afterItemsInsert func(tx *gorm.DB) error

// Repository handles database operations for orders and their items
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new order repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the order row, one item per cart line, and clears the
// user's cart as one atomic unit. Any failure rolls the whole sequence back,
// so a placed order can never coexist with the cart lines it was built from.
func (r *Repository) Create(userID uint, lines []cart.CartItem, totalAmount float64, shippingAddress string) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoItems
	}

	order := Order{
		UserID:          userID,
		OrderNumber:     newOrderNumber(userID),
		TotalAmount:     totalAmount,
		Status:          OrderStatusPending,
		ShippingAddress: shippingAddress,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		items := make([]OrderItem, len(lines))
		for i, line := range lines {
			items[i] = OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Title:     line.Title,
				Price:     line.Price,
				Quantity:  line.Quantity,
				Image:     line.Image,
			}
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		order.Items = items

		if afterItemsInsert != nil {
			if err := afterItemsInsert(tx); err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", userID).Delete(&cart.CartItem{}).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to create order", err)
	}

	return &order, nil
}

// GetByID retrieves one order with its items
func (r *Repository) GetByID(orderID uint) (*Order, error) {
	var order Order
	err := r.db.Preload("Items").First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to get order", err)
	}
	return &order, nil
}

// GetUserOrders returns the user's orders newest first, each with its items.
// Items are loaded with a single batched query instead of one query per
// order.
func (r *Repository) GetUserOrders(userID uint) ([]Order, error) {
	var orders []Order
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to list orders", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uint, len(orders))
	index := make(map[uint]*Order, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = &orders[i]
	}

	var items []OrderItem
	if err := r.db.Where("order_id IN ?", ids).Order("id").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to load order items", err)
	}
	for _, item := range items {
		o := index[item.OrderID]
		o.Items = append(o.Items, item)
	}

	return orders, nil
}

// UpdateStatus transitions an order to a new status and touches updated_at
func (r *Repository) UpdateStatus(orderID uint, status OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	result := r.db.Model(&Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.KindStorage, "failed to update order status", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
