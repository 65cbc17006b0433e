// internal/domain/checkout/service.go
package checkout

import (
	"github.com/sirupsen/logrus"
	"github.com/your-org/shopstore/internal/config"
	"github.com/your-org/shopstore/internal/domain/cart"
	"github.com/your-org/shopstore/internal/domain/order"
	"github.com/your-org/shopstore/internal/domain/payment"
	"github.com/your-org/shopstore/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Sentinel errors returned by the orchestrator
var (
	ErrEmptyCart        = apperrors.New(apperrors.KindValidation, "cart is empty")
	ErrNotAuthenticated = apperrors.New(apperrors.KindUnauthorized, "checkout requires a logged-in user")
)

// Service orchestrates the checkout saga. It is the only component spanning
// repositories directly: validate the cart, compute totals, create the order
// with its items, optionally record a payment, and clear the cart.
type Service struct {
	cartRepo    *cart.Repository
	orderRepo   *order.Repository
	paymentRepo *payment.Repository
	methodRepo  *payment.MethodRepository
	policy      config.CheckoutConfig
	log         *logrus.Logger
}

// NewService creates a new checkout service
func NewService(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		cartRepo:    cart.NewRepository(db),
		orderRepo:   order.NewRepository(db),
		paymentRepo: payment.NewRepository(db),
		methodRepo:  payment.NewMethodRepository(db),
		policy:      cfg.Checkout,
		log:         log,
	}
}

// CheckoutResult is the outcome of a placed order
type CheckoutResult struct {
	Order   *order.Order     `json:"order"`
	Totals  Totals           `json:"totals"`
	Payment *payment.Payment `json:"payment,omitempty"`
}

// PlaceOrder runs the checkout saga for a user's current cart. Order
// creation (order row, item rows, cart clear) is one atomic unit. The
// optional payment record is written after that unit commits: a payment
// failure does not undo the order, which stays pending until a payment is
// separately confirmed.
func (s *Service) PlaceOrder(userID uint, shippingAddress string, paymentMethodID *uint) (*CheckoutResult, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	lines, err := s.cartRepo.Items(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	// Resolve the payment method up front so a bad selection fails the
	// checkout before anything is written.
	if paymentMethodID != nil {
		method, err := s.methodRepo.GetByID(*paymentMethodID)
		if err != nil {
			return nil, err
		}
		if method.UserID != userID {
			return nil, payment.ErrMethodNotFound
		}
	}

	totals := CalculateTotals(lines, s.policy)

	created, err := s.orderRepo.Create(userID, lines, totals.GrandTotal, shippingAddress)
	if err != nil {
		return nil, err
	}

	result := &CheckoutResult{
		Order:  created,
		Totals: totals,
	}

	if paymentMethodID != nil {
		p, err := s.paymentRepo.Create(created.ID, userID, paymentMethodID, totals.GrandTotal, "card")
		if err != nil {
			// The order stands; payment settlement is a separate step.
			s.log.WithError(err).WithFields(logrus.Fields{
				"order_id":     created.ID,
				"order_number": created.OrderNumber,
			}).Warn("payment record failed after order creation")
			return result, nil
		}
		result.Payment = p
	}

	return result, nil
}

// Totals previews the checkout totals for the user's current cart without
// writing anything.
func (s *Service) Totals(userID uint) (Totals, error) {
	if userID == 0 {
		return Totals{}, ErrNotAuthenticated
	}

	lines, err := s.cartRepo.Items(userID)
	if err != nil {
		return Totals{}, err
	}

	return CalculateTotals(lines, s.policy), nil
}
