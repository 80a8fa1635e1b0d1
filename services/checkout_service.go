package services

import (
	"context"
	"errors"
	"fmt"

	"clinic-portal/config"
	"clinic-portal/models"
)

var (
	// ErrLoginRequired is returned when checkout runs without a session.
	// Distinct from transport failures so the client can prompt for login.
	ErrLoginRequired = errors.New("login required")
	ErrEmptyCart     = errors.New("cart is empty")
)

// OrderCreator is the one backend capability checkout needs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, token string, req models.CreateOrderRequest) (models.PharmacyOrder, error)
}

type CheckoutResult struct {
	OrdersCreated int     `json:"orders_created"`
	TotalAmount   float64 `json:"total_amount"`
}

// CheckoutService turns the cart into backend orders, one order per line item,
// issued sequentially in cart order. The cart is cleared only after every
// order was created. On failure the remaining items are skipped and orders
// already created stay created; the cart is left untouched so the user can
// retry. Retrying will duplicate the already-created orders - the backend has
// no idempotency key for pharmacy orders.
type CheckoutService struct {
	orders OrderCreator
	carts  *CartStore
	mailer *models.EmailService
}

func NewCheckoutService(orders OrderCreator, carts *CartStore, mailer *models.EmailService) *CheckoutService {
	return &CheckoutService{orders: orders, carts: carts, mailer: mailer}
}

func (s *CheckoutService) Submit(ctx context.Context, session *models.Session, cartKey string) (CheckoutResult, error) {
	if session == nil || session.UserID == "" {
		return CheckoutResult{}, ErrLoginRequired
	}

	items := s.carts.Snapshot(cartKey)
	if len(items) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}

	var result CheckoutResult
	for _, item := range items {
		req := models.CreateOrderRequest{
			PatientID:     session.UserID,
			MedicineName:  item.Name,
			Quantity:      item.Quantity,
			PricePerUnit:  item.Price,
			MedicineImage: item.Image,
			TotalAmount:   float64(item.Quantity) * item.Price,
		}

		order, err := s.orders.CreateOrder(ctx, session.AccessToken, req)
		if err != nil {
			config.Log.Error("Order creation failed, aborting checkout",
				config.Field("medicine", item.Name),
				config.Field("orders_created", result.OrdersCreated),
				config.Field("error", err.Error()))
			return result, fmt.Errorf("create order for %s: %w", item.Name, err)
		}

		config.Log.Info("Order created",
			config.Field("order_id", order.ID),
			config.Field("medicine", item.Name),
			config.Field("quantity", item.Quantity))

		result.OrdersCreated++
		result.TotalAmount += req.TotalAmount
	}

	s.carts.Clear(cartKey)

	if s.mailer != nil && session.Email != "" {
		if err := s.mailer.SendOrderConfirmation(session.Email, session.Name, result.OrdersCreated, result.TotalAmount); err != nil {
			config.Log.Warn("Order confirmation email failed",
				config.Field("error", err.Error()))
		}
	}

	return result, nil
}
