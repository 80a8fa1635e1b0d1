package services

import (
	"context"
	"errors"

	"clinic-portal/models"
)

var ErrOrderNotCancellable = errors.New("only pending orders can be cancelled")

type OrderAPI interface {
	ListOrders(ctx context.Context, token string) ([]models.PharmacyOrder, error)
	GetOrder(ctx context.Context, token string, id int) (models.PharmacyOrder, error)
	CancelOrder(ctx context.Context, token string, id int) (models.PharmacyOrder, error)
}

type OrderService struct {
	api OrderAPI
}

func NewOrderService(api OrderAPI) *OrderService {
	return &OrderService{api: api}
}

func (s *OrderService) List(ctx context.Context, session *models.Session) ([]models.PharmacyOrder, error) {
	return s.api.ListOrders(ctx, session.AccessToken)
}

func (s *OrderService) GetByID(ctx context.Context, session *models.Session, id int) (models.PharmacyOrder, error) {
	return s.api.GetOrder(ctx, session.AccessToken, id)
}

// Cancel rejects anything past pending before touching the backend, matching
// the backend's own rule.
func (s *OrderService) Cancel(ctx context.Context, session *models.Session, id int) (models.PharmacyOrder, error) {
	order, err := s.api.GetOrder(ctx, session.AccessToken, id)
	if err != nil {
		return models.PharmacyOrder{}, err
	}
	if order.Status != models.OrderStatusPending {
		return models.PharmacyOrder{}, ErrOrderNotCancellable
	}
	return s.api.CancelOrder(ctx, session.AccessToken, id)
}
