package clients

import (
	"context"
	"fmt"
	"net/http"

	"clinic-portal/models"
)

// CreateOrder persists one pharmacy order. The backend creates one order per
// medicine; multi-line orders are not supported.
func (c *Client) CreateOrder(ctx context.Context, token string, req models.CreateOrderRequest) (models.PharmacyOrder, error) {
	var order models.PharmacyOrder
	if err := c.do(ctx, http.MethodPost, "/pharmacy-orders/", token, nil, req, &order); err != nil {
		return models.PharmacyOrder{}, err
	}
	return order, nil
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]models.PharmacyOrder, error) {
	var orders []models.PharmacyOrder
	if err := c.do(ctx, http.MethodGet, "/pharmacy-orders/", token, nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, token string, id int) (models.PharmacyOrder, error) {
	var order models.PharmacyOrder
	path := fmt.Sprintf("/pharmacy-orders/%d/", id)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &order); err != nil {
		return models.PharmacyOrder{}, err
	}
	return order, nil
}

func (c *Client) CancelOrder(ctx context.Context, token string, id int) (models.PharmacyOrder, error) {
	var order models.PharmacyOrder
	path := fmt.Sprintf("/pharmacy-orders/%d/", id)
	patch := map[string]string{"status": models.OrderStatusCancelled}
	if err := c.do(ctx, http.MethodPatch, path, token, nil, patch, &order); err != nil {
		return models.PharmacyOrder{}, err
	}
	return order, nil
}
