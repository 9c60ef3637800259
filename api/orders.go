package api

import (
	"context"
	"fmt"
	"net/http"

	"wolfcafe-telegram/models"
)

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder posts a paid-for order. Payment sufficiency is checked
// before calling this (services.SubmitPayment); the backend re-checks
// whatever it cares about and is the source of truth for the saved row.
func (c *Client) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	var saved models.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", order, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/orders/%d", id), nil, nil)
}

// UpdateOrderStatus posts the bare status string as text/plain, the one
// non-JSON call in the backend's surface.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	path := fmt.Sprintf("/api/orders/status/%d", id)
	return c.doRaw(ctx, http.MethodPost, path, "text/plain", []byte(status), nil)
}
