package api

import (
	"context"
	"net/http"

	"wolfcafe-telegram/models"
)

func (c *Client) GetInventory(ctx context.Context) (*models.Inventory, error) {
	var inv models.Inventory
	if err := c.do(ctx, http.MethodGet, "/api/inventory", nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// UpdateInventory sends absolute quantities (current + added amount),
// never deltas. The backend replaces, it does not accumulate.
func (c *Client) UpdateInventory(ctx context.Context, inv models.Inventory) error {
	return c.do(ctx, http.MethodPut, "/api/inventory", inv, nil)
}

// GetTaxRate returns the tax rate as a percentage, e.g. 2 for 2%.
// Callers divide by 100 before doing money math.
func (c *Client) GetTaxRate(ctx context.Context) (float64, error) {
	var rate float64
	if err := c.do(ctx, http.MethodGet, "/api/inventory/tax", nil, &rate); err != nil {
		return 0, err
	}
	return rate, nil
}

func (c *Client) SetTaxRate(ctx context.Context, percent float64) (float64, error) {
	var rate float64
	if err := c.do(ctx, http.MethodPost, "/api/inventory/tax", percent, &rate); err != nil {
		return 0, err
	}
	return rate, nil
}
