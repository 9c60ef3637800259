package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"wolfcafe-telegram/models"
)

func (c *Client) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/items/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) GetItemByName(ctx context.Context, name string) (*models.MenuItem, error) {
	var item models.MenuItem
	path := "/api/items/name/" + url.PathEscape(name)
	if err := c.do(ctx, http.MethodGet, path, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateItem(ctx context.Context, in models.ItemInput) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.do(ctx, http.MethodPost, "/api/items", in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateItem(ctx context.Context, id int64, in models.ItemInput) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/items/%d", id), in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/items/%d", id), nil, nil)
}
