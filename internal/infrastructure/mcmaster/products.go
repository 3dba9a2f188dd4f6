package mcmaster

import (
	"context"
	"net/http"
	"net/url"

	"github.com/partkit/partkit/internal/domain/catalog"
)

type subscriptionRequest struct {
	URL string `json:"URL"`
}

// productURL is the canonical product page form the subscription
// endpoints expect instead of a bare part number.
func productURL(partNumber string) string {
	return "https://mcmaster.com/" + partNumber
}

// GetProduct fetches the full catalog record for a part.
func (c *Client) GetProduct(ctx context.Context, partNumber string) (*catalog.ProductRecord, error) {
	var record catalog.ProductRecord
	err := c.doJSON(ctx, http.MethodGet, "/products/"+url.PathEscape(partNumber), nil, &record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetPrice fetches the price tiers for a part.
func (c *Client) GetPrice(ctx context.Context, partNumber string) ([]catalog.PriceBreak, error) {
	var breaks []catalog.PriceBreak
	err := c.doJSON(ctx, http.MethodGet, "/products/"+url.PathEscape(partNumber)+"/price", nil, &breaks)
	if err != nil {
		return nil, err
	}
	return breaks, nil
}

// GetChanges lists subscribed parts changed since the given date. The
// date is passed through verbatim; the API accepts MM/DD/YYYY.
func (c *Client) GetChanges(ctx context.Context, since string) ([]catalog.ChangedProduct, error) {
	var changes []catalog.ChangedProduct
	err := c.doJSON(ctx, http.MethodGet, "/changes?start="+url.QueryEscape(since), nil, &changes)
	if err != nil {
		return nil, err
	}
	return changes, nil
}

// AddProduct subscribes the account to a part. Product data is only
// served for subscribed parts.
func (c *Client) AddProduct(ctx context.Context, partNumber string) error {
	return c.doJSON(ctx, http.MethodPut, "/products",
		subscriptionRequest{URL: productURL(partNumber)}, nil)
}

// RemoveProduct unsubscribes the account from a part.
func (c *Client) RemoveProduct(ctx context.Context, partNumber string) error {
	return c.doJSON(ctx, http.MethodDelete, "/products",
		subscriptionRequest{URL: productURL(partNumber)}, nil)
}
