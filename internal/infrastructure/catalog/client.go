// internal/infrastructure/catalog/client.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/your-org/shopstore/internal/config"
	"github.com/your-org/shopstore/internal/domain/product"
)

// Client talks to the remote product catalog API. The catalog is an
// external collaborator: this client only fetches the JSON the cache-refresh
// operation consumes.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

// NewClient creates a new catalog client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		baseURL: cfg.Catalog.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Catalog.Timeout,
		},
		log: log,
	}
}

// AllProducts fetches the full catalog
func (c *Client) AllProducts(ctx context.Context) ([]product.CatalogProduct, error) {
	var products []product.CatalogProduct
	if err := c.get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductsByCategory fetches the catalog entries of one category
func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]product.CatalogProduct, error) {
	var products []product.CatalogProduct
	path := "/products/category/" + url.PathEscape(category)
	if err := c.get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Categories fetches the list of catalog categories
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.WithField("path", path).Debug("fetching catalog")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return nil
}
