// Package suppliers implements HTTP clients for external product catalogs.
// A client pages through the supplier's catalog endpoint and feeds the sync
// service, which reconciles items into the local product table.
package suppliers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kehanet/go-arcana-backend/internal/config"
	"github.com/kehanet/go-arcana-backend/internal/services"
)

// maxErrorBody caps how much of a failed response body is kept for the error.
const maxErrorBody = 2 << 10

// Client fetches a supplier catalog over HTTP with bearer-token auth. The
// endpoint is expected to serve GET {base}/products?page=N&page_size=M with a
// JSON body of catalogPage.
type Client struct {
	name string
	cfg  config.SupplierConfig
	http *http.Client
}

var _ services.Catalog = (*Client)(nil)

// NewClient builds a catalog client from its config. Returns nil when the
// config carries no base URL, which disables catalog sync entirely.
func NewClient(cfg config.SupplierConfig) *Client {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = "supplier"
	}
	return &Client{
		name: name,
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

// Name implements services.Catalog.
func (c *Client) Name() string { return c.name }

type catalogProduct struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	PriceUSDCents int64  `json:"price_usd_cents"`
	Stock         int    `json:"stock"`
}

type catalogPage struct {
	Products []catalogProduct `json:"products"`
	HasMore  bool             `json:"has_more"`
}

// Page implements services.Catalog. Pages are 1-based.
func (c *Client) Page(ctx context.Context, page, pageSize int) ([]services.CatalogItem, bool, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/products?page=" + strconv.Itoa(page) + "&page_size=" + strconv.Itoa(pageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("%s catalog: %w", c.name, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("%s catalog: %w", c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, false, fmt.Errorf("%s catalog: status %d: %s", c.name, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var parsed catalogPage
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, false, fmt.Errorf("%s catalog: decode page %d: %w", c.name, page, err)
	}

	items := make([]services.CatalogItem, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		if strings.TrimSpace(p.ID) == "" {
			continue
		}
		items = append(items, services.CatalogItem{
			ExternalID:    p.ID,
			Title:         p.Title,
			Description:   p.Description,
			PriceUSDCents: p.PriceUSDCents,
			Stock:         p.Stock,
		})
	}
	return items, parsed.HasMore, nil
}
