package suppliers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kehanet/go-arcana-backend/internal/config"
)

func TestNewClient_DisabledWithoutBaseURL(t *testing.T) {
	if c := NewClient(config.SupplierConfig{}); c != nil {
		t.Fatalf("expected nil client for empty base URL")
	}
	if c := NewClient(config.SupplierConfig{BaseURL: "   "}); c != nil {
		t.Fatalf("expected nil client for blank base URL")
	}
}

func TestClient_Page_AuthAndPaging(t *testing.T) {
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(map[string]any{
			"products": []map[string]any{
				{"id": "EXT-1", "title": "Tarot Destesi", "description": "78 kart", "price_usd_cents": 1999, "stock": 12},
				{"id": "", "title": "no id, skipped"},
				{"id": "EXT-2", "title": "Tütsü Seti", "price_usd_cents": 499, "stock": 0},
			},
			"has_more": true,
		})
	}))
	defer srv.Close()

	c := NewClient(config.SupplierConfig{
		BaseURL: srv.URL,
		APIKey:  "sk-supplier",
		Name:    "eprolo",
		Timeout: 5 * time.Second,
	})
	if c == nil {
		t.Fatalf("expected client")
	}
	if c.Name() != "eprolo" {
		t.Fatalf("Name = %q", c.Name())
	}

	items, more, err := c.Page(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if gotAuth != "Bearer sk-supplier" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotQuery != "page=2&page_size=10" {
		t.Fatalf("query = %q", gotQuery)
	}
	if !more {
		t.Fatalf("expected has_more=true")
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items (blank id skipped), got %d", len(items))
	}
	if items[0].ExternalID != "EXT-1" || items[0].PriceUSDCents != 1999 || items[0].Stock != 12 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].ExternalID != "EXT-2" || items[1].Stock != 0 {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}

func TestClient_Page_DefaultsPageAndSize(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(map[string]any{"products": []any{}, "has_more": false})
	}))
	defer srv.Close()

	c := NewClient(config.SupplierConfig{BaseURL: srv.URL})
	items, more, err := c.Page(context.Background(), 0, -3)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if gotQuery != "page=1&page_size=50" {
		t.Fatalf("query = %q", gotQuery)
	}
	if more || len(items) != 0 {
		t.Fatalf("expected empty final page, got %d items more=%v", len(items), more)
	}
	if c.Name() != "supplier" {
		t.Fatalf("expected default name, got %q", c.Name())
	}
}

func TestClient_Page_UpstreamErrorIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("catalog backend down"))
	}))
	defer srv.Close()

	c := NewClient(config.SupplierConfig{BaseURL: srv.URL, Name: "eprolo"})
	_, _, err := c.Page(context.Background(), 1, 50)
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"eprolo", "502", "catalog backend down"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q missing %q", msg, want)
		}
	}
}

func TestClient_Page_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := NewClient(config.SupplierConfig{BaseURL: srv.URL})
	_, _, err := c.Page(context.Background(), 1, 50)
	if err == nil {
		t.Fatalf("expected decode error")
	}
}
