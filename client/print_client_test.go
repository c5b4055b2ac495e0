// api/client/print_client_test.go
package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	logger "github.com/muralehq/murale/api/logging"
	"github.com/muralehq/murale/api/model"
)

func TestMain(m *testing.M) {
	logger.InitLogger("../logging")
	code := m.Run()
	logger.Sync()
	os.Exit(code)
}

func TestPrintClientGetQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quotes", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))

		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "canvas-30x40", req["sku"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"outcome": "Created",
			"quotes": [{
				"quoteId": "q-123",
				"currencyCode": "USD",
				"costSummary": {
					"items": {"amount": "24.50", "currencyCode": "USD"},
					"totalTax": {"amount": "2.00", "currencyCode": "USD"}
				},
				"shipments": [{
					"shipmentMethod": "Standard",
					"cost": {"amount": "4.70", "currencyCode": "USD"},
					"fulfillmentWindow": {"minDays": 3, "maxDays": 7}
				}]
			}]
		}`))
	}))
	defer server.Close()

	client := NewPrintClient(server.URL, "test-key")
	quote, err := client.GetQuote(context.Background(), "canvas-30x40", map[string]string{"size": "30x40"}, "US", 1)

	assert.NoError(t, err)
	assert.Equal(t, "canvas-30x40", quote.SKU)
	assert.Equal(t, "USD", quote.Currency)
	assert.Equal(t, 24.50, quote.ItemCost)
	assert.Equal(t, 2.00, quote.TaxEstimate)
	assert.Len(t, quote.Shipping, 1)
	assert.Equal(t, "Standard", quote.Shipping[0].Method)
	assert.InDelta(t, 31.20, quote.TotalCost, 0.001)
	assert.Equal(t, "q-123", quote.ProviderRef)
}

func TestPrintClientGetQuoteNoQuotes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"outcome": "Created", "quotes": []}`))
	}))
	defer server.Close()

	client := NewPrintClient(server.URL, "test-key")
	_, err := client.GetQuote(context.Background(), "unknown-sku", nil, "US", 1)

	assert.Error(t, err)
}

func TestPrintClientGetQuoteProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewPrintClient(server.URL, "test-key")
	_, err := client.GetQuote(context.Background(), "canvas-30x40", nil, "US", 1)

	assert.Error(t, err)
}

func TestPrintClientSubmitOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)

		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "ord-1", req["merchantReference"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"outcome": "Created",
			"order": {"id": "prov-9", "status": {"stage": "InProgress"}}
		}`))
	}))
	defer server.Close()

	order := model.Order{
		ID: "ord-1",
		Items: []model.OrderItem{
			{SKU: "canvas-30x40", ImageURL: "https://cdn.murale.io/art/a1.png", Copies: 1},
		},
		Recipient: model.Recipient{
			Name:        "Ada Smith",
			AddressLine: "1 Main St",
			City:        "Austin",
			CountryCode: "US",
		},
	}

	client := NewPrintClient(server.URL, "test-key")
	providerRef, err := client.SubmitOrder(context.Background(), order, []map[string]string{{"size": "30x40"}})

	assert.NoError(t, err)
	assert.Equal(t, "prov-9", providerRef)
}

func TestPrintClientGetOrderStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/prov-9", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"order": {
				"id": "prov-9",
				"status": {"stage": "Shipped"},
				"shipments": [{"trackingUrl": "https://track.example.com/123"}]
			}
		}`))
	}))
	defer server.Close()

	client := NewPrintClient(server.URL, "test-key")
	update, err := client.GetOrderStatus(context.Background(), "prov-9")

	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, update.Status)
	assert.Equal(t, "https://track.example.com/123", update.TrackingURL)
}

func TestMapProviderStage(t *testing.T) {
	assert.Equal(t, model.OrderStatusInProduction, mapProviderStage("InProgress"))
	assert.Equal(t, model.OrderStatusShipped, mapProviderStage("Complete"))
	assert.Equal(t, model.OrderStatusShipped, mapProviderStage("Shipped"))
	assert.Equal(t, model.OrderStatusCancelled, mapProviderStage("Cancelled"))
	assert.Equal(t, model.OrderStatusSubmitted, mapProviderStage("SomethingNew"))
}
