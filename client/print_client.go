// api/client/print_client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	logger "github.com/muralehq/murale/api/logging"
	"github.com/muralehq/murale/api/model"
)

// PrintClient talks to the print-fulfillment provider's REST API for pricing
// quotes and order submission.
type PrintClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewPrintClient(baseURL, apiKey string) *PrintClient {
	return &PrintClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// printQuoteRequest is the provider's wire format for quote requests.
type printQuoteRequest struct {
	SKU         string            `json:"sku"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	CountryCode string            `json:"destinationCountryCode,omitempty"`
	Copies      int               `json:"copies"`
}

type printQuoteResponse struct {
	Outcome string `json:"outcome"`
	Quotes  []struct {
		QuoteID  string `json:"quoteId"`
		Currency string `json:"currencyCode"`
		CostSummary struct {
			Items    printMoney `json:"items"`
			TaxTotal printMoney `json:"totalTax"`
		} `json:"costSummary"`
		Shipments []struct {
			Method string     `json:"shipmentMethod"`
			Cost   printMoney `json:"cost"`
			Window struct {
				MinDays int `json:"minDays"`
				MaxDays int `json:"maxDays"`
			} `json:"fulfillmentWindow"`
		} `json:"shipments"`
	} `json:"quotes"`
}

type printMoney struct {
	Amount   float64 `json:"amount,string"`
	Currency string  `json:"currencyCode"`
}

// GetQuote prices a SKU with its normalized attributes and reshapes the
// provider response into the storefront's quote model.
func (p *PrintClient) GetQuote(ctx context.Context, sku string, attributes map[string]string, countryCode string, copies int) (*model.Quote, error) {
	if copies <= 0 {
		copies = 1
	}

	reqBody := printQuoteRequest{
		SKU:         sku,
		Attributes:  attributes,
		CountryCode: countryCode,
		Copies:      copies,
	}

	var resp printQuoteResponse
	if err := p.post(ctx, "/quotes", reqBody, &resp); err != nil {
		return nil, err
	}
	if len(resp.Quotes) == 0 {
		return nil, fmt.Errorf("print provider returned no quotes for SKU %s", sku)
	}

	providerQuote := resp.Quotes[0]
	quote := &model.Quote{
		SKU:         sku,
		Attributes:  attributes,
		Currency:    providerQuote.Currency,
		ItemCost:    providerQuote.CostSummary.Items.Amount,
		TaxEstimate: providerQuote.CostSummary.TaxTotal.Amount,
		Copies:      copies,
		ProviderRef: providerQuote.QuoteID,
		IssuedAt:    time.Now(),
	}
	for _, shipment := range providerQuote.Shipments {
		quote.Shipping = append(quote.Shipping, model.ShippingOption{
			Method:       shipment.Method,
			Cost:         shipment.Cost.Amount,
			Currency:     shipment.Cost.Currency,
			EstimatedMin: shipment.Window.MinDays,
			EstimatedMax: shipment.Window.MaxDays,
		})
	}
	quote.TotalCost = quote.ItemCost + quote.TaxEstimate
	if len(quote.Shipping) > 0 {
		quote.TotalCost += quote.Shipping[0].Cost
	}

	return quote, nil
}

type printOrderRequest struct {
	MerchantReference string           `json:"merchantReference"`
	ShippingMethod    string           `json:"shippingMethod,omitempty"`
	Recipient         printRecipient   `json:"recipient"`
	Items             []printOrderItem `json:"items"`
}

type printRecipient struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Address struct {
		Line1       string `json:"line1"`
		TownOrCity  string `json:"townOrCity"`
		PostalCode  string `json:"postalOrZipCode"`
		CountryCode string `json:"countryCode"`
	} `json:"address"`
}

type printOrderItem struct {
	SKU        string            `json:"sku"`
	Copies     int               `json:"copies"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Assets     []struct {
		PrintArea string `json:"printArea"`
		URL       string `json:"url"`
	} `json:"assets"`
}

type printOrderResponse struct {
	Outcome string `json:"outcome"`
	Order   struct {
		ID     string `json:"id"`
		Status struct {
			Stage string `json:"stage"`
		} `json:"status"`
	} `json:"order"`
}

// SubmitOrder sends an order to the provider and returns the provider's
// order reference.
func (p *PrintClient) SubmitOrder(ctx context.Context, order model.Order, itemAttributes []map[string]string) (string, error) {
	reqBody := printOrderRequest{
		MerchantReference: order.ID,
		ShippingMethod:    order.ShippingMethod,
	}
	reqBody.Recipient.Name = order.Recipient.Name
	reqBody.Recipient.Email = order.Recipient.Email
	reqBody.Recipient.Address.Line1 = order.Recipient.AddressLine
	reqBody.Recipient.Address.TownOrCity = order.Recipient.City
	reqBody.Recipient.Address.PostalCode = order.Recipient.PostalCode
	reqBody.Recipient.Address.CountryCode = order.Recipient.CountryCode

	for i, item := range order.Items {
		copies := item.Copies
		if copies <= 0 {
			copies = 1
		}
		providerItem := printOrderItem{
			SKU:    item.SKU,
			Copies: copies,
		}
		if i < len(itemAttributes) {
			providerItem.Attributes = itemAttributes[i]
		}
		providerItem.Assets = append(providerItem.Assets, struct {
			PrintArea string `json:"printArea"`
			URL       string `json:"url"`
		}{PrintArea: "default", URL: item.ImageURL})
		reqBody.Items = append(reqBody.Items, providerItem)
	}

	var resp printOrderResponse
	if err := p.post(ctx, "/orders", reqBody, &resp); err != nil {
		return "", err
	}
	if resp.Order.ID == "" {
		return "", fmt.Errorf("print provider returned no order id")
	}

	logger.Info("Order submitted to print provider",
		zap.String("orderID", order.ID),
		zap.String("providerRef", resp.Order.ID))
	return resp.Order.ID, nil
}

type printOrderStatusResponse struct {
	Order struct {
		ID     string `json:"id"`
		Status struct {
			Stage string `json:"stage"`
		} `json:"status"`
		Shipments []struct {
			TrackingURL string `json:"trackingUrl"`
		} `json:"shipments"`
	} `json:"order"`
}

// GetOrderStatus fetches the provider's current fulfillment stage for an
// order and maps it onto the storefront status lifecycle.
func (p *PrintClient) GetOrderStatus(ctx context.Context, providerRef string) (*model.OrderStatusUpdate, error) {
	var resp printOrderStatusResponse
	if err := p.get(ctx, "/orders/"+providerRef, &resp); err != nil {
		return nil, err
	}

	update := &model.OrderStatusUpdate{
		OrderID:   resp.Order.ID,
		Status:    mapProviderStage(resp.Order.Status.Stage),
		UpdatedAt: time.Now(),
	}
	if len(resp.Order.Shipments) > 0 {
		update.TrackingURL = resp.Order.Shipments[0].TrackingURL
	}
	return update, nil
}

func mapProviderStage(stage string) string {
	switch stage {
	case "InProgress":
		return model.OrderStatusInProduction
	case "Complete", "Shipped":
		return model.OrderStatusShipped
	case "Cancelled":
		return model.OrderStatusCancelled
	default:
		return model.OrderStatusSubmitted
	}
}

func (p *PrintClient) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", p.apiKey)

	return p.do(req, out)
}

func (p *PrintClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Key", p.apiKey)

	return p.do(req, out)
}

func (p *PrintClient) do(req *http.Request, out interface{}) error {
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("print provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("Print provider returned non-2xx status",
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("print provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode print provider response: %w", err)
	}
	return nil
}
