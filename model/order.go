// api/model/order.go
package model

import (
	"time"
)

// Order statuses follow the fulfillment lifecycle reported by the print
// provider.
const (
	OrderStatusCreated      = "created"
	OrderStatusSubmitted    = "submitted"
	OrderStatusInProduction = "in_production"
	OrderStatusShipped      = "shipped"
	OrderStatusCancelled    = "cancelled"
)

type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Items       []OrderItem `json:"items" binding:"required"`
	Recipient   Recipient   `json:"recipient" binding:"required"`
	Status      string      `json:"status"`
	Currency    string      `json:"currency"`
	TotalCost   float64     `json:"total_cost"`
	ProviderRef string      `json:"provider_ref,omitempty"` // print provider order id

	ShippingMethod string `json:"shipping_method,omitempty"`
	TrackingURL    string `json:"tracking_url,omitempty"`

	CreatedAt   time.Time  `json:"created_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

type OrderItem struct {
	SKU        string       `json:"sku" binding:"required"`
	Attributes AttributeSet `json:"attributes,omitempty"`
	ImageURL   string       `json:"image_url" binding:"required"`
	Copies     int          `json:"copies"`
	UnitCost   float64      `json:"unit_cost,omitempty"`
}

// Recipient carries the shipping destination. It is treated as PII: cached
// order payloads are encrypted at rest in redis.
type Recipient struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email,omitempty"`
	AddressLine string `json:"address_line" binding:"required"`
	City        string `json:"city" binding:"required"`
	PostalCode  string `json:"postal_code"`
	CountryCode string `json:"country_code" binding:"required"`
}

// OrderStatusUpdate is the provider-reported status snapshot for an order.
type OrderStatusUpdate struct {
	OrderID     string    `json:"order_id"`
	Status      string    `json:"status"`
	TrackingURL string    `json:"tracking_url,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}
