// api/model/quote.go
package model

import (
	"time"
)

// QuoteRequest is the incoming pricing request for a SKU plus its
// customization attributes. Attribute casing, ordering and empty values are
// insignificant for matching; the quote service normalizes them before any
// cache lookup.
type QuoteRequest struct {
	SKU                string       `json:"sku" binding:"required"`
	Attributes         AttributeSet `json:"attributes,omitempty"`
	DestinationCountry string       `json:"destination_country,omitempty"`
	Copies             int          `json:"copies,omitempty"`
}

type Quote struct {
	SKU        string            `json:"sku"`
	Attributes map[string]string `json:"attributes,omitempty"` // normalized form
	Currency   string            `json:"currency"`

	ItemCost    float64          `json:"item_cost"`
	Shipping    []ShippingOption `json:"shipping,omitempty"`
	TaxEstimate float64          `json:"tax_estimate,omitempty"`
	TotalCost   float64          `json:"total_cost"`
	Copies      int              `json:"copies"`
	ProviderRef string           `json:"provider_ref,omitempty"`
	IssuedAt    time.Time        `json:"issued_at"`
	ExpiresAt   time.Time        `json:"expires_at,omitempty"`
	FromCache   bool             `json:"from_cache,omitempty"`
}

type ShippingOption struct {
	Method       string  `json:"method"` // e.g. "standard", "express"
	Cost         float64 `json:"cost"`
	Currency     string  `json:"currency"`
	EstimatedMin int     `json:"estimated_days_min,omitempty"`
	EstimatedMax int     `json:"estimated_days_max,omitempty"`
}
