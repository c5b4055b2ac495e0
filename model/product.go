// api/model/product.go
package model

import (
	"time"
)

// AttributeSet holds the customization choices for a product (e.g. size,
// material, finish). Values arrive as arbitrary JSON scalars from checkout
// forms and are stringified during normalization.
type AttributeSet map[string]interface{}

type Product struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	BasePrice   float64 `json:"base_price"`
	Currency    string  `json:"currency"` // ISO 4217, e.g. "USD"
	Status      string  `json:"status"`   // e.g. "active", "archived"

	// Attribute definitions declare which customization keys the product
	// accepts and the values each key allows.
	AttributeDefinitions []AttributeDefinition `json:"attribute_definitions,omitempty"`

	CollectionIDs []string          `json:"collection_ids,omitempty"`
	Tags          []string          `json:"tags,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

type AttributeDefinition struct {
	Name          string   `json:"name"`
	AllowedValues []string `json:"allowed_values,omitempty"`
	Required      bool     `json:"required,omitempty"`
}

// ProductSearchCriteria carries the filters for catalog search.
type ProductSearchCriteria struct {
	Query        string   `json:"query,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	CollectionID string   `json:"collection_id,omitempty"`
	Status       string   `json:"status,omitempty"`
}
