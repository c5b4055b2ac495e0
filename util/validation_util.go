// api/util/validation_util.go

package util

import (
	"fmt"

	"github.com/muralehq/murale/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateProduct(product model.Product) error {
	if product.SKU == "" {
		return fmt.Errorf("product SKU cannot be empty")
	}
	if product.Name == "" {
		return fmt.Errorf("product name cannot be empty")
	}
	if product.BasePrice < 0 {
		return fmt.Errorf("product base price cannot be negative")
	}
	if product.Currency == "" {
		return fmt.Errorf("product currency cannot be empty")
	}
	for _, def := range product.AttributeDefinitions {
		if def.Name == "" {
			return fmt.Errorf("attribute definition name cannot be empty")
		}
	}
	// Add more validation rules as needed
	return nil
}

func (v *ValidationUtil) ValidateQuoteRequest(req model.QuoteRequest) error {
	if req.SKU == "" {
		return fmt.Errorf("quote request SKU cannot be empty")
	}
	if req.Copies < 0 {
		return fmt.Errorf("quote request copies cannot be negative")
	}
	// Add more validation rules as needed
	return nil
}

func (v *ValidationUtil) ValidateOrder(order model.Order) error {
	if len(order.Items) == 0 {
		return fmt.Errorf("order must have at least one item")
	}
	for _, item := range order.Items {
		if item.SKU == "" {
			return fmt.Errorf("order item SKU cannot be empty")
		}
		if item.ImageURL == "" {
			return fmt.Errorf("order item image URL cannot be empty")
		}
	}
	if order.Recipient.Name == "" {
		return fmt.Errorf("order recipient name cannot be empty")
	}
	if order.Recipient.AddressLine == "" {
		return fmt.Errorf("order recipient address cannot be empty")
	}
	if order.Recipient.CountryCode == "" {
		return fmt.Errorf("order recipient country code cannot be empty")
	}
	// Add more validation rules as needed
	return nil
}

func (v *ValidationUtil) ValidateCollection(collection model.Collection) error {
	if collection.Name == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	// Add more validation rules as needed
	return nil
}

func (v *ValidationUtil) ValidateRoomScene(scene model.RoomScene) error {
	if scene.BaseImageURL == "" {
		return fmt.Errorf("room scene base image URL cannot be empty")
	}
	if len(scene.Segments) == 0 && scene.WallColorHex == "" {
		return fmt.Errorf("room scene must have at least one wall segment or a wall color")
	}
	// Add more validation rules as needed
	return nil
}
