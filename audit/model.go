// api/audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// Commerce audit actions.
const (
	ActionQuoteIssued        = "QUOTE_ISSUED"
	ActionOrderCreated       = "ORDER_CREATED"
	ActionOrderSubmitted     = "ORDER_SUBMITTED"
	ActionOrderStatusChanged = "ORDER_STATUS_CHANGED"
	ActionProductCreated     = "PRODUCT_CREATED"
	ActionProductUpdated     = "PRODUCT_UPDATED"
	ActionProductDeleted     = "PRODUCT_DELETED"
	ActionCollectionUpdated  = "COLLECTION_UPDATED"
)

type AuditLog struct {
	Timestamp     time.Time       `json:"timestamp"`
	UserID        string          `json:"user_id"`
	Action        string          `json:"action"`
	EntityType    string          `json:"entity_type"` // e.g. "order", "product", "quote"
	EntityID      string          `json:"entity_id"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}
