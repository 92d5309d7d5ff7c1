package events

import (
	"encoding/json"
	"time"
)

const (
	EventOrderCreated = "OrderCreated"
)

const (
	TopicOrderCreated = "orderdesk.order.created"
)

// Envelope wraps every published event with routing metadata.
type Envelope struct {
	EventID       string          `json:"event_id"` // uuid
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`   // RFC3339
	Producer      string          `json:"producer"`      // e.g. "orderdesk-api"
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type OrderItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type OrderCreatedPayload struct {
	OrderID      string             `json:"order_id"`
	CustomerName string             `json:"customer_name"`
	Items        []OrderItemPayload `json:"items"`
	Total        string             `json:"total"`
	Currency     string             `json:"currency"`
}

// PartitionKey keys messages by order id so all events of one order keep
// their relative order.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
