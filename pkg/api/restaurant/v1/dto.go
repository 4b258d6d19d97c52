// Package restaurantv1 holds the wire shapes of the restaurant HTTP API.
package restaurantv1

import "time"

// CreateInventoryItemForm is the urlencoded body of POST /inventory.
// Numeric fields stay strings until validated.
type CreateInventoryItemForm struct {
	Name     string
	Yield    string `validate:"omitempty,numeric"`
	Unit     string
	Supplier string
	Cost     string `validate:"omitempty,numeric"`
	Quantity string `validate:"omitempty,numeric"`
}

// CreatePurchaseOrderForm is the urlencoded body of POST /purchase-orders.
type CreatePurchaseOrderForm struct {
	Supplier string
}

type InventoryItem struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Yield     float64    `json:"yield"`
	Unit      string     `json:"unit"`
	Supplier  string     `json:"supplier"`
	Cost      float64    `json:"cost"`
	Quantity  float64    `json:"quantity"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type PurchaseOrderItem struct {
	Name     string  `json:"name"`
	Yield    float64 `json:"yield"`
	Unit     string  `json:"unit"`
	Cost     float64 `json:"cost"`
	Quantity float64 `json:"quantity"`
}

type PurchaseOrder struct {
	ID        string              `json:"_id"`
	Supplier  string              `json:"supplier"`
	Items     []PurchaseOrderItem `json:"items"`
	TotalCost float64             `json:"totalCost"`
	CreatedAt *time.Time          `json:"createdAt,omitempty"`
}

// CostPerUnitEntry has a null costPerUnit when the item's yield is zero.
type CostPerUnitEntry struct {
	Name        string   `json:"name"`
	Unit        string   `json:"unit"`
	CostPerUnit *float64 `json:"costPerUnit"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PurchaseOrderCreatedEvent is the value of a purchase-order.created message.
type PurchaseOrderCreatedEvent struct {
	EventID    string    `json:"eventId"`
	OrderID    string    `json:"orderId"`
	Supplier   string    `json:"supplier"`
	ItemsCount int       `json:"itemsCount"`
	TotalCost  float64   `json:"totalCost"`
	CreatedAt  time.Time `json:"createdAt"`
}
