package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseOrderItem is a value copy of an inventory item taken when the order was built.
type PurchaseOrderItem struct {
	Name     string
	Yield    float64
	Unit     string
	Cost     float64
	Quantity float64
}

type PurchaseOrder struct {
	// Unique identifier of the order.
	ID string
	// Supplier the order was generated for.
	Supplier string
	// Snapshot of the supplier's inventory items.
	Items []PurchaseOrderItem
	// Sum of cost * quantity over Items.
	TotalCost float64
	// Timestamp when the order was created.
	CreatedAt *time.Time
}

type PurchaseOrderCreated struct {
	EventID    uuid.UUID
	OrderID    string
	Supplier   string
	ItemsCount int
	TotalCost  float64
	CreatedAt  time.Time
}
