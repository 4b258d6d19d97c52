package model

import "time"

type InventoryItem struct {
	// Unique identifier of the item.
	ID string
	// Item name.
	Name string
	// Usable quantity obtained per purchased unit.
	Yield float64
	// Unit label, e.g. "kg" or "case".
	Unit string
	// Supplier name; matched by value, not by reference.
	Supplier string
	// Cost per purchased unit.
	Cost float64
	// Quantity on hand or ordered.
	Quantity float64
	// Timestamp when the item was created.
	CreatedAt *time.Time
}

type CreateInventoryItemParams struct {
	Name     string
	Yield    float64
	Unit     string
	Supplier string
	Cost     float64
	Quantity float64
}

type InventoryFilter struct {
	// Nil means every supplier.
	Supplier *string
}
