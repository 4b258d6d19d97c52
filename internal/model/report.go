package model

type CostPerUnitEntry struct {
	Name string
	Unit string
	// Nil when the item's yield is zero.
	CostPerUnit *float64
}
