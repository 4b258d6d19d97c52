package repository

import "time"

type PurchaseOrderEntity struct {
	ID        string                    `bson:"_id"`
	Supplier  string                    `bson:"supplier"`
	Items     []PurchaseOrderItemEntity `bson:"items"`
	TotalCost float64                   `bson:"totalCost"`
	CreatedAt *time.Time                `bson:"createdAt,omitempty"`
}

type PurchaseOrderItemEntity struct {
	Name     string  `bson:"name"`
	Yield    float64 `bson:"yield"`
	Unit     string  `bson:"unit"`
	Cost     float64 `bson:"cost"`
	Quantity float64 `bson:"quantity"`
}
