package repository

import "time"

type InventoryItemEntity struct {
	ID        string     `bson:"_id"`
	Name      string     `bson:"name"`
	Yield     float64    `bson:"yield"`
	Unit      string     `bson:"unit"`
	Supplier  string     `bson:"supplier"`
	Cost      float64    `bson:"cost"`
	Quantity  float64    `bson:"quantity"`
	CreatedAt *time.Time `bson:"createdAt,omitempty"`
}
