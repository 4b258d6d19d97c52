package repository

import (
	"github.com/you-humble/restaurant-inventory/internal/model"
)

func EntityToModel(e *InventoryItemEntity) *model.InventoryItem {
	if e == nil {
		return nil
	}

	return &model.InventoryItem{
		ID:        e.ID,
		Name:      e.Name,
		Yield:     e.Yield,
		Unit:      e.Unit,
		Supplier:  e.Supplier,
		Cost:      e.Cost,
		Quantity:  e.Quantity,
		CreatedAt: e.CreatedAt,
	}
}

func EntityFromModel(item *model.InventoryItem) *InventoryItemEntity {
	if item == nil {
		return nil
	}

	return &InventoryItemEntity{
		ID:        item.ID,
		Name:      item.Name,
		Yield:     item.Yield,
		Unit:      item.Unit,
		Supplier:  item.Supplier,
		Cost:      item.Cost,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
	}
}
