package repository

import (
	"github.com/samber/lo"

	"github.com/you-humble/restaurant-inventory/internal/model"
)

func EntityToModel(e *PurchaseOrderEntity) *model.PurchaseOrder {
	if e == nil {
		return nil
	}

	return &model.PurchaseOrder{
		ID:       e.ID,
		Supplier: e.Supplier,
		Items: lo.Map(e.Items, func(it PurchaseOrderItemEntity, _ int) model.PurchaseOrderItem {
			return model.PurchaseOrderItem{
				Name:     it.Name,
				Yield:    it.Yield,
				Unit:     it.Unit,
				Cost:     it.Cost,
				Quantity: it.Quantity,
			}
		}),
		TotalCost: e.TotalCost,
		CreatedAt: e.CreatedAt,
	}
}

func EntityFromModel(o *model.PurchaseOrder) *PurchaseOrderEntity {
	if o == nil {
		return nil
	}

	return &PurchaseOrderEntity{
		ID:       o.ID,
		Supplier: o.Supplier,
		Items: lo.Map(o.Items, func(it model.PurchaseOrderItem, _ int) PurchaseOrderItemEntity {
			return PurchaseOrderItemEntity{
				Name:     it.Name,
				Yield:    it.Yield,
				Unit:     it.Unit,
				Cost:     it.Cost,
				Quantity: it.Quantity,
			}
		}),
		TotalCost: o.TotalCost,
		CreatedAt: o.CreatedAt,
	}
}
