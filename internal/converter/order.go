package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/restaurant-inventory/internal/model"
	restaurantv1 "github.com/you-humble/restaurant-inventory/pkg/api/restaurant/v1"
)

func PurchaseOrderToAPI(o *model.PurchaseOrder) restaurantv1.PurchaseOrder {
	return restaurantv1.PurchaseOrder{
		ID:       o.ID,
		Supplier: o.Supplier,
		Items: lo.Map(o.Items, func(it model.PurchaseOrderItem, _ int) restaurantv1.PurchaseOrderItem {
			return restaurantv1.PurchaseOrderItem{
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
