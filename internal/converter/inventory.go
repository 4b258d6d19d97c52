package converter

import (
	"fmt"
	"math"
	"strconv"

	"github.com/samber/lo"

	"github.com/you-humble/restaurant-inventory/internal/model"
	restaurantv1 "github.com/you-humble/restaurant-inventory/pkg/api/restaurant/v1"
)

// FormToCreateInventoryItemParams coerces the numeric form fields. An absent
// field becomes 0, anything that is not a finite number is a validation error.
func FormToCreateInventoryItemParams(form restaurantv1.CreateInventoryItemForm) (model.CreateInventoryItemParams, error) {
	yield, err := parseNumber("yield", form.Yield)
	if err != nil {
		return model.CreateInventoryItemParams{}, err
	}
	cost, err := parseNumber("cost", form.Cost)
	if err != nil {
		return model.CreateInventoryItemParams{}, err
	}
	quantity, err := parseNumber("quantity", form.Quantity)
	if err != nil {
		return model.CreateInventoryItemParams{}, err
	}

	return model.CreateInventoryItemParams{
		Name:     form.Name,
		Yield:    yield,
		Unit:     form.Unit,
		Supplier: form.Supplier,
		Cost:     cost,
		Quantity: quantity,
	}, nil
}

func parseNumber(field, raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be a finite number, got %q", model.ErrValidation, field, raw)
	}
	return v, nil
}

func InventoryItemToAPI(it *model.InventoryItem) restaurantv1.InventoryItem {
	return restaurantv1.InventoryItem{
		ID:        it.ID,
		Name:      it.Name,
		Yield:     it.Yield,
		Unit:      it.Unit,
		Supplier:  it.Supplier,
		Cost:      it.Cost,
		Quantity:  it.Quantity,
		CreatedAt: it.CreatedAt,
	}
}

func InventoryItemsToAPI(items []*model.InventoryItem) []restaurantv1.InventoryItem {
	return lo.Map(items, func(it *model.InventoryItem, _ int) restaurantv1.InventoryItem {
		return InventoryItemToAPI(it)
	})
}

func CostPerUnitToAPI(entries []model.CostPerUnitEntry) []restaurantv1.CostPerUnitEntry {
	return lo.Map(entries, func(e model.CostPerUnitEntry, _ int) restaurantv1.CostPerUnitEntry {
		return restaurantv1.CostPerUnitEntry{
			Name:        e.Name,
			Unit:        e.Unit,
			CostPerUnit: e.CostPerUnit,
		}
	})
}
