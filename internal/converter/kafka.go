package converter

import (
	"encoding/json"
	"fmt"

	"github.com/you-humble/restaurant-inventory/internal/model"
	restaurantv1 "github.com/you-humble/restaurant-inventory/pkg/api/restaurant/v1"
)

type eventConverter struct{}

func NewEventConverter() *eventConverter { return &eventConverter{} }

func (c *eventConverter) PurchaseOrderCreatedToPayload(m model.PurchaseOrderCreated) ([]byte, error) {
	payload, err := json.Marshal(restaurantv1.PurchaseOrderCreatedEvent{
		EventID:    m.EventID.String(),
		OrderID:    m.OrderID,
		Supplier:   m.Supplier,
		ItemsCount: m.ItemsCount,
		TotalCost:  m.TotalCost,
		CreatedAt:  m.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal purchase order created event: %w", err)
	}

	return payload, nil
}
