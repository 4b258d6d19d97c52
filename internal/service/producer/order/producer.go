package ordproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/restaurant-inventory/internal/model"
	"github.com/you-humble/restaurant-inventory/platform/kafka"
)

const contentTypeJSON = "application/json"

type Converter interface {
	PurchaseOrderCreatedToPayload(event model.PurchaseOrderCreated) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewOrderProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// SendPurchaseOrderCreated keys the message by order id so events of one order stay in one partition.
func (s *service) SendPurchaseOrderCreated(ctx context.Context, event model.PurchaseOrderCreated) error {
	payload, err := s.conv.PurchaseOrderCreatedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter purchase_order_created_to_payload error: %w", err)
	}

	headers := map[string]string{
		"content-type": contentTypeJSON,
		"event-id":     event.EventID.String(),
	}
	if err := s.producer.Send(ctx, []byte(event.OrderID), payload, headers); err != nil {
		return fmt.Errorf("producer to purchase-order.created topic error: %w", err)
	}

	return nil
}

type noopSender struct{}

// NewNoopSender drops events. Used when Kafka is disabled.
func NewNoopSender() noopSender { return noopSender{} }

func (noopSender) SendPurchaseOrderCreated(context.Context, model.PurchaseOrderCreated) error {
	return nil
}
