package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/restaurant-inventory/internal/model"
	"github.com/you-humble/restaurant-inventory/platform/logger"
)

type InventoryRepository interface {
	ListBySupplier(ctx context.Context, supplier string) ([]*model.InventoryItem, error)
}

type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *model.PurchaseOrder) error
	OrderByID(ctx context.Context, id string) (*model.PurchaseOrder, error)
}

type OrderCreatedSender interface {
	SendPurchaseOrderCreated(ctx context.Context, event model.PurchaseOrderCreated) error
}

type service struct {
	inventory      InventoryRepository
	orders         PurchaseOrderRepository
	sender         OrderCreatedSender
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewPurchaseOrderService(
	inventory InventoryRepository,
	orders PurchaseOrderRepository,
	sender OrderCreatedSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		inventory:      inventory,
		orders:         orders,
		sender:         sender,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Create snapshots the supplier's current inventory into a new purchase order.
// The read and the write are not isolated from concurrent inventory changes.
func (svc *service) Create(ctx context.Context, supplier string) (*model.PurchaseOrder, error) {
	const op string = "order.service.Create"
	log := logger.With(
		logger.String("supplier", supplier),
	)

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	inv, err := svc.inventory.ListBySupplier(rdbCtx, supplier)
	if err != nil {
		log.Error(ctx, "repository list items by supplier", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := lo.Map(inv, func(it *model.InventoryItem, _ int) model.PurchaseOrderItem {
		return model.PurchaseOrderItem{
			Name:     it.Name,
			Yield:    it.Yield,
			Unit:     it.Unit,
			Cost:     it.Cost,
			Quantity: it.Quantity,
		}
	})

	order := &model.PurchaseOrder{
		ID:       uuid.NewString(),
		Supplier: supplier,
		Items:    items,
		TotalCost: lo.SumBy(items, func(it model.PurchaseOrderItem) float64 {
			return it.Cost * it.Quantity
		}),
		CreatedAt: lo.ToPtr(time.Now().UTC()),
	}
	log = log.With(
		logger.String("order_id", order.ID),
		logger.Int("items_count", len(items)),
	)

	if math.IsInf(order.TotalCost, 0) || math.IsNaN(order.TotalCost) {
		log.Error(ctx, "total cost overflows", logger.Float64("total_cost", order.TotalCost))
		return nil, fmt.Errorf("%s: %w", op, model.ErrTotalCostOverflow)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.orders.Create(wdbCtx, order); err != nil {
		log.Error(ctx, "repository create purchase order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if svc.sender != nil {
		event := model.PurchaseOrderCreated{
			EventID:    uuid.New(),
			OrderID:    order.ID,
			Supplier:   order.Supplier,
			ItemsCount: len(order.Items),
			TotalCost:  order.TotalCost,
			CreatedAt:  *order.CreatedAt,
		}
		// The order is already stored; a lost event must not fail the request.
		if err := svc.sender.SendPurchaseOrderCreated(ctx, event); err != nil {
			log.Warn(ctx, "send purchase order created event", logger.ErrorF(err))
		}
	}

	return order, nil
}

func (svc *service) OrderByID(ctx context.Context, id string) (*model.PurchaseOrder, error) {
	const op string = "order.service.OrderByID"
	log := logger.With(
		logger.String("order_id", id),
	)

	id = strings.TrimSpace(id)
	if id == "" {
		log.Error(ctx, "validation: empty order id")
		return nil, errors.Join(model.ErrValidation, errors.New("order id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	order, err := svc.orders.OrderByID(ctx, id)
	if err != nil {
		log.Error(ctx, "repository order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return order, nil
}
