package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/restaurant-inventory/internal/model"
	"github.com/you-humble/restaurant-inventory/platform/logger"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) error
	ListBySupplier(ctx context.Context, supplier string) ([]*model.InventoryItem, error)
	ListAll(ctx context.Context) ([]*model.InventoryItem, error)
}

type service struct {
	repo           InventoryRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewInventoryService(
	repo InventoryRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// CreateItem is not idempotent: every call stores a new document with a fresh id.
func (s *service) CreateItem(
	ctx context.Context,
	params model.CreateInventoryItemParams,
) (*model.InventoryItem, error) {
	const op = "inventory.service.CreateItem"

	item := &model.InventoryItem{
		ID:        uuid.NewString(),
		Name:      params.Name,
		Yield:     params.Yield,
		Unit:      params.Unit,
		Supplier:  params.Supplier,
		Cost:      params.Cost,
		Quantity:  params.Quantity,
		CreatedAt: lo.ToPtr(time.Now().UTC()),
	}
	log := logger.With(
		logger.String("item_id", item.ID),
		logger.String("supplier", item.Supplier),
	)

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Create(ctx, item); err != nil {
		log.Error(ctx, "repository create item", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (s *service) ListItems(
	ctx context.Context,
	filter model.InventoryFilter,
) ([]*model.InventoryItem, error) {
	const op = "inventory.service.ListItems"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	var (
		items []*model.InventoryItem
		err   error
	)
	if filter.Supplier != nil {
		items, err = s.repo.ListBySupplier(ctx, *filter.Supplier)
	} else {
		items, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		logger.Error(ctx, "repository list items",
			logger.Bool("by_supplier", filter.Supplier != nil),
			logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}
