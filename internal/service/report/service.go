package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/restaurant-inventory/internal/model"
	"github.com/you-humble/restaurant-inventory/platform/logger"
)

type InventoryRepository interface {
	ListAll(ctx context.Context) ([]*model.InventoryItem, error)
}

type service struct {
	repo          InventoryRepository
	readDBTimeout time.Duration
}

func NewReportService(repo InventoryRepository, readDBTimeout time.Duration) *service {
	return &service{repo: repo, readDBTimeout: readDBTimeout}
}

// CostPerUnit returns one entry per inventory item, in store order.
func (s *service) CostPerUnit(ctx context.Context) ([]model.CostPerUnitEntry, error) {
	const op = "report.service.CostPerUnit"

	rdbCtx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	items, err := s.repo.ListAll(rdbCtx)
	if err != nil {
		logger.Error(ctx, "repository list all items", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lo.Map(items, func(it *model.InventoryItem, _ int) model.CostPerUnitEntry {
		cpu := costPerUnit(it.Cost, it.Yield)
		if cpu == nil {
			logger.Debug(ctx, "cost per unit undefined",
				logger.String("item_id", it.ID),
				logger.String("name", it.Name),
			)
		}
		return model.CostPerUnitEntry{
			Name:        it.Name,
			Unit:        it.Unit,
			CostPerUnit: cpu,
		}
	}), nil
}

// costPerUnit is nil when yield is zero or the quotient overflows.
func costPerUnit(cost, yield float64) *float64 {
	if yield == 0 {
		return nil
	}
	v := cost / yield
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return lo.ToPtr(v)
}
