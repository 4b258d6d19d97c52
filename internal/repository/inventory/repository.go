package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/restaurant-inventory/internal/model"
	"github.com/you-humble/restaurant-inventory/platform/logger"
)

// Insertion order; _id breaks ties between items created in the same instant.
var listSort = bson.D{
	{Key: "createdAt", Value: 1},
	{Key: "_id", Value: 1},
}

type repository struct {
	coll *mongo.Collection
}

func NewInventoryRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Create(ctx context.Context, item *model.InventoryItem) error {
	const op = "repository.inventory.Create"

	if item == nil || item.ID == "" {
		return fmt.Errorf("%s: item id is empty", op)
	}

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(item)); err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	return nil
}

func (r *repository) ListBySupplier(ctx context.Context, supplier string) ([]*model.InventoryItem, error) {
	return r.list(ctx, "repository.inventory.ListBySupplier", bson.M{"supplier": supplier})
}

func (r *repository) ListAll(ctx context.Context) ([]*model.InventoryItem, error) {
	return r.list(ctx, "repository.inventory.ListAll", bson.M{})
}

func (r *repository) list(ctx context.Context, op string, filter bson.M) ([]*model.InventoryItem, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(listSort))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor",
				logger.String("op", op),
				logger.ErrorF(cerr),
			)
		}
	}()

	out := make([]*model.InventoryItem, 0)
	for cur.Next(ctx) {
		var ent InventoryItemEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w: %w", op, model.ErrStore, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w: %w", op, model.ErrStore, err)
	}

	return out, nil
}
