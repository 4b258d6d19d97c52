package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/restaurant-inventory/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewPurchaseOrderRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Create(ctx context.Context, order *model.PurchaseOrder) error {
	const op = "repository.order.Create"

	if order == nil || order.ID == "" {
		return fmt.Errorf("%s: order id is empty", op)
	}

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(order)); err != nil {
		return fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	return nil
}

func (r *repository) OrderByID(ctx context.Context, id string) (*model.PurchaseOrder, error) {
	const op = "repository.order.OrderByID"

	var ent PurchaseOrderEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrPurchaseOrderNotFound
		}
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
	}

	return EntityToModel(&ent), nil
}
