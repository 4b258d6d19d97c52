package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/you-humble/restaurant-inventory/internal/config"
	"github.com/you-humble/restaurant-inventory/internal/converter"
	invrepo "github.com/you-humble/restaurant-inventory/internal/repository/inventory"
	ordrepo "github.com/you-humble/restaurant-inventory/internal/repository/order"
	invservice "github.com/you-humble/restaurant-inventory/internal/service/inventory"
	ordservice "github.com/you-humble/restaurant-inventory/internal/service/order"
	ordproducer "github.com/you-humble/restaurant-inventory/internal/service/producer/order"
	rptservice "github.com/you-humble/restaurant-inventory/internal/service/report"
	"github.com/you-humble/restaurant-inventory/internal/transport/http/health"
	thttp "github.com/you-humble/restaurant-inventory/internal/transport/http/restaurant/v1"
	"github.com/you-humble/restaurant-inventory/platform/closer"
	"github.com/you-humble/restaurant-inventory/platform/kafka"
	"github.com/you-humble/restaurant-inventory/platform/kafka/producer"
	"github.com/you-humble/restaurant-inventory/platform/logger"
)

type Handler interface {
	Register(r chi.Router)
}

type di struct {
	mongo               *mongo.Client
	inventoryCollection *mongo.Collection
	ordersCollection    *mongo.Collection

	inventoryRepository invservice.InventoryRepository
	ordersRepository    ordservice.PurchaseOrderRepository

	syncProducer         sarama.SyncProducer
	orderCreatedProducer kafka.Producer
	orderCreatedSender   ordservice.OrderCreatedSender

	inventoryService thttp.InventoryService
	ordersService    thttp.PurchaseOrderService
	reportService    thttp.ReportService

	handler Handler
	router  *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		// ObjectIDAsHexString keeps documents with ObjectId _id readable into string ids.
		mongoClient, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.Mongo.DSN()).
				SetBSONOptions(&options.BSONOptions{ObjectIDAsHexString: true}),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) InventoryCollection(ctx context.Context) *mongo.Collection {
	if d.inventoryCollection == nil {
		d.inventoryCollection = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.InventoryCollection())

		if err := ensureInventoryIndexes(ctx, d.inventoryCollection); err != nil {
			panic(fmt.Sprintf("failed to ensure inventory indexes: %v\n", err))
		}
	}

	return d.inventoryCollection
}

func (d *di) PurchaseOrdersCollection(ctx context.Context) *mongo.Collection {
	if d.ordersCollection == nil {
		d.ordersCollection = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.PurchaseOrdersCollection())
	}

	return d.ordersCollection
}

func (d *di) InventoryRepository(ctx context.Context) invservice.InventoryRepository {
	if d.inventoryRepository == nil {
		d.inventoryRepository = invrepo.NewInventoryRepository(d.InventoryCollection(ctx))
	}

	return d.inventoryRepository
}

func (d *di) PurchaseOrderRepository(ctx context.Context) ordservice.PurchaseOrderRepository {
	if d.ordersRepository == nil {
		d.ordersRepository = ordrepo.NewPurchaseOrderRepository(d.PurchaseOrdersCollection(ctx))
	}

	return d.ordersRepository
}

func (d *di) SyncProducer(ctx context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.PurchaseOrderCreatedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) OrderCreatedProducer(ctx context.Context) kafka.Producer {
	if d.orderCreatedProducer == nil {
		d.orderCreatedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.PurchaseOrderCreatedTopic(),
			logger.L(),
		)
	}

	return d.orderCreatedProducer
}

func (d *di) OrderCreatedSender(ctx context.Context) ordservice.OrderCreatedSender {
	if d.orderCreatedSender == nil {
		if !config.C().Kafka.Enabled() {
			logger.Info(ctx, "kafka disabled, purchase order events are dropped")
			d.orderCreatedSender = ordproducer.NewNoopSender()
			return d.orderCreatedSender
		}

		d.orderCreatedSender = ordproducer.NewOrderProducer(
			d.OrderCreatedProducer(ctx),
			converter.NewEventConverter(),
		)
	}

	return d.orderCreatedSender
}

func (d *di) InventoryService(ctx context.Context) thttp.InventoryService {
	if d.inventoryService == nil {
		d.inventoryService = invservice.NewInventoryService(
			d.InventoryRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.inventoryService
}

func (d *di) PurchaseOrderService(ctx context.Context) thttp.PurchaseOrderService {
	if d.ordersService == nil {
		d.ordersService = ordservice.NewPurchaseOrderService(
			d.InventoryRepository(ctx),
			d.PurchaseOrderRepository(ctx),
			d.OrderCreatedSender(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.ordersService
}

func (d *di) ReportService(ctx context.Context) thttp.ReportService {
	if d.reportService == nil {
		d.reportService = rptservice.NewReportService(
			d.InventoryRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.reportService
}

func (d *di) RestaurantHandler(ctx context.Context) Handler {
	if d.handler == nil {
		d.handler = thttp.NewRestaurantHandler(
			d.InventoryService(ctx),
			d.PurchaseOrderService(ctx),
			d.ReportService(ctx),
		)
	}

	return d.handler
}

func (d *di) StorePing(ctx context.Context) health.PingFunc {
	client := d.MongoDB(ctx)
	return func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

// ensureInventoryIndexes backs the supplier lookup and the creation-order sort.
func ensureInventoryIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "supplier", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
	}, options.CreateIndexes())

	return err
}
