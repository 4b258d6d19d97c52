package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	InventoryCollection() string
	PurchaseOrdersCollection() string
	DSN() string
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	PurchaseOrderCreatedTopic() string
	PurchaseOrderCreatedProducerConfig() *sarama.Config
}
