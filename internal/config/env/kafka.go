package envconfig

import (
	"errors"
	"strings"

	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
	"github.com/samber/lo"
)

var errNoBrokers = errors.New("KAFKA_ENABLED is set but KAFKA_BROKERS is empty")

type kafkaEnv struct {
	Enabled                       bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers                       []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`
	PurchaseOrderCreatedTopicName string   `env:"PURCHASE_ORDER_CREATED_TOPIC_NAME" envDefault:"purchase-order.created"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	raw.Brokers = lo.Compact(lo.Map(raw.Brokers, func(b string, _ int) string {
		return strings.TrimSpace(b)
	}))
	if raw.Enabled && len(raw.Brokers) == 0 {
		return nil, errNoBrokers
	}

	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool                     { return cfg.raw.Enabled }
func (cfg *kafka) Brokers() []string                 { return cfg.raw.Brokers }
func (cfg *kafka) PurchaseOrderCreatedTopic() string { return cfg.raw.PurchaseOrderCreatedTopicName }

func (cfg *kafka) PurchaseOrderCreatedProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}
