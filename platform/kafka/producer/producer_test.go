package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/restaurant-inventory/platform/logger"
)

func TestProducerSend(t *testing.T) {
	t.Parallel()

	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "purchase-order.created" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "order-1" {
			return errors.New("unexpected key " + string(key))
		}
		if len(msg.Headers) != 1 || string(msg.Headers[0].Key) != "content-type" {
			return errors.New("missing content-type header")
		}
		return nil
	})

	p := NewProducer(sp, "purchase-order.created", logger.NoopLogger{})

	err := p.Send(context.Background(), []byte("order-1"), []byte(`{}`), map[string]string{
		"content-type": "application/json",
	})
	require.NoError(t, err)
	require.NoError(t, sp.Close())
}

func TestProducerSendFailure(t *testing.T) {
	t.Parallel()

	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewProducer(sp, "purchase-order.created", logger.NoopLogger{})

	err := p.Send(context.Background(), []byte("order-1"), []byte(`{}`), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	assert.ErrorContains(t, err, "purchase-order.created")
	require.NoError(t, sp.Close())
}
