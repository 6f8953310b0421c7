package eventqueue

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProducer struct {
	partition int32
	offset    int64
	err       error
	block     chan struct{}
	calls     int
	closed    bool
	lastMsg   *sarama.ProducerMessage
}

func (s *stubProducer) SendMessage(msg *sarama.ProducerMessage) (int32, int64, error) {
	s.calls++
	s.lastMsg = msg
	if s.block != nil {
		<-s.block
	}
	return s.partition, s.offset, s.err
}

func (s *stubProducer) Close() error {
	s.closed = true
	return nil
}

func TestServicePublish(t *testing.T) {
	t.Run("Disabled gateway performs no I/O", func(t *testing.T) {
		service := NewDisabledService(zap.NewNop())

		outcome := service.Publish(context.Background(), "timeslot-1", []byte("{}"))

		assert.Equal(t, StateDisabled, outcome.State)
		assert.Equal(t, "publishing disabled", outcome.Reason)
		assert.False(t, outcome.Published())
		assert.False(t, service.Enabled())
	})

	t.Run("Acknowledged send maps to success with broker coordinates", func(t *testing.T) {
		producer := &stubProducer{partition: 3, offset: 128}
		service := &Service{producer: producer, topic: "appointments.created", log: zap.NewNop()}

		outcome := service.Publish(context.Background(), "timeslot-1", []byte(`{"event_id":"evt-1"}`))

		assert.Equal(t, StateSuccess, outcome.State)
		assert.True(t, outcome.Published())
		assert.Equal(t, "appointments.created", outcome.Topic)
		assert.Equal(t, int32(3), outcome.Partition)
		assert.Equal(t, int64(128), outcome.Offset)
		assert.True(t, service.Enabled())

		require.NotNil(t, producer.lastMsg)
		assert.Equal(t, "appointments.created", producer.lastMsg.Topic)
		key, err := producer.lastMsg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "timeslot-1", string(key))
	})

	t.Run("Producer error folds into failed outcome", func(t *testing.T) {
		producer := &stubProducer{err: errors.New("kafka: broker unreachable")}
		service := &Service{producer: producer, topic: "appointments.created", log: zap.NewNop()}

		outcome := service.Publish(context.Background(), "timeslot-1", []byte("{}"))

		assert.Equal(t, StateFailed, outcome.State)
		assert.False(t, outcome.Published())
		assert.Equal(t, "kafka: broker unreachable", outcome.Reason)
	})

	t.Run("Cancelled context abandons the in-flight send", func(t *testing.T) {
		producer := &stubProducer{block: make(chan struct{})}
		service := &Service{producer: producer, topic: "appointments.created", log: zap.NewNop()}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		outcome := service.Publish(ctx, "timeslot-1", []byte("{}"))
		close(producer.block)

		assert.Equal(t, StateFailed, outcome.State)
		assert.Contains(t, outcome.Reason, "publish abandoned")
	})

	t.Run("Close releases the producer once", func(t *testing.T) {
		producer := &stubProducer{}
		service := &Service{producer: producer, topic: "appointments.created", log: zap.NewNop()}

		require.NoError(t, service.Close())
		assert.True(t, producer.closed)
	})

	t.Run("Close on disabled gateway is a no-op", func(t *testing.T) {
		service := NewDisabledService(zap.NewNop())
		assert.NoError(t, service.Close())
	})
}

func TestOutcomeStateString(t *testing.T) {
	assert.Equal(t, "disabled", StateDisabled.String())
	assert.Equal(t, "success", StateSuccess.String())
	assert.Equal(t, "failed", StateFailed.String())
}
