package eventqueue

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// OutcomeState tags the result of one publish attempt.
type OutcomeState int

const (
	StateDisabled OutcomeState = iota
	StateSuccess
	StateFailed
)

func (s OutcomeState) String() string {
	switch s {
	case StateDisabled:
		return "disabled"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome is what a publish attempt resolved to. Topic, Partition and Offset
// are set only on success; Reason only on disabled/failed. Callers surface
// nothing from here except the published boolean.
type Outcome struct {
	State     OutcomeState
	Topic     string
	Partition int32
	Offset    int64
	Reason    string
}

// Published reports whether this specific attempt was acknowledged.
func (o Outcome) Published() bool {
	return o.State == StateSuccess
}

// syncProducer is the slice of sarama.SyncProducer the gateway needs.
type syncProducer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
	Close() error
}

// Service wraps the broker producer behind a publish policy: when disabled
// it performs no I/O, and it never lets a producer error escape as an error.
// The underlying producer is the one shared long-lived resource; its
// concurrency safety is sarama's contract, not re-implemented here.
type Service struct {
	producer syncProducer
	topic    string
	log      *zap.Logger
}

// NewService builds an enabled gateway around an already-connected producer.
func NewService(producer sarama.SyncProducer, topic string, log *zap.Logger) *Service {
	return &Service{
		producer: producer,
		topic:    topic,
		log:      log,
	}
}

// NewDisabledService builds a gateway that short-circuits every publish.
func NewDisabledService(log *zap.Logger) *Service {
	return &Service{log: log}
}

// Enabled reports whether publishing is configured on for this deployment.
func (s *Service) Enabled() bool {
	return s.producer != nil
}

// Publish sends one serialized event to the configured topic and folds the
// result into an Outcome. The send itself has no timeout of its own; if ctx
// is cancelled first, the attempt is abandoned as failed/indeterminate and
// the in-flight send resolves in the background, its result discarded.
// Never retries, never panics past this boundary.
func (s *Service) Publish(ctx context.Context, key string, payload []byte) Outcome {
	if s.producer == nil {
		return Outcome{State: StateDisabled, Reason: "publishing disabled"}
	}

	message := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}

	type sendResult struct {
		partition int32
		offset    int64
		err       error
	}
	resultChan := make(chan sendResult, 1)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				resultChan <- sendResult{err: fmt.Errorf("producer panic: %v", rec)}
			}
		}()
		partition, offset, err := s.producer.SendMessage(message)
		resultChan <- sendResult{partition: partition, offset: offset, err: err}
	}()

	select {
	case <-ctx.Done():
		return Outcome{State: StateFailed, Reason: fmt.Sprintf("publish abandoned: %v", ctx.Err())}
	case result := <-resultChan:
		if result.err != nil {
			return Outcome{State: StateFailed, Reason: result.err.Error()}
		}
		return Outcome{
			State:     StateSuccess,
			Topic:     s.topic,
			Partition: result.partition,
			Offset:    result.offset,
		}
	}
}

// Close flushes and releases the producer connection. Safe to call on a
// disabled gateway.
func (s *Service) Close() error {
	if s.producer == nil {
		return nil
	}
	return s.producer.Close()
}
