package kafka

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/teraseg/geoinsight/internal/config"
	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/logging"
	"github.com/teraseg/geoinsight/pkg/errors"
)

// writerInterface abstracts kafka.Writer for testing.
type writerInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes run events.  A disabled configuration yields a producer
// that silently drops events, so callers never need to branch on the setting.
type Producer struct {
	writer writerInterface
	topic  string
	log    logging.Logger
	closed atomic.Bool
}

// NewProducer builds a Producer from the run-event configuration.
func NewProducer(cfg config.KafkaConfig, log logging.Logger) *Producer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	log = log.Named("kafka")

	if !cfg.Enabled {
		return &Producer{log: log}
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	retries := cfg.ProducerRetries
	if retries <= 0 {
		retries = 3
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		MaxAttempts:  retries,
		BatchSize:    batchSize,
		BatchTimeout: 100 * time.Millisecond,
		WriteTimeout: timeout,
		RequiredAcks: kafka.RequireAll,
	}
	return &Producer{writer: writer, topic: cfg.Topic, log: log}
}

// newProducerWithWriter is used by tests to inject a fake writer.
func newProducerWithWriter(w writerInterface, log logging.Logger) *Producer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Producer{writer: w, log: log}
}

// Enabled reports whether events are actually published.
func (p *Producer) Enabled() bool {
	return p.writer != nil
}

// PublishRunCompleted emits a run-completed event keyed by domain, so events
// of one domain stay ordered within a partition.
func (p *Producer) PublishRunCompleted(ctx context.Context, event RunCompletedEvent) error {
	if p.writer == nil {
		return nil
	}
	if p.closed.Load() {
		return errors.New(errors.ErrCodeInternal, "event producer is closed")
	}

	event.Type = EventTypeRunCompleted
	if event.CompletedAt.IsZero() {
		event.CompletedAt = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "cannot encode run event")
	}

	msg := kafka.Message{
		Key:   []byte(event.Domain),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(EventTypeRunCompleted)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, errors.ErrCodeExternalService, "cannot publish run event").
			WithDetail(event.RunID)
	}

	p.log.Debug("run event published",
		logging.String("run_id", event.RunID),
		logging.String("domain", event.Domain))
	return nil
}

// Close flushes and shuts down the underlying writer.
func (p *Producer) Close() error {
	if p.writer == nil || !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := p.writer.Close(); err != nil {
		return errors.Wrap(err, errors.ErrCodeExternalService, "cannot close event producer")
	}
	return nil
}
