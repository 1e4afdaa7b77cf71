package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"travel-broker/internal/domain/notification"
	"travel-broker/internal/pkg/config"
	"travel-broker/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSender publishes one message per request, keyed by recipient address so
// messages to the same inbox keep their order.
type KafkaSender struct {
	writer MessageWriter
	logger *slog.Logger
}

func NewKafkaWriter(cfg config.NotifyConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}
}

func NewKafkaSender(writer MessageWriter, logger *slog.Logger) *KafkaSender {
	return &KafkaSender{writer: writer, logger: logger}
}

func (s *KafkaSender) SendAll(ctx context.Context, reqs []notification.Request) ([]notification.DeliveryResult, error) {
	if len(reqs) == 0 {
		return nil, nil
	}

	msgs := make([]kafka.Message, 0, len(reqs))
	for _, r := range reqs {
		value, err := json.Marshal(newOutboundMessage(r))
		if err != nil {
			return nil, errs.Wrap(err, "encode notification")
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(r.DedupKey()),
			Value: value,
			Headers: []kafka.Header{
				{Key: "template_key", Value: []byte(r.TemplateKey)},
			},
		})
	}

	results := make([]notification.DeliveryResult, len(reqs))
	for i, r := range reqs {
		results[i] = notification.DeliveryResult{Request: r, Delivered: true}
	}

	err := s.writer.WriteMessages(ctx, msgs...)
	if err == nil {
		return results, nil
	}

	var writeErrs kafka.WriteErrors
	if errors.As(err, &writeErrs) && len(writeErrs) == len(reqs) {
		failed := 0
		for i, werr := range writeErrs {
			if werr != nil {
				results[i].Delivered = false
				results[i].Err = werr
				failed++
			}
		}
		s.logger.WarnContext(ctx, "partial notification delivery",
			slog.Int("requested", len(reqs)),
			slog.Int("failed", failed))
		if failed == len(reqs) {
			return results, errs.Wrap(err, "write notifications")
		}
		return results, nil
	}

	for i := range results {
		results[i].Delivered = false
		results[i].Err = err
	}
	return results, errs.Wrap(err, "write notifications")
}

func (s *KafkaSender) Close() error {
	return s.writer.Close()
}
