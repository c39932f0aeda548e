package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Shopify/sarama"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/metrics"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
)

const logIdentifier = "[MATCH-NOTIFICATION-PUBLISHER]"

type Publisher interface {
	Publish(ctx context.Context, message any, opts ...PublishOption) error
}

type publishOptions struct {
	key     string
	headers map[string]string
}

type PublishOption func(*publishOptions)

func WithKey(key string) PublishOption {
	return func(opts *publishOptions) {
		opts.key = key
	}
}

func WithHeaders(headers map[string]string) PublishOption {
	return func(opts *publishOptions) {
		opts.headers = headers
	}
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
	metrics  *metrics.PublisherPrometheusMetrics
}

// NewPublisher sends JSON messages to topic. The correlation id of the ctx
// travels as a header. m may be nil.
func NewPublisher(p sarama.SyncProducer, topic string, m *metrics.PublisherPrometheusMetrics) Publisher {
	return &publisher{
		producer: p,
		topic:    topic,
		metrics:  m,
	}
}

func (d *publisher) Publish(ctx context.Context, message any, opts ...PublishOption) (err error) {
	start := time.Now()
	defer func() {
		if d.metrics != nil {
			d.metrics.ObservePublish(start, d.topic, err)
		}
	}()

	options := &publishOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if id := xlog.GetCorrelationID(ctx); id != "" {
		if options.headers == nil {
			options.headers = map[string]string{}
		}
		if _, ok := options.headers[xlog.HeaderCorrelationID]; !ok {
			options.headers[xlog.HeaderCorrelationID] = id
		}
	}

	msg, err := d.prepareMessage(message, options)
	if err != nil {
		xlog.Error(ctx, logIdentifier, xlog.String("status", "failed prepare message"), xlog.Err(err))
		return err
	}

	partition, offset, err := d.producer.SendMessage(msg)
	if err != nil {
		xlog.Error(ctx, logIdentifier,
			xlog.String("status", "failed send message"),
			xlog.String("topic", d.topic),
			xlog.Err(err))
		return err
	}

	xlog.Info(ctx, logIdentifier,
		xlog.String("status", "success publish message"),
		xlog.String("topic", d.topic),
		xlog.Int64("partition", int64(partition)),
		xlog.Int64("offset", offset))

	return nil
}

func (d *publisher) prepareMessage(message any, opts *publishOptions) (*sarama.ProducerMessage, error) {
	msgByte, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	producerMsg := &sarama.ProducerMessage{
		Topic: d.topic,
		Value: sarama.ByteEncoder(msgByte),
	}
	if opts.key != "" {
		producerMsg.Key = sarama.StringEncoder(opts.key)
	}
	for key, value := range opts.headers {
		producerMsg.Headers = append(producerMsg.Headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	return producerMsg, nil
}

type noopPublisher struct{}

// NewNoopPublisher drops every message. Used when notifications are
// disabled.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, _ any, _ ...PublishOption) error {
	xlog.Debug(ctx, logIdentifier, xlog.String("status", "notification disabled, message dropped"))
	return nil
}
