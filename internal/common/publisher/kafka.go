package publisher

import (
	"time"

	"github.com/Shopify/sarama"
)

type Option func(*sarama.Config)

// NewKafkaSyncProducer builds a producer that waits for the leader ack and
// hashes the message key to pick the partition.
func NewKafkaSyncProducer(brokers []string, opts ...Option) (sarama.SyncProducer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Return.Errors = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal
	saramaCfg.Producer.Partitioner = sarama.NewHashPartitioner
	saramaCfg.Producer.Timeout = 2 * time.Second
	saramaCfg.Net.DialTimeout = 2 * time.Second
	saramaCfg.Net.ReadTimeout = 2 * time.Second
	saramaCfg.Net.WriteTimeout = 2 * time.Second

	for _, opt := range opts {
		opt(saramaCfg)
	}

	return sarama.NewSyncProducer(brokers, saramaCfg)
}

func WithClientID(id string) Option {
	return func(cfg *sarama.Config) {
		cfg.ClientID = id
	}
}
