package publisher

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/metrics"
	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

type payload struct {
	ClientID   string `json:"clientId"`
	MatchCount int    `json:"matchCount"`
}

func TestPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()

	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg, reg).GetPublisherPrometheus()
	pub := NewPublisher(producer, "match-notification", m)

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got payload
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		assert.Equal(t, payload{ClientID: "c1", MatchCount: 3}, got)
		return nil
	})

	ctx := xlog.SetCorrelationID(context.Background(), "corr-1")
	err := pub.Publish(ctx, payload{ClientID: "c1", MatchCount: 3}, WithKey("c1"))
	assert.NoError(t, err)
}

func TestPublisher_PublishFailed(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()

	pub := NewPublisher(producer, "match-notification", nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := pub.Publish(context.Background(), payload{ClientID: "c1"})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func TestPublisher_PrepareMessage(t *testing.T) {
	p := &publisher{topic: "topic-a"}

	msg, err := p.prepareMessage(payload{ClientID: "c1"}, &publishOptions{
		key:     "c1",
		headers: map[string]string{xlog.HeaderCorrelationID: "corr-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "topic-a", msg.Topic)
	assert.Equal(t, sarama.StringEncoder("c1"), msg.Key)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, []byte("corr-1"), msg.Headers[0].Value)

	_, err = p.prepareMessage(make(chan int), &publishOptions{})
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NewNoopPublisher().Publish(context.Background(), payload{}))
}
