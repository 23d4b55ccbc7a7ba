package kafka

import (
	"context"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/socialharmony/backend/pkg/pubsub"
	"github.com/stretchr/testify/require"
)

func Test_publisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		require.Equal(t, `{"action":"join"}`, string(val))
		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := newPublisherWithProducer("test", producer)
	err := p.Publish(context.Background(), "game_activity", &pubsub.Pack{
		Key: []byte("0x01"),
		Msg: []byte(`{"action":"join"}`),
	})
	require.NoError(t, err)

	err = p.Publish(context.Background(), "game_activity", &pubsub.Pack{Msg: []byte("x")})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	require.NoError(t, p.Stop(context.Background()))
}
