package testutil

import (
	"context"
	"sync"

	"github.com/socialharmony/backend/pkg/pubsub"
)

type MockPublisher struct {
	PublishFunc func(context.Context, string, *pubsub.Pack) error

	mutex     sync.Mutex
	Published []PublishedPack
}

type PublishedPack struct {
	Topic string
	Pack  *pubsub.Pack
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, pack *pubsub.Pack) error {
	m.mutex.Lock()
	m.Published = append(m.Published, PublishedPack{Topic: topic, Pack: pack})
	m.mutex.Unlock()

	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, pack)
	}

	return nil
}

func (m *MockPublisher) Stop(ctx context.Context) error {
	return nil
}
