package pubsub

import "context"

// Pack is a single message with its partition key.
type Pack struct {
	Key []byte
	Msg []byte
}

type Publisher interface {
	Publish(context.Context, string, *Pack) error
	Stop(context.Context) error
}
