package pubsub

import (
	"context"
)

// Message is what travels on the bus.
type Message struct {
	// Topic identifies the channel, e.g. "contact.submitted".
	Topic   string
	Payload []byte
	// Metadata carries context such as the request ID.
	Metadata map[string]string
}

// Handler processes a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages.
type Subscriber interface {
	// Subscribe starts consuming topic in the background until ctx is
	// canceled or the subscriber is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
