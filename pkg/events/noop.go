package events

import "context"

// NoopPublisher drops every event. The server uses it when NATS_URL is empty
// or the broker is unreachable at start.
type NoopPublisher struct{}

func (*NoopPublisher) Publish(context.Context, string, any) error { return nil }

func (*NoopPublisher) Close() error { return nil }
