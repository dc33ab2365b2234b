// Package events publishes farm record changes to a message bus.
package events

import (
	"context"
	"sync"

	"agriai/entities"
)

const (
	TopicFieldCreated = "agriai.field.created"
	TopicFieldUpdated = "agriai.field.updated"
	TopicFieldDeleted = "agriai.field.deleted"

	TopicLivestockCreated = "agriai.livestock.created"
	TopicLivestockUpdated = "agriai.livestock.updated"
	TopicLivestockDeleted = "agriai.livestock.deleted"
)

type FieldChanged struct {
	Field *entities.Field `json:"field"`
}

type LivestockChanged struct {
	Livestock *entities.Livestock `json:"livestock"`
}

// RecordDeleted carries the id and owner of a removed record.
type RecordDeleted struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}

// Message is one event captured by a Recorder.
type Message struct {
	Topic string
	Event any
}

// Recorder keeps published events in memory.
type Recorder struct {
	mu   sync.Mutex
	msgs []Message
}

func (r *Recorder) Publish(_ context.Context, topic string, event any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, Message{Topic: topic, Event: event})
	return nil
}

func (r *Recorder) Close() error { return nil }

// Messages returns a copy of everything published so far.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.msgs...)
}

// Topics lists the topics of the recorded events in publish order.
func (r *Recorder) Topics() []string {
	msgs := r.Messages()
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Topic
	}
	return out
}

type observed struct {
	Publisher
	observe func(topic string, err error)
}

// Observed reports every Publish outcome on p to observe.
func Observed(p Publisher, observe func(topic string, err error)) Publisher {
	return &observed{Publisher: p, observe: observe}
}

func (o *observed) Publish(ctx context.Context, topic string, event any) error {
	err := o.Publisher.Publish(ctx, topic, event)
	o.observe(topic, err)
	return err
}
