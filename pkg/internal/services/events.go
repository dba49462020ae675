package services

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

type Event struct {
	Type      string    `json:"type"`
	Target    string    `json:"target"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event Event) error
}

// NatsEventPublisher sends every event to the subject "<prefix>.<type>".
type NatsEventPublisher struct {
	conn   *nats.Conn
	prefix string
}

func NewNatsEventPublisher(url, prefix string) (*NatsEventPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("hobbyhub"))
	if err != nil {
		return nil, fmt.Errorf("unable to connect nats: %w", err)
	}
	return &NatsEventPublisher{conn: conn, prefix: prefix}, nil
}

func (v *NatsEventPublisher) PublishEvent(ctx context.Context, event Event) error {
	raw, err := jsoniter.Marshal(event)
	if err != nil {
		return err
	}
	return v.conn.Publish(v.prefix+"."+event.Type, raw)
}

func (v *NatsEventPublisher) Close() {
	if err := v.conn.Drain(); err != nil {
		log.Warn().Err(err).Msg("An error occurred when draining nats connection...")
	}
}

// AddEvent publishes an event and only logs a failure, events never fail the request.
func AddEvent(publisher EventPublisher, eventType, target, actor string) {
	if publisher == nil {
		return
	}
	event := Event{
		Type:      eventType,
		Target:    target,
		Actor:     actor,
		CreatedAt: time.Now(),
	}
	if err := publisher.PublishEvent(context.Background(), event); err != nil {
		log.Warn().Err(err).Str("type", eventType).Msg("An error occurred when publishing event...")
	} else {
		log.Debug().Str("type", eventType).Str("target", target).Msg("Published event.")
	}
}
