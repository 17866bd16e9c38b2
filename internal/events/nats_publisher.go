package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/naveenanimation20/api-labs/internal/domain"
)

// NATSPublisher pushes domain events onto NATS subjects. Callers treat
// publication as fire-and-forget; a failed publish is logged upstream and
// never fails the operation that produced the event.
type NATSPublisher struct {
	nc *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("api-labs-banking"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	return &NATSPublisher{nc: nc}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, topic string, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %q: %w", event.Type, err)
	}

	if err := p.nc.Publish(topic, payload); err != nil {
		return fmt.Errorf("publish event %q to %q: %w", event.Type, topic, err)
	}

	return nil
}

func (p *NATSPublisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
