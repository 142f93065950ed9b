package cache

import (
	"context"
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"

	"github.com/Prajwal-sudo-600/AEGIS/events"
	natsClient "github.com/Prajwal-sudo-600/AEGIS/nats"
)

// Invalidator consumes view invalidation events and drops the matching
// cache entries.
type Invalidator struct {
	natsClient *natsClient.Client
	cache      *ViewCache
	ctx        context.Context
}

func NewInvalidator(natsClient *natsClient.Client, cache *ViewCache, ctx context.Context) *Invalidator {
	return &Invalidator{
		natsClient: natsClient,
		cache:      cache,
		ctx:        ctx,
	}
}

func (s *Invalidator) Start() error {
	handler := func(msg *nats.Msg) {
		var event events.ViewInvalidateEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			log.Printf("Error decoding view invalidate event: %v", err)
			return
		}

		if err := s.cache.Invalidate(s.ctx, event.Paths...); err != nil {
			log.Printf("Error invalidating views %v: %v", event.Paths, err)
		}
	}

	if _, err := s.natsClient.Subscribe(events.ViewInvalidate, handler); err != nil {
		return err
	}

	log.Println("View cache invalidator started successfully")
	return nil
}
