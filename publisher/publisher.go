package publisher

import (
	"encoding/json"
	"log"
	"time"

	"github.com/Prajwal-sudo-600/AEGIS/events"
	natsClient "github.com/Prajwal-sudo-600/AEGIS/nats"
)

// Bus is the minimal publishing surface the event publisher needs.
type Bus interface {
	Publish(subject string, data []byte) error
}

var _ Bus = (*natsClient.Client)(nil)

type EventPublisher struct {
	bus Bus
}

func NewEventPublisher(bus Bus) *EventPublisher {
	return &EventPublisher{bus: bus}
}

// InvalidateViews signals that the cached renderings of the given paths are
// stale. Failures are logged and swallowed; invalidation is best effort.
func (p *EventPublisher) InvalidateViews(paths ...string) {
	event := events.ViewInvalidateEvent{
		Paths:     paths,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal invalidate event: %v", err)
		return
	}

	if err := p.bus.Publish(events.ViewInvalidate, data); err != nil {
		log.Printf("failed to publish invalidate event for %v: %v", paths, err)
	}
}

func (p *EventPublisher) PublishPostLiked(event events.PostLikedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := p.bus.Publish(events.PostLiked, data); err != nil {
		return err
	}

	log.Printf("Published event: %s for post %s", events.PostLiked, event.PostID)
	return nil
}

func (p *EventPublisher) PublishCommentAdded(event events.CommentAddedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := p.bus.Publish(events.CommentAdded, data); err != nil {
		return err
	}

	log.Printf("Published event: %s for comment %s", events.CommentAdded, event.CommentID)
	return nil
}
