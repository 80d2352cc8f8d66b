// Package realtime fans newly stored messages out to the dashboards of
// their recipients.
package realtime

import (
	"context"
	"errors"

	"github.com/heartmarshall/positive-vibes/internal/domain"
)

// ErrClosed is returned by Publish and Subscribe after the broker is closed.
var ErrClosed = errors.New("realtime: broker closed")

// Broker delivers message insertions to subscribers keyed by recipient username.
// Delivery is at-most-once; a subscriber that is not keeping up loses events
// instead of slowing the publisher down.
type Broker interface {
	Publish(ctx context.Context, m domain.Message) error
	Subscribe(ctx context.Context, username string) (Subscription, error)
	Close() error
}

// Subscription is a live feed for one recipient. Events is closed after
// Close is called or the subscribing context is done.
type Subscription interface {
	Events() <-chan domain.Message
	Close() error
}
