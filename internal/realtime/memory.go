package realtime

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/positive-vibes/internal/domain"
)

// Hub is an in-process Broker. It only reaches subscribers of the same
// server instance.
type Hub struct {
	log    *slog.Logger
	buffer int

	mu     sync.RWMutex
	subs   map[string]map[*hubSub]struct{}
	closed bool
}

// NewHub creates an in-memory broker. buffer is the per-subscriber queue size.
func NewHub(logger *slog.Logger, buffer int) *Hub {
	if buffer <= 0 {
		buffer = 1
	}
	return &Hub{
		log:    logger.With("component", "realtime.hub"),
		buffer: buffer,
		subs:   make(map[string]map[*hubSub]struct{}),
	}
}

// Publish hands m to every current subscriber of m.Username without blocking.
func (h *Hub) Publish(_ context.Context, m domain.Message) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return ErrClosed
	}

	for s := range h.subs[m.Username] {
		select {
		case s.ch <- m:
		default:
			h.log.Warn("subscriber queue full, event dropped",
				slog.String("username", m.Username),
				slog.String("message_id", m.ID.String()),
			)
		}
	}
	return nil
}

// Subscribe registers a feed for username. The feed closes when ctx is done.
func (h *Hub) Subscribe(ctx context.Context, username string) (Subscription, error) {
	s := &hubSub{
		hub:      h,
		username: username,
		ch:       make(chan domain.Message, h.buffer),
		done:     make(chan struct{}),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, ErrClosed
	}
	set, ok := h.subs[username]
	if !ok {
		set = make(map[*hubSub]struct{})
		h.subs[username] = set
	}
	set[s] = struct{}{}
	h.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			_ = s.Close()
		case <-s.done:
		}
	}()

	return s, nil
}

// Subscribers returns the number of open feeds for username.
func (h *Hub) Subscribers(username string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[username])
}

// Close terminates every open feed.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	for _, set := range h.subs {
		for s := range set {
			s.closeLocked()
		}
	}
	h.subs = map[string]map[*hubSub]struct{}{}
	return nil
}

type hubSub struct {
	hub      *Hub
	username string
	ch       chan domain.Message
	done     chan struct{}
	once     sync.Once
}

func (s *hubSub) Events() <-chan domain.Message { return s.ch }

func (s *hubSub) Close() error {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()

	if set, ok := s.hub.subs[s.username]; ok {
		delete(set, s)
		if len(set) == 0 {
			delete(s.hub.subs, s.username)
		}
	}
	s.closeLocked()
	return nil
}

// closeLocked requires hub.mu held for writing.
func (s *hubSub) closeLocked() {
	s.once.Do(func() {
		close(s.done)
		close(s.ch)
	})
}
