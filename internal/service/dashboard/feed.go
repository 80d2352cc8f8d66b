package dashboard

import (
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/positive-vibes/internal/domain"
)

// Feed is the newest-first list shown on a dashboard. It is safe for
// concurrent use by the loader and the live subscription.
type Feed struct {
	mu    sync.RWMutex
	items []domain.Message
	seen  map[uuid.UUID]struct{}
}

// NewFeed creates a feed from messages already ordered newest first.
func NewFeed(initial []domain.Message) *Feed {
	f := &Feed{
		items: make([]domain.Message, 0, len(initial)),
		seen:  make(map[uuid.UUID]struct{}, len(initial)),
	}
	for _, m := range initial {
		if _, dup := f.seen[m.ID]; dup {
			continue
		}
		f.seen[m.ID] = struct{}{}
		f.items = append(f.items, m)
	}
	return f
}

// Prepend puts m at the head of the feed. It returns false and leaves the
// feed unchanged when a message with the same id is already present.
func (f *Feed) Prepend(m domain.Message) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, dup := f.seen[m.ID]; dup {
		return false
	}
	f.seen[m.ID] = struct{}{}
	f.items = append([]domain.Message{m}, f.items...)
	return true
}

// Messages returns a copy of the feed, newest first.
func (f *Feed) Messages() []domain.Message {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]domain.Message, len(f.items))
	copy(out, f.items)
	return out
}

// Len returns the number of messages in the feed.
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.items)
}
