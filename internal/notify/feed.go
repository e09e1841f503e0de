package notify

import (
	"context"
	"sync"
)

const DefaultFeedSize = 20

// Feed keeps the most recent notifications in memory for pollers.
type Feed struct {
	mu    sync.RWMutex
	size  int
	items []Notification
}

// NewFeed returns a Feed holding at most size items. size <= 0 means
// DefaultFeedSize.
func NewFeed(size int) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{size: size}
}

func (f *Feed) Notify(_ context.Context, n Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, n)
	if len(f.items) > f.size {
		f.items = f.items[len(f.items)-f.size:]
	}
	return nil
}

// List returns the retained notifications, newest first.
func (f *Feed) List() []Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Notification, len(f.items))
	for i, n := range f.items {
		out[len(f.items)-1-i] = n
	}
	return out
}
