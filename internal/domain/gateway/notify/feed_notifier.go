package notify

import (
	"sync"
	"time"

	"weather-dashboard/internal/domain/model"
)

// FeedNotifier keeps the most recent notifications in memory so HTTP clients can display them
type FeedNotifier struct {
	mu    sync.RWMutex
	items []model.Notification
	size  int
}

func NewFeedNotifier(size int) *FeedNotifier {
	if size < 1 {
		size = 1
	}
	return &FeedNotifier{size: size, items: make([]model.Notification, 0, size)}
}

func (n *FeedNotifier) Notify(kind model.NotificationKind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.items) == n.size {
		copy(n.items, n.items[1:])
		n.items = n.items[:n.size-1]
	}
	n.items = append(n.items, newNotification(kind, message))
}

// Recent returns the retained notifications, oldest first
func (n *FeedNotifier) Recent() []model.Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]model.Notification, len(n.items))
	copy(out, n.items)
	return out
}

// Prune drops notifications created before cutoff, the way toasts dismiss themselves, and
// returns how many were dropped
func (n *FeedNotifier) Prune(cutoff time.Time) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	kept := n.items[:0]
	for _, item := range n.items {
		if !item.CreatedAt.Before(cutoff) {
			kept = append(kept, item)
		}
	}
	dropped := len(n.items) - len(kept)
	n.items = kept
	return dropped
}
