package gameplay

import (
	"sync"

	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
)

// followerBuffer is how many unread entries a follower may lag behind before
// further entries are dropped for it.
const followerBuffer = 32

// Hub fans saved path entries out to followers of a game.
type Hub struct {
	mu        sync.Mutex
	followers map[string]map[chan game.PathEntry]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{followers: make(map[string]map[chan game.PathEntry]struct{})}
}

// Follow subscribes to gameID. The returned cancel func must be called; it
// closes the channel.
func (h *Hub) Follow(gameID string) (<-chan game.PathEntry, func()) {
	ch := make(chan game.PathEntry, followerBuffer)

	h.mu.Lock()
	set, ok := h.followers[gameID]
	if !ok {
		set = make(map[chan game.PathEntry]struct{})
		h.followers[gameID] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if set, ok := h.followers[gameID]; ok {
				if _, ok := set[ch]; ok {
					delete(set, ch)
					close(ch)
				}
				if len(set) == 0 {
					delete(h.followers, gameID)
				}
			}
		})
	}
}

// Publish delivers entry to every follower of its game without blocking.
// When final is true the followers are closed after delivery.
func (h *Hub) Publish(entry game.PathEntry, final bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.followers[entry.GameID]
	for ch := range set {
		select {
		case ch <- entry:
		default:
		}
		if final {
			close(ch)
		}
	}
	if final {
		delete(h.followers, entry.GameID)
	}
}

// Followers reports how many followers gameID has.
func (h *Hub) Followers(gameID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.followers[gameID])
}
