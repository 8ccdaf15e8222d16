package gameplay

import (
	"testing"

	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
)

func TestHubDeliversAndCloses(t *testing.T) {
	hub := NewHub()
	a, cancelA := hub.Follow("g1")
	b, cancelB := hub.Follow("g1")
	other, cancelOther := hub.Follow("g2")
	defer cancelA()
	defer cancelB()
	defer cancelOther()

	hub.Publish(game.PathEntry{GameID: "g1", Day: 2}, false)
	if got := <-a; got.Day != 2 {
		t.Fatalf("a got %+v", got)
	}
	if got := <-b; got.Day != 2 {
		t.Fatalf("b got %+v", got)
	}
	select {
	case got := <-other:
		t.Fatalf("other game received %+v", got)
	default:
	}

	hub.Publish(game.PathEntry{GameID: "g1", Day: 3}, true)
	<-a
	if _, ok := <-a; ok {
		t.Fatal("expected a closed after final entry")
	}
	if hub.Followers("g1") != 0 {
		t.Fatalf("followers = %d", hub.Followers("g1"))
	}
}

func TestHubCancelIsIdempotent(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Follow("g1")
	cancel()
	cancel()
	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel")
	}
	if hub.Followers("g1") != 0 {
		t.Fatalf("followers = %d", hub.Followers("g1"))
	}
}

func TestHubDropsWhenFollowerLags(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Follow("g1")
	defer cancel()
	for day := range followerBuffer + 5 {
		hub.Publish(game.PathEntry{GameID: "g1", Day: day}, false)
	}
	if len(ch) != followerBuffer {
		t.Fatalf("buffered %d, want %d", len(ch), followerBuffer)
	}
}

func TestKeyedLocksRelease(t *testing.T) {
	locks := newKeyedLocks()
	release := locks.lock("a")
	if locks.size() != 1 {
		t.Fatalf("size = %d", locks.size())
	}
	release()
	if locks.size() != 0 {
		t.Fatalf("size = %d", locks.size())
	}
}
