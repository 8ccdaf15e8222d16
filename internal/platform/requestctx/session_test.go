package requestctx

import (
	"context"
	"testing"
)

func TestSessionRoundTrip(t *testing.T) {
	ctx := WithSession(context.Background(), Session{Authenticated: true, CurrentGameID: "game_1"})
	got := SessionFromContext(ctx)
	if !got.Authenticated || got.CurrentGameID != "game_1" {
		t.Fatalf("session = %+v", got)
	}
	if !IsAuthenticated(ctx) {
		t.Fatal("expected authenticated")
	}
}

func TestSessionMissing(t *testing.T) {
	//nolint:staticcheck // nil context is handled explicitly.
	if got := SessionFromContext(nil); got.Authenticated {
		t.Fatal("expected zero session for nil context")
	}
	if IsAuthenticated(context.Background()) {
		t.Fatal("expected unauthenticated without session")
	}
}

func TestWithSessionNilContext(t *testing.T) {
	//nolint:staticcheck // nil context is handled explicitly.
	ctx := WithSession(nil, Session{Authenticated: true})
	if !IsAuthenticated(ctx) {
		t.Fatal("expected session on fallback context")
	}
}
