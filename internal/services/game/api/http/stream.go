package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/websocket"

	"github.com/louisbranch/lastwalk/internal/platform/httpx"
	"github.com/louisbranch/lastwalk/internal/platform/timeouts"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
)

const (
	frameTypePath = "path"
	frameTypeEnd  = "end"
)

// streamFrame is one websocket message of a path stream.
type streamFrame struct {
	Type   string          `json:"type"`
	Entry  *game.PathEntry `json:"entry,omitempty"`
	Status game.Status     `json:"status,omitempty"`
	Day    int             `json:"day,omitempty"`
}

// handleStream plays a game's path back over a websocket. With follow=true
// the connection stays open and relays new turns until the game ends or the
// client hangs up.
func (h *handler) handleStream(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameId")
	follow := r.URL.Query().Get("follow") == "true"

	// Subscribe before reading history so no turn falls between the two.
	var (
		updates <-chan game.PathEntry
		cancel  = func() {}
	)
	if follow {
		updates, cancel = h.service.Hub().Follow(gameID)
	}

	state, err := h.service.GetGame(r.Context(), gameID)
	if err != nil {
		cancel()
		h.writeError(w, r, err, nil)
		return
	}
	entries, err := h.service.ListPath(r.Context(), gameID)
	if err != nil {
		cancel()
		h.writeError(w, r, err, nil)
		return
	}
	if state.Terminal() {
		cancel()
		updates = nil
	}

	logger := h.logger.WithFields(logrus.Fields{
		"game_id":    gameID,
		"follow":     follow,
		"request_id": httpx.RequestIDFrom(r),
	})

	websocket.Handler(func(conn *websocket.Conn) {
		defer cancel()
		defer func() {
			_ = conn.Close()
		}()
		s := &pathStream{conn: conn, encoder: json.NewEncoder(conn)}
		if err := s.run(state, entries, updates); err != nil {
			logger.WithError(err).Debug("path stream closed")
		}
	}).ServeHTTP(w, r)
}

type pathStream struct {
	conn    *websocket.Conn
	encoder *json.Encoder
}

func (s *pathStream) run(state game.State, history []game.PathEntry, updates <-chan game.PathEntry) error {
	last := state
	for i := range history {
		if err := s.send(streamFrame{Type: frameTypePath, Entry: &history[i]}); err != nil {
			return err
		}
		last.CurrentDay = history[i].Day
	}

	if updates != nil {
		ctx, stop := context.WithCancel(context.Background())
		defer stop()
		go s.watchClose(stop)

	relay:
		for {
			select {
			case <-ctx.Done():
				return nil
			case entry, ok := <-updates:
				if !ok {
					break relay
				}
				// Days only grow, so anything at or before the last sent day
				// was already in the history.
				if entry.Day <= last.CurrentDay {
					continue
				}
				if err := s.send(streamFrame{Type: frameTypePath, Entry: &entry}); err != nil {
					return err
				}
				last.CurrentDay = entry.Day
				last.Alive = entry.Action != game.ActionKilled
			}
		}
	}

	return s.send(streamFrame{Type: frameTypeEnd, Status: last.Status(), Day: last.CurrentDay})
}

// watchClose drains client frames until the connection ends, then calls stop.
func (s *pathStream) watchClose(stop func()) {
	defer stop()
	_, _ = io.Copy(io.Discard, s.conn)
}

func (s *pathStream) send(frame streamFrame) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(timeouts.StreamWrite))
	return s.encoder.Encode(frame)
}
