package httpapi

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/louisbranch/lastwalk/internal/platform/errors"
	"github.com/louisbranch/lastwalk/internal/platform/httpx"
	"github.com/louisbranch/lastwalk/internal/services/game/api/http/schemas"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/character"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/turn"
	"github.com/louisbranch/lastwalk/internal/services/game/gameplay"
)

func (h *handler) handleRoll(w http.ResponseWriter, r *http.Request) {
	roll, err := h.service.RollCharacter(r.Context())
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, rollResponse{
		Stats:     roll.Attributes,
		Modifiers: roll.Modifiers,
		StartLat:  roll.Start.Lat,
		StartLng:  roll.Start.Lng,
		Seed:      roll.Seed,
	})
}

func (h *handler) handleScenarios(w http.ResponseWriter, r *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"scenarios": h.service.Scenarios()})
}

type createGameRequest struct {
	PlayerName string               `json:"playerName"`
	Scenario   string               `json:"scenario"`
	Stats      character.Attributes `json:"stats"`
	StartLat   float64              `json:"startLat"`
	StartLng   float64              `json:"startLng"`
}

func (h *handler) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(r, schemas.CreateGame)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	var req createGameRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.CodeValidationFailed, "decode create game", err), nil)
		return
	}

	gameID, err := h.service.CreateGame(r.Context(), game.NewGame{
		PlayerName: req.PlayerName,
		Scenario:   req.Scenario,
		Attributes: req.Stats,
		Start:      game.Position{Lat: req.StartLat, Lng: req.StartLng},
	})
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	if !h.issueSession(w, r, gameID) {
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "gameId": gameID})
}

func (h *handler) handleGetGame(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.GetGame(r.Context(), r.PathValue("gameId"))
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"game": newGameView(state)})
}

type moveRequest struct {
	TargetLat    float64 `json:"targetLat"`
	TargetLng    float64 `json:"targetLng"`
	LocationType *string `json:"locationType"`
	Action       *string `json:"action"`
}

func (h *handler) handleMove(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(r, schemas.Move)
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	var req moveRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.CodeValidationFailed, "decode move", err), nil)
		return
	}

	report, err := h.service.SubmitMove(r.Context(), r.PathValue("gameId"), gameplay.Move{
		Target:           game.Position{Lat: req.TargetLat, Lng: req.TargetLng},
		LocationCategory: deref(req.LocationType),
		Action:           deref(req.Action),
	})
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, newMoveResponse(report))
}

func newMoveResponse(report gameplay.TurnReport) moveResponse {
	out := report.Outcome
	resp := moveResponse{
		Success:         out.Status != turn.StatusDied,
		Died:            out.Status == turn.StatusDied,
		Won:             out.Status == turn.StatusWon,
		EncounterResult: out.Hazard,
		NewSupplies:     out.ItemsGained,
		Distance:        roundKm(out.DistanceKm),
		Position:        report.State.CurrentPosition,
		Seed:            out.Seed,
	}
	if resp.NewSupplies == nil {
		resp.NewSupplies = []string{}
	}
	if resp.Died {
		resp.FinalDay = out.Day
	} else {
		resp.NewDay = out.Day
	}
	return resp
}

func (h *handler) handlePaths(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("includeAllDead") == "true" {
		recaps, err := h.service.ListRecaps(r.Context())
		if err != nil {
			h.writeError(w, r, err, nil)
			return
		}
		_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"allDeadPaths": nonNilRecaps(recaps)})
		return
	}

	entries, err := h.service.ListPath(r.Context(), r.PathValue("gameId"))
	if err != nil {
		h.writeError(w, r, err, nil)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"paths": nonNilEntries(entries)})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
