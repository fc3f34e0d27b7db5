package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"riftgate-rest-api/internal/riot"
	"riftgate-rest-api/internal/service"
	"riftgate-rest-api/internal/transport/http/response"
	"riftgate-rest-api/pkg/apierror"

	"github.com/go-chi/chi/v5"
)

// GameDataHandler handles the pass-through game-data HTTP requests.
type GameDataHandler struct {
	gameDataService *service.GameDataService
}

// NewGameDataHandler creates a new game data handler.
func NewGameDataHandler(gameDataService *service.GameDataService) *GameDataHandler {
	return &GameDataHandler{
		gameDataService: gameDataService,
	}
}

// AccountFetchRequest is the body for the account fetch endpoint.
type AccountFetchRequest struct {
	Region       string `json:"region"`
	SummonerName string `json:"summonerName"`
}

// AccountFetchResponse wraps the upstream account payload.
type AccountFetchResponse struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// FetchAccount handles POST /api/v1/account/fetch
// Looks up a summoner by region and name; the upstream payload is returned
// untouched under "data".
func (h *GameDataHandler) FetchAccount(w http.ResponseWriter, r *http.Request) {
	var req AccountFetchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("Invalid request body"))
		return
	}
	defer r.Body.Close()

	data, err := h.gameDataService.FetchAccount(r.Context(), req.Region, req.SummonerName)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, AccountFetchResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// MatchResponse wraps a single upstream match document.
type MatchResponse struct {
	Success   bool            `json:"success"`
	MatchID   string          `json:"matchId"`
	Game      string          `json:"game"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Match handles GET /api/v1/{game}/match/{matchId}
func (h *GameDataHandler) Match(w http.ResponseWriter, r *http.Request) {
	game := chi.URLParam(r, "game")
	matchID := chi.URLParam(r, "matchId")

	data, err := h.gameDataService.Match(r.Context(), game, matchID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, MatchResponse{
		Success:   true,
		MatchID:   matchID,
		Game:      game,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// MatchesByPUUIDResponse wraps an upstream match-id listing and echoes the
// pagination that produced it.
type MatchesByPUUIDResponse struct {
	Success   bool            `json:"success"`
	Game      string          `json:"game"`
	PUUID     string          `json:"puuid"`
	Start     int             `json:"start"`
	Count     int             `json:"count"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// MatchesByPUUID handles GET /api/v1/{game}/matches/by-puuid/{puuid}
// Optional query parameters: start (default 0), count (default 20, max 100)
// and type (forwarded to the upstream when present).
func (h *GameDataHandler) MatchesByPUUID(w http.ResponseWriter, r *http.Request) {
	game := chi.URLParam(r, "game")
	puuid := chi.URLParam(r, "puuid")

	page := riot.MatchPage{Start: 0, Count: service.DefaultMatchCount}
	query := r.URL.Query()

	if v := query.Get("start"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.Error(w, apierror.BadRequest("start must be a non-negative integer"))
			return
		}
		page.Start = n
	}
	if v := query.Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.Error(w, apierror.BadRequest("count must be an integer between 1 and 100"))
			return
		}
		page.Count = n
	}
	page.Type = query.Get("type")

	data, err := h.gameDataService.MatchesByPUUID(r.Context(), game, puuid, page)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, MatchesByPUUIDResponse{
		Success:   true,
		Game:      game,
		PUUID:     puuid,
		Start:     page.Start,
		Count:     page.Count,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}
