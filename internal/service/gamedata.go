package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"riftgate-rest-api/internal/domain"
	"riftgate-rest-api/internal/riot"
	"riftgate-rest-api/pkg/apierror"
)

// Pagination bounds for match-id listings.
const (
	DefaultMatchCount = 20
	MaxMatchCount     = 100
)

const invalidGameMsg = "Invalid game. Must be one of: lol, tft, lor, val"

// GameDataService handles the pass-through game-data flows: it validates
// client input, delegates to the upstream API and maps failures onto the
// service's error taxonomy. Payloads are never interpreted.
type GameDataService struct {
	api riot.GameDataAPI
}

// NewGameDataService creates a new game data service.
// Returns nil if api is nil (required dependency).
func NewGameDataService(api riot.GameDataAPI) *GameDataService {
	if api == nil {
		return nil // Cannot function without the upstream client
	}
	return &GameDataService{api: api}
}

// FetchAccount looks up a summoner by region and display name.
func (s *GameDataService) FetchAccount(ctx context.Context, region, summonerName string) (json.RawMessage, error) {
	if region == "" {
		return nil, apierror.BadRequest("region is required")
	}
	if summonerName == "" {
		return nil, apierror.BadRequest("summonerName is required")
	}

	data, err := s.api.SummonerByName(ctx, region, summonerName)
	if err != nil {
		return nil, mapUpstreamError(err)
	}
	return data, nil
}

// Match fetches a single match document for a game.
func (s *GameDataService) Match(ctx context.Context, game, matchID string) (json.RawMessage, error) {
	g, ok := domain.ParseGame(game)
	if !ok {
		return nil, apierror.BadRequest(invalidGameMsg)
	}
	if matchID == "" {
		return nil, apierror.BadRequest("matchId is required")
	}

	data, err := s.api.MatchByID(ctx, g, matchID)
	if err != nil {
		return nil, mapUpstreamError(err)
	}
	return data, nil
}

// MatchesByPUUID fetches a page of match ids for a player. Validation
// happens before any outbound call so a bad page never reaches the upstream.
func (s *GameDataService) MatchesByPUUID(ctx context.Context, game, puuid string, page riot.MatchPage) (json.RawMessage, error) {
	g, ok := domain.ParseGame(game)
	if !ok {
		return nil, apierror.BadRequest(invalidGameMsg)
	}
	if puuid == "" {
		return nil, apierror.BadRequest("puuid is required")
	}
	if page.Start < 0 {
		return nil, apierror.BadRequest("start must be a non-negative integer")
	}
	if page.Count < 1 || page.Count > MaxMatchCount {
		return nil, apierror.BadRequest("count must be an integer between 1 and 100")
	}

	data, err := s.api.MatchIDsByPUUID(ctx, g, puuid, page)
	if err != nil {
		return nil, mapUpstreamError(err)
	}
	return data, nil
}

// mapUpstreamError translates an upstream client failure onto the API error
// taxonomy: upstream replies keep their own status code and message, a
// timed-out call becomes a 504, anything else is a masked 500.
func mapUpstreamError(err error) error {
	var apiErr *riot.APIError
	if errors.As(err, &apiErr) {
		return apierror.Upstream(apiErr.StatusCode, apiErr.Message)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		log.Printf("[GameDataService] upstream request timed out: %v", err)
		return apierror.GatewayTimeout("Upstream request timed out")
	}
	log.Printf("[GameDataService] upstream request failed: %v", err)
	return apierror.InternalError("Internal server error")
}
