// Package riot talks to the upstream Riot-style game-data API. Responses are
// passed through as raw JSON; this service never interprets them.
package riot

import (
	"context"
	"encoding/json"
	"fmt"

	"riftgate-rest-api/internal/domain"
)

// GameDataAPI defines the upstream operations consumed by this service.
type GameDataAPI interface {
	SummonerByName(ctx context.Context, region, name string) (json.RawMessage, error)
	MatchByID(ctx context.Context, game domain.Game, matchID string) (json.RawMessage, error)
	MatchIDsByPUUID(ctx context.Context, game domain.Game, puuid string, page MatchPage) (json.RawMessage, error)
}

// MatchPage bounds a match-id listing request. Type is an optional upstream
// filter and is forwarded only when non-empty.
type MatchPage struct {
	Start int
	Count int
	Type  string
}

// APIError is a non-2xx reply from the upstream API. StatusCode is the
// upstream's own status and is forwarded to API callers verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Message)
}
