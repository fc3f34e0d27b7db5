package domain

// Game identifies one of the supported game titles.
type Game string

const (
	GameLoL Game = "lol"
	GameTFT Game = "tft"
	GameLoR Game = "lor"
	GameVal Game = "val"
)

// Games lists every supported game identifier.
var Games = []Game{GameLoL, GameTFT, GameLoR, GameVal}

// ParseGame validates a raw game identifier from a URL path.
func ParseGame(s string) (Game, bool) {
	switch Game(s) {
	case GameLoL, GameTFT, GameLoR, GameVal:
		return Game(s), true
	}
	return "", false
}
