// Package web serves the simulation API.
package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// Server exposes game results over HTTP. The game endpoint currently
// returns a canned tableau so clients have a stable contract to build
// against.
// TODO: run the engine seeded by the game id instead of returning the
// fixture.
type Server struct{}

func NewServer() *Server {
	return &Server{}
}

// Routes builds the handler for the API surface.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/game/", s.handleGame)
	return mux
}

// Start serves the API on addr until the listener fails.
func (s *Server) Start(addr string) error {
	log.Info().Msgf("serving simulation API on %s", addr)
	return http.ListenAndServe(addr, s.Routes())
}

func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	gameID := strings.TrimPrefix(r.URL.Path, "/game/")
	if gameID == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(fixtureGame()); err != nil {
		log.Error().Err(err).Msg("failed to encode game response")
	}
}

// playedTile is one entry of the tableau: a tile with the turn it hit the
// table. Chicken-foot subtrees nest as arrays after their parent tile.
type playedTile struct {
	A        int  `json:"a"`
	B        int  `json:"b"`
	Turn     int  `json:"turn"`
	Inverted bool `json:"inverted"`
}

// handTile carries the hand bookkeeping for the replay view.
type handTile struct {
	A               int `json:"a"`
	B               int `json:"b"`
	TurnHandAdded   int `json:"turnHandAdded"`
	TurnHandRemoved int `json:"turnHandRemoved"`
}

func fixtureGame() map[string]any {
	return map[string]any{
		"tableau": []any{
			playedTile{A: 9, B: 9, Turn: 1},
			playedTile{A: 9, B: 1, Turn: 2},
			playedTile{A: 9, B: 4, Turn: 3},
			[]any{
				playedTile{A: 9, B: 2, Turn: 4},
				[]any{
					playedTile{A: 2, B: 2, Turn: 5},
					playedTile{A: 4, B: 2, Turn: 6, Inverted: true},
					playedTile{A: 2, B: 1, Turn: 7},
				},
			},
		},
		"maxTurn": 7,
		"p1Hand": []handTile{
			{A: 9, B: 1, TurnHandAdded: 1, TurnHandRemoved: 2},
			{A: 9, B: 2, TurnHandAdded: 1, TurnHandRemoved: 4},
			{A: 4, B: 2, TurnHandAdded: 6, TurnHandRemoved: 6},
		},
		"p2Hand": []handTile{
			{A: 9, B: 9, TurnHandAdded: 1, TurnHandRemoved: 1},
			{A: 9, B: 4, TurnHandAdded: 1, TurnHandRemoved: 3},
			{A: 2, B: 2, TurnHandAdded: 1, TurnHandRemoved: 5},
			{A: 2, B: 1, TurnHandAdded: 7, TurnHandRemoved: 7},
		},
	}
}
