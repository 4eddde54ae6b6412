package agent

import (
	"hexothello/game"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// FindMoveRequest is the body of POST /findmove.
type FindMoveRequest struct {
	Position game.Position `json:"position"`
	Color    game.Color    `json:"color"`
}

// NewServer exposes agent over HTTP: POST /findmove and GET /healthz.
func NewServer(agent Agent) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/findmove", func(w http.ResponseWriter, r *http.Request) {
		handleFindMove(agent, w, r)
	})
	return r
}

// StartAgentServer serves agent on addr until the listener fails.
func StartAgentServer(addr string, agent Agent) error {
	log.Info().Msgf("starting agent server on %s", addr)
	return http.ListenAndServe(addr, NewServer(agent))
}

func handleFindMove(agent Agent, w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	var req FindMoveRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Color != game.White && req.Color != game.Black {
		http.Error(w, "bad request: unknown color", http.StatusBadRequest)
		return
	}
	req.Position.Recount()
	if err := req.Position.Validate(); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	move, metric := agent.FindMove(req.Position, req.Color)
	log.Debug().Msgf("[%s] found %s after %d nodes", middleware.GetReqID(r.Context()), move, metric.Nodes)

	out, err := sonic.Marshal(move)
	if err != nil {
		http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(out)
}
