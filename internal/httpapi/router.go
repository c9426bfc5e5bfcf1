// Package httpapi is the console's JSON/websocket surface: a single
// textual command endpoint, read endpoints for the current show and
// DMX output, and a websocket stream of pubsub events (§4.13/§6.1).
package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"

	"github.com/bbernstein/console-core/internal/engine"
	"github.com/bbernstein/console-core/internal/pubsub"
	"github.com/bbernstein/console-core/internal/show"
	"github.com/bbernstein/console-core/pkg/dmx"
)

// Options configures the router's CORS policy and request timeout.
type Options struct {
	CORSOrigin     string
	RequestTimeout time.Duration
	Development    bool
}

// NewRouter builds the chi router exposing the console's HTTP and
// websocket API, wired to eng for command execution and pub for the
// event stream.
func NewRouter(eng *engine.Engine, pub *pubsub.PubSub, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{opts.CORSOrigin, "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		Debug:            opts.Development,
	})
	r.Use(corsMiddleware.Handler)

	h := &handlers{eng: eng, pub: pub}

	r.Get("/health", h.health)
	r.Post("/commands", h.execCommand)
	r.Get("/show", h.getShow)
	r.Get("/dmx", h.getDMX)
	r.Get("/dmx/{universe}", h.getUniverse)
	r.Get("/ws", h.websocketStream)

	return r
}

type handlers struct {
	eng *engine.Engine
	pub *pubsub.PubSub
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type commandRequest struct {
	Line string `json:"line"`
}

type commandResponse struct {
	Error string              `json:"error,omitempty"`
	DMX   map[string][512]int `json:"dmx,omitempty"`
}

// execCommand parses and executes one textual command line (§6.1),
// replying with the resolved multiverse on success.
func (h *handlers) execCommand(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commandResponse{Error: "malformed request body"})
		return
	}

	mv, err := h.eng.Execute(r.Context(), req.Line)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, commandResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, commandResponse{DMX: encodeMultiverse(mv)})
}

// getShow returns a read-only JSON projection of the live show state,
// primarily the patch and object catalogues a client needs to render
// a console UI.
func (h *handlers) getShow(w http.ResponseWriter, r *http.Request) {
	sh, err := h.eng.Snapshot(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, projectShow(sh))
}

func (h *handlers) getDMX(w http.ResponseWriter, r *http.Request) {
	mv, err := h.eng.Resolve(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, encodeMultiverse(mv))
}

func (h *handlers) getUniverse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "universe")
	mv, err := h.eng.Resolve(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}
	full := encodeMultiverse(mv)
	values, ok := full[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown universe " + id})
		return
	}
	writeJSON(w, http.StatusOK, values)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// websocketStream pushes every TopicShowChanged and TopicDMXOutput
// event to the connected client as a JSON envelope, until the socket
// closes.
func (h *handlers) websocketStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("httpapi: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	changed := h.pub.Subscribe(pubsub.TopicShowChanged, nil, 16)
	output := h.pub.Subscribe(pubsub.TopicDMXOutput, nil, 16)
	defer h.pub.Unsubscribe(changed)
	defer h.pub.Unsubscribe(output)

	go drainPings(ctx, conn)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-changed.Channel:
			if !ok {
				return
			}
			if err := conn.WriteJSON(envelope{Topic: string(pubsub.TopicShowChanged), Payload: msg}); err != nil {
				return
			}
		case msg, ok := <-output.Channel:
			if !ok {
				return
			}
			mv, _ := msg.(*dmx.Multiverse)
			if err := conn.WriteJSON(envelope{Topic: string(pubsub.TopicDMXOutput), Payload: encodeMultiverse(mv)}); err != nil {
				return
			}
		}
	}
}

type envelope struct {
	Topic   string      `json:"topic"`
	Payload interface{} `json:"payload"`
}

// drainPings reads (and discards) client frames so gorilla/websocket's
// control-frame handling (pong/close) keeps running; it exits when the
// connection errors or ctx is cancelled.
func drainPings(ctx context.Context, conn *websocket.Conn) {
	for {
		if ctx.Err() != nil {
			return
		}
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func encodeMultiverse(mv *dmx.Multiverse) map[string][512]int {
	out := make(map[string][512]int)
	if mv == nil {
		return out
	}
	for id, u := range mv.Universes() {
		var vals [512]int
		raw := u.Values()
		for i, v := range raw {
			vals[i] = int(v)
		}
		out[id.String()] = vals
	}
	return out
}

type showProjection struct {
	FixtureCount  int `json:"fixtureCount"`
	FixtureGroups int `json:"fixtureGroupCount"`
	Cues          int `json:"cueCount"`
	Sequences     int `json:"sequenceCount"`
	Executors     int `json:"executorCount"`
}

func projectShow(sh *show.Show) showProjection {
	return showProjection{
		FixtureCount:  len(sh.Patch.Fixtures()),
		FixtureGroups: len(sh.FixtureGroups()),
		Cues:          len(sh.Cues()),
		Sequences:     len(sh.Sequences()),
		Executors:     len(sh.Executors()),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
