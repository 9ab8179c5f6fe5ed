package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/bryanchriswhite/swaybar-helper/internal/config"
	"github.com/bryanchriswhite/swaybar-helper/internal/logger"
	"github.com/bryanchriswhite/swaybar-helper/internal/status"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// Server mirrors the status line over HTTP and WebSocket.
type Server struct {
	router   *mux.Router
	hub      *status.Hub
	cfg      config.Config
	upgrader websocket.Upgrader
	srv      *http.Server
}

// NewServer creates a new API server
func NewServer(hub *status.Hub, cfg config.Config) *Server {
	s := &Server{
		router: mux.NewRouter(),
		hub:    hub,
		cfg:    cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // status bars and local widgets connect from anywhere
			},
		},
	}

	s.setupRoutes()
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/status", s.handleGetStatus).Methods("GET")
	api.HandleFunc("/status/stream", s.handleStatusStream)
	api.HandleFunc("/config", s.handleGetConfig).Methods("GET")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// Handler returns the router wrapped with CORS headers.
func (s *Server) Handler() http.Handler {
	return s.enableCORS(s.router)
}

// Serve accepts connections on ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	logger.WithComponent("api").Info().Str("addr", ln.Addr().String()).Msg("Serving status mirror")

	err := s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server started by Serve.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// enableCORS adds CORS headers
func (s *Server) enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// HTTP Handlers

func (s *Server) handleGetStatus(w http.ResponseWriter, r *http.Request) {
	current, ok := s.hub.Current()
	if !ok {
		http.Error(w, "No status yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(current)
}

func (s *Server) handleStatusStream(w http.ResponseWriter, r *http.Request) {
	log := logger.WithComponent("api")

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	updates := s.hub.Subscribe()
	defer s.hub.Unsubscribe(updates)

	// Detect client hang-up; we never expect messages from it.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if current, ok := s.hub.Current(); ok {
		if err := conn.WriteJSON(current); err != nil {
			log.Debug().Err(err).Msg("WebSocket write failed")
			return
		}
	}

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case u, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(u); err != nil {
				log.Debug().Err(err).Msg("WebSocket write failed")
				return
			}
		}
	}
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.cfg)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"version": Version,
	})
}
