// Package server exposes a small operational REST API over the poller state.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/briefly-app/briefly/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/poll_runner.go -pkg mocks -skip-ensure -fmt goimports . PollRunner

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	store   Store
	poller  PollRunner
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
	polling    bool // guards against overlapping manual polls
}

// Store provides read access to subscriptions and trackers
type Store interface {
	ListChannels(ctx context.Context) ([]domain.Channel, error)
	GetSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error)
	ListTrackers(ctx context.Context) ([]domain.ChannelTracker, error)
}

// PollRunner triggers an immediate poll cycle
type PollRunner interface {
	RunOnce(ctx context.Context) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, store Store, poller PollRunner, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		store:   store,
		poller:  poller,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("briefly", "briefly-app", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /channels", s.channelsHandler)
		r.HandleFunc("GET /channels/{id}/subscribers", s.subscribersHandler)
		r.HandleFunc("POST /poll", s.pollHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// channelStatus is a channel with its tracker state and subscriber count
type channelStatus struct {
	ID            string    `json:"id"`
	Title         string    `json:"title,omitempty"`
	Subscribers   int       `json:"subscribers"`
	LastItemID    string    `json:"last_item_id,omitempty"`
	PendingItemID string    `json:"pending_item_id,omitempty"`
	RetryCount    int       `json:"retry_count"`
	LastUpdated   time.Time `json:"last_updated"`
}

// channelsHandler returns all subscribed channels with their tracker state
func (s *Server) channelsHandler(w http.ResponseWriter, r *http.Request) {
	channels, err := s.store.ListChannels(r.Context())
	if err != nil {
		RenderError(w, r, fmt.Errorf("list channels: %w", err), http.StatusInternalServerError)
		return
	}
	trackers, err := s.store.ListTrackers(r.Context())
	if err != nil {
		RenderError(w, r, fmt.Errorf("list trackers: %w", err), http.StatusInternalServerError)
		return
	}

	byChannel := make(map[string]domain.ChannelTracker, len(trackers))
	for _, tr := range trackers {
		byChannel[tr.ChannelID] = tr
	}

	result := make([]channelStatus, 0, len(channels))
	for _, channel := range channels {
		subs, err := s.store.GetSubscribers(r.Context(), channel.ID)
		if err != nil {
			RenderError(w, r, fmt.Errorf("get subscribers for %s: %w", channel.ID, err), http.StatusInternalServerError)
			return
		}
		cs := channelStatus{ID: channel.ID, Title: channel.Title, Subscribers: len(subs)}
		if tr, ok := byChannel[channel.ID]; ok {
			cs.LastItemID = tr.LastItemID
			cs.PendingItemID = tr.PendingItemID
			cs.RetryCount = tr.RetryCount
			cs.LastUpdated = tr.LastUpdated
		}
		result = append(result, cs)
	}
	RenderJSON(w, r, http.StatusOK, result)
}

// subscribersHandler returns the subscribers of a single channel
func (s *Server) subscribersHandler(w http.ResponseWriter, r *http.Request) {
	channelID := r.PathValue("id")
	subs, err := s.store.GetSubscribers(r.Context(), channelID)
	if err != nil {
		RenderError(w, r, fmt.Errorf("get subscribers: %w", err), http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, subs)
}

// pollHandler triggers an immediate poll cycle in the background. Rejects
// the request if a manually triggered cycle is still running.
func (s *Server) pollHandler(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	if s.polling {
		s.lock.Unlock()
		RenderError(w, r, errors.New("poll already in progress"), http.StatusConflict)
		return
	}
	s.polling = true
	s.lock.Unlock()

	go func() {
		defer func() {
			s.lock.Lock()
			s.polling = false
			s.lock.Unlock()
		}()
		if err := s.poller.RunOnce(context.Background()); err != nil {
			lgr.Printf("[WARN] manual poll failed: %v", err)
		}
	}()

	RenderJSON(w, r, http.StatusAccepted, map[string]string{"result": "poll started"})
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
