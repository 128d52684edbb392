// Package server dispatches tool calls to the filesystem gateway over HTTP
// and stdio transports.
package server

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"lean-mcp/internal/gateway"
)

// Config contains server configuration values.
type Config struct {
	Host  string
	Port  string
	Token string
}

// Server contains the configured router, tool registry, and gateway.
type Server struct {
	cfg     Config
	log     *zap.Logger
	router  *chi.Mux
	gateway *gateway.Gateway
	tools   map[string]toolSpec
}

// New constructs a Server with middleware, routes, and the tool registry
// configured.
func New(cfg Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	gw := gateway.New(log.Named("gateway"))
	s := &Server{
		cfg:     cfg,
		log:     log,
		router:  chi.NewRouter(),
		gateway: gw,
		tools:   newRegistry(gw),
	}
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Get("/health", s.handleHealth)

	s.router.Route("/mcp", func(r chi.Router) {
		r.Use(s.auth)
		r.Get("/tools", s.handleListTools)
		r.Post("/call", s.handleCall)
	})

	return s
}

// Router exposes the root HTTP handler for the server.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.Token == "" {
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+s.cfg.Token {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListTools(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(s.tools))
	for name := range s.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	tools := make([]Tool, 0, len(names))
	for _, name := range names {
		spec := s.tools[name]
		tools = append(tools, Tool{Name: name, Description: spec.Description, InputSchema: spec.InputSchema})
	}
	writeJSON(w, http.StatusOK, map[string]any{"tools": tools})
}

// handleCall rejects unknown tool names before any gateway invocation. A
// Failure result from the gateway is still a 200: a tool execution error,
// not a transport error.
func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
	var req CallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	spec, ok := s.tools[req.Name]
	if !ok {
		http.Error(w, "unknown tool", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, spec.invoke(r.Context(), req.Arguments))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
