package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"showboat/internal/api"
	"showboat/internal/chunk"
	"showboat/internal/config"
	"showboat/internal/ingest"
	"showboat/internal/logging"
	"showboat/internal/markdown"
)

//go:embed templates/*.html
var templateFS embed.FS

// pollInterval is how often the document view fetches new chunks.
const pollInterval = 2 * time.Second

// maxUploadBytes bounds multipart form memory for image uploads.
const maxUploadBytes = 32 << 20

// Server hosts the showboat HTTP surface.
type Server struct {
	cfg       *config.Config
	store     *chunk.Store
	receiver  *ingest.Receiver
	renderer  *markdown.Renderer
	logger    *slog.Logger
	authorize AuthorizeFunc
	templates *template.Template

	mux      *http.ServeMux
	listener net.Listener
	server   *http.Server
}

// Option customizes server construction.
type Option func(*Server)

// WithAuthorizer installs a read-path authorization gate. It applies to the
// document and index views only; the receive token check is separate.
func WithAuthorizer(authorize AuthorizeFunc) Option {
	return func(s *Server) {
		if authorize != nil {
			s.authorize = authorize
		}
	}
}

// New constructs a Server over the given store.
func New(cfg *config.Config, store *chunk.Store, logger *slog.Logger, opts ...Option) (*Server, error) {
	if cfg == nil || store == nil {
		return nil, errors.New("config and store are required")
	}

	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		store:     store,
		receiver:  ingest.NewReceiver(store, logger),
		renderer:  markdown.NewRenderer(),
		logger:    logging.WithComponent(logger, "http-server"),
		authorize: AllowAll,
		templates: templates,
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/receive", s.handleReceive)
	mux.HandleFunc("/document/", s.handleDocument)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/", s.handleIndex)
	s.mux = mux

	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler returns the route table, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start begins serving on the configured bind address. The server shuts
// down when ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Server.Bind)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("http server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Stop shuts the server down outside of context cancellation.
func (s *Server) Stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// Addr returns the bound listen address once Start has succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	health, err := s.store.CheckHealth(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.FromHealth(health))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
