package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/enfa"
	"github.com/aretw0/enfa/pkg/adapters/file"
	"github.com/aretw0/enfa/pkg/domain"
	"github.com/aretw0/enfa/pkg/ports"
	"github.com/aretw0/enfa/pkg/validation"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MaxBodySize bounds request bodies accepted by the API.
const MaxBodySize = 1 << 20

// Server exposes a Converter over HTTP.
type Server struct {
	Converter *enfa.Converter
	Store     ports.ConversionStore

	logger  *slog.Logger
	metrics http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics mounts h under GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates the HTTP handler for the conversion API.
func NewHandler(conv *enfa.Converter, store ports.ConversionStore, opts ...Option) http.Handler {
	s := &Server{Converter: conv, Store: store}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Post("/convert", s.Convert)
	r.Post("/closures", s.Closures)
	r.Route("/conversions", func(r chi.Router) {
		r.Get("/", s.ListConversions)
		r.Get("/{id}", s.GetConversion)
		r.Delete("/{id}", s.DeleteConversion)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error    string   `json:"error"`
	Problems []string `json:"problems,omitempty"`
}

// ConvertResponse is a stored conversion plus the edges it changed.
type ConvertResponse struct {
	*domain.Conversion
	Diff *domain.TransitionDiff `json:"diff,omitempty"`
}

// Convert handles the POST /convert request.
func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	a, ok := s.readAutomaton(w, r)
	if !ok {
		return
	}

	conv, err := s.Converter.Convert(r.Context(), a)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		s.logger.Error("Convert failed", "err", err)
		return
	}
	conv.ID = uuid.NewString()

	if s.Store != nil {
		if err := s.Store.Save(r.Context(), conv.ID, conv); err != nil {
			s.writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to store conversion: %w", err))
			s.logger.Error("Convert: store failed", "err", err, "id", conv.ID)
			return
		}
	}

	s.logger.Debug("Convert: done", "id", conv.ID, "had_epsilon", conv.HadEpsilon)
	s.writeJSON(w, http.StatusCreated, ConvertResponse{
		Conversion: conv,
		Diff:       domain.Diff(a.Transitions, conv.Transitions),
	})
}

// Closures handles the POST /closures request.
func (s *Server) Closures(w http.ResponseWriter, r *http.Request) {
	a, ok := s.readAutomaton(w, r)
	if !ok {
		return
	}

	closures, err := s.Converter.Closures(r.Context(), a)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		s.logger.Error("Closures failed", "err", err)
		return
	}
	s.writeJSON(w, http.StatusOK, closures)
}

// ListConversions handles the GET /conversions request.
func (s *Server) ListConversions(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	ids, err := s.Store.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		s.logger.Error("List failed", "err", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, ids)
}

// GetConversion handles the GET /conversions/{id} request.
func (s *Server) GetConversion(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id := chi.URLParam(r, "id")
	conv, err := s.Store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrConversionNotFound) {
			s.writeError(w, http.StatusNotFound, err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		s.logger.Error("Load failed", "err", err, "id", id)
		return
	}
	s.writeJSON(w, http.StatusOK, conv)
}

// DeleteConversion handles the DELETE /conversions/{id} request.
func (s *Server) DeleteConversion(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id := chi.URLParam(r, "id")
	if _, err := s.Store.Load(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrConversionNotFound) {
			s.writeError(w, http.StatusNotFound, err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := s.Store.Delete(r.Context(), id); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		s.logger.Error("Delete failed", "err", err, "id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "enfa-http",
		"version": strings.TrimSpace(enfa.Version),
	})
}

// readAutomaton decodes and validates the request body.
// On failure it has already written the response.
func (s *Server) readAutomaton(w http.ResponseWriter, r *http.Request) (domain.Automaton, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		s.writeError(w, http.StatusRequestEntityTooLarge, err)
		return domain.Automaton{}, false
	}

	a, err := file.Decode(body, file.FormatJSON)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		s.logger.Warn("Invalid automaton", "err", err, "size", len(body))
		return domain.Automaton{}, false
	}
	return a, true
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.Store == nil {
		s.writeError(w, http.StatusNotImplemented, errors.New("no conversion store configured"))
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	resp := ErrorResponse{Error: err.Error()}
	for _, p := range validation.ValidationErrors(err) {
		resp.Problems = append(resp.Problems, p.Error())
	}
	if len(resp.Problems) > 1 {
		resp.Error = fmt.Sprintf("%d validation errors", len(resp.Problems))
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
