package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/structdict"
	"github.com/aretw0/structdict/internal/dataio"
	"github.com/aretw0/structdict/pkg/record"
	"github.com/aretw0/structdict/pkg/registry"
	"github.com/aretw0/structdict/pkg/schema"
)

const maxBodyBytes = 1 << 20

// Server exposes the variant registry over HTTP.
type Server struct {
	Registry *registry.Registry
	Logger   *slog.Logger
}

// VariantInfo describes one variant.
type VariantInfo struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Fields      *schema.Schema[string] `json:"fields"`
}

// ValidateResponse is returned for a conforming document.
type ValidateResponse struct {
	Variant string         `json:"variant"`
	Record  map[string]any `json:"record"`
	Text    string         `json:"text"`
}

// Problem is returned for a document the variant rejects.
type Problem struct {
	Kind       string   `json:"kind"`
	Message    string   `json:"message"`
	Missing    []string `json:"missing,omitempty"`
	Extra      []string `json:"extra,omitempty"`
	TypeErrors []string `json:"type_errors,omitempty"`
}

// NewHandler creates the HTTP handler. metrics, when non-nil, is served at /metrics.
func NewHandler(reg *registry.Registry, metrics http.Handler, logger *slog.Logger) http.Handler {
	s := &Server{Registry: reg, Logger: logger}
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/variants", s.ListVariants)
	r.Get("/variants/{name}", s.GetVariant)
	r.Post("/variants/{name}/validate", s.Validate)
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}

	return r
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "structdict-http",
		"version": strings.TrimSpace(structdict.Version),
	})
}

// ListVariants handles GET /variants.
func (s *Server) ListVariants(w http.ResponseWriter, r *http.Request) {
	names := s.Registry.Names()
	infos := make([]VariantInfo, 0, len(names))
	for _, name := range names {
		v, err := s.Registry.Lookup(name)
		if err != nil {
			continue
		}
		infos = append(infos, info(v))
	}
	s.writeJSON(w, http.StatusOK, infos)
}

// GetVariant handles GET /variants/{name}.
func (s *Server) GetVariant(w http.ResponseWriter, r *http.Request) {
	v, err := s.Registry.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, info(v))
}

// Validate handles POST /variants/{name}/validate.
// The body is a JSON object, or YAML when Content-Type says so.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	v, err := s.Registry.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	format := dataio.JSON
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		format = dataio.YAML
	}
	data, err := dataio.Decode(body, format)
	if err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := v.New(dataio.Conform(data, v.Schema()))
	if err != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, problem(err))
		return
	}

	s.writeJSON(w, http.StatusOK, ValidateResponse{
		Variant: v.Name(),
		Record:  rec.ToMap(),
		Text:    rec.String(),
	})
}

func info(v *record.Variant[string]) VariantInfo {
	return VariantInfo{Name: v.Name(), Description: v.Description(), Fields: v.Schema()}
}

func problem(err error) Problem {
	p := Problem{Kind: record.KindOf(err), Message: err.Error()}
	var initErr *record.InitializationError[string]
	if errors.As(err, &initErr) {
		p.Missing = initErr.Missing
		p.Extra = initErr.Extra
		p.TypeErrors = initErr.TypeErrors
	}
	return p
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && s.Logger != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
