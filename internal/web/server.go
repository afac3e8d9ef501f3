// Package web serves the lookup engine as an HTML page and a JSON API.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/f3rmion/unilookup/internal/details"
	"github.com/f3rmion/unilookup/internal/logging"
	"github.com/f3rmion/unilookup/internal/lookup"
	"github.com/f3rmion/unilookup/internal/ucd"
	"github.com/f3rmion/unilookup/internal/uni"
)

//go:embed templates/index.html
var templates embed.FS

// Server renders lookup results over HTTP.
type Server struct {
	engine  *lookup.Engine
	inspect *details.Inspector
	page    *template.Template
	prefix  string
}

// pageData is the input of the index template.
type pageData struct {
	Action  string
	Query   string
	Records []uni.Record
	Error   string
}

// apiEntry is one element of the JSON API response.
type apiEntry struct {
	*uni.Record
	Error   string              `json:"error,omitempty"`
	Details *details.Properties `json:"details,omitempty"`
}

type apiResponse struct {
	Query   string     `json:"query"`
	Results []apiEntry `json:"results"`
}

// New creates a server. prefix mounts every route below a URL path such as "/unicode".
func New(engine *lookup.Engine, inspect *details.Inspector, prefix string) (*Server, error) {
	page, err := template.New("index.html").
		Funcs(template.FuncMap{"isControl": ucd.IsASCIIControl}).
		ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Server{
		engine:  engine,
		inspect: inspect,
		page:    page,
		prefix:  strings.TrimSuffix(prefix, "/"),
	}, nil
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.prefix+"/{$}", securityHeaders(s.handleIndex))
	mux.HandleFunc("GET "+s.prefix+"/api/lookup", securityHeaders(s.handleAPI))
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logging.Info.Printf("Starting server on http://%s%s/", addr, s.prefix)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.FormValue("query")
	data := pageData{Action: s.prefix + "/", Query: query}
	if query != "" {
		for _, e := range s.engine.Lookup(query) {
			if e.IsError() {
				data.Error = e.Error
				continue
			}
			data.Records = append(data.Records, *e.Record)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		logging.Info.Printf("rendering page: %v", err)
	}
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	resp := apiResponse{Query: query, Results: []apiEntry{}}
	if query != "" {
		for _, e := range s.engine.Lookup(query) {
			if e.IsError() {
				resp.Results = append(resp.Results, apiEntry{Error: e.Error})
				continue
			}
			props := s.inspect.Inspect(e.Record.CP)
			resp.Results = append(resp.Results, apiEntry{Record: e.Record, Details: &props})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Info.Printf("encoding response: %v", err)
	}
}

func securityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next(w, r)
	}
}
