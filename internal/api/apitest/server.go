// Package apitest runs an in-memory profile backend for tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"

	"github.com/ruminaider/profilectl/internal/profiles"
)

// Server speaks the profile REST protocol over an httptest server. Profiles
// are kept per username.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	byUser    map[string][]profiles.Profile
	defaults  profiles.Defaults
	generated profiles.Generated
	failures  map[string]failure
	requests  []string
}

type failure struct {
	status  int
	message string
}

// NewServer starts a server that is closed when t finishes.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		byUser:   map[string][]profiles.Profile{},
		failures: map[string]failure{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/profiles", s.list)
	mux.HandleFunc("POST /api/profiles", s.create)
	mux.HandleFunc("PUT /api/profiles/{name}", s.update)
	mux.HandleFunc("DELETE /api/profiles/{name}", s.delete)
	mux.HandleFunc("POST /api/create-chat-profile", s.generate)
	mux.HandleFunc("GET /api/default-params", s.params)

	s.Server = httptest.NewServer(s.middleware(mux))
	t.Cleanup(s.Close)
	return s
}

// Seed replaces the profiles stored for username.
func (s *Server) Seed(username string, list ...profiles.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[username] = slices.Clone(list)
}

// Profiles returns the profiles stored for username.
func (s *Server) Profiles(username string) []profiles.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.byUser[username])
}

// SetDefaults sets the parameter defaults the server reports.
func (s *Server) SetDefaults(d profiles.Defaults) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults = d
}

// SetGenerated sets the draft returned by the generator.
func (s *Server) SetGenerated(g profiles.Generated) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generated = g
}

// Fail makes every request with the given method answer status with an
// {"error": message} body.
func (s *Server) Fail(method string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = failure{status: status, message: message}
}

// FailPath is like Fail but only for requests to path.
func (s *Server) FailPath(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = failure{status: status, message: message}
}

// Requests returns "METHOD path" for every request served so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		f, failing := s.failures[r.Method+" "+r.URL.Path]
		if !failing {
			f, failing = s.failures[r.Method]
		}
		s.mu.Unlock()

		if failing {
			writeJSON(w, f.status, map[string]string{"error": f.message})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Profiles(r.URL.Query().Get("username")))
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var p profiles.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	user := r.URL.Query().Get("username")

	s.mu.Lock()
	s.byUser[user] = append(s.byUser[user], p)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	var p profiles.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	user, name := r.URL.Query().Get("username"), r.PathValue("name")

	s.mu.Lock()
	list := s.byUser[user]
	i := slices.IndexFunc(list, func(p profiles.Profile) bool { return p.Name == name })
	if i >= 0 {
		list[i] = p
	}
	s.mu.Unlock()

	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "profile not found"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	user, name := r.URL.Query().Get("username"), r.PathValue("name")

	s.mu.Lock()
	s.byUser[user] = slices.DeleteFunc(s.byUser[user], func(p profiles.Profile) bool { return p.Name == name })
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Profession string `json:"profession"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	s.mu.Lock()
	g := s.generated
	s.mu.Unlock()
	if g == (profiles.Generated{}) {
		g = profiles.Generated{
			Name:        req.Profession,
			DisplayName: req.Profession,
			Icon:        "bi-robot",
			Prompt:      "You are a " + req.Profession + ".",
		}
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) params(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	d := s.defaults
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, d)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
