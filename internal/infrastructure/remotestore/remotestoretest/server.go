// Package remotestoretest provides an in-memory fake of the remote JSON store for tests.
package remotestoretest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Server emulates the collection-per-entity JSON REST store:
//
//	GET   /{collection}.json        -> {key: record} or null
//	GET   /{collection}/{key}.json  -> record or null
//	POST  /{collection}.json        -> {"name": key}
//	PATCH /{collection}/{key}.json  -> merged record
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	data        map[string]map[string]map[string]any
	seq         int
	failStatus  int
	failCount   int
	requests    []string
	lastPayload map[string]any
}

func NewServer() *Server {
	s := &Server{data: map[string]map[string]map[string]any{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Seed stores record under key in collection.
func (s *Server) Seed(collection, key string, record map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[collection] == nil {
		s.data[collection] = map[string]map[string]any{}
	}
	s.data[collection][key] = record
}

// Record returns a copy of a stored record, or nil.
func (s *Server) Record(collection, key string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.data[collection][key]
	if !ok {
		return nil
	}
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

// Count returns the number of records in collection.
func (s *Server) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data[collection])
}

// FailNext makes the next n requests answer with status.
func (s *Server) FailNext(n, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failCount = n
	s.failStatus = status
}

// Requests returns "METHOD path?query" for every request served so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// LastPayload returns the decoded body of the last POST or PATCH.
func (s *Server) LastPayload() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPayload
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := r.Method + " " + r.URL.Path
	if r.URL.RawQuery != "" {
		entry += "?" + r.URL.RawQuery
	}
	s.requests = append(s.requests, entry)

	if s.failCount > 0 {
		s.failCount--
		http.Error(w, `{"error":"injected failure"}`, s.failStatus)
		return
	}

	path := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), ".json")
	parts := strings.SplitN(path, "/", 2)
	collection := parts[0]
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}

	switch {
	case r.Method == http.MethodGet && key == "":
		coll := s.data[collection]
		if len(coll) == 0 {
			writeJSON(w, nil)
			return
		}
		writeJSON(w, coll)
	case r.Method == http.MethodGet:
		rec, ok := s.data[collection][key]
		if !ok {
			writeJSON(w, nil)
			return
		}
		writeJSON(w, rec)
	case r.Method == http.MethodPost && key == "":
		body, ok := s.decode(w, r)
		if !ok {
			return
		}
		s.seq++
		newKey := fmt.Sprintf("-K%06d", s.seq)
		if s.data[collection] == nil {
			s.data[collection] = map[string]map[string]any{}
		}
		s.data[collection][newKey] = body
		writeJSON(w, map[string]string{"name": newKey})
	case r.Method == http.MethodPatch && key != "":
		body, ok := s.decode(w, r)
		if !ok {
			return
		}
		if s.data[collection] == nil {
			s.data[collection] = map[string]map[string]any{}
		}
		rec := s.data[collection][key]
		if rec == nil {
			rec = map[string]any{}
			s.data[collection][key] = rec
		}
		for k, v := range body {
			rec[k] = v
		}
		writeJSON(w, body)
	default:
		http.Error(w, `{"error":"unsupported"}`, http.StatusMethodNotAllowed)
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, `{"error":"read"}`, http.StatusBadRequest)
		return nil, false
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		http.Error(w, `{"error":"Invalid data; couldn't parse JSON object."}`, http.StatusBadRequest)
		return nil, false
	}
	s.lastPayload = body
	return body, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
