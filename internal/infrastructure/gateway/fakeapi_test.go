package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"ticketdesk/internal/shared/logger"
)

// fakeAPI is a minimal in-memory implementation of the remote REST contract.
type fakeAPI struct {
	mu       sync.Mutex
	tickets  map[string]map[string]any
	users    map[string]map[string]any
	requests []recordedRequest
	next     int
}

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

var fakeNow = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		next: 2,
		tickets: map[string]map[string]any{
			"TKT-001": {
				"id": "TKT-001", "title": "Login page not loading correctly",
				"description": "Fails on Firefox", "status": "open", "priority": "high",
				"assignedTo": "user-001", "createdBy": "user-002",
				"assignee":  map[string]any{"id": "user-001", "name": "Alex Johnson", "email": "alex.johnson@example.com"},
				"tags":      []any{"frontend", "bug"},
				"createdAt": "2026-05-27T08:00:00Z", "updatedAt": "2026-06-01T00:00:00",
			},
		},
		users: map[string]map[string]any{
			"user-001": {"id": "user-001", "name": "Alex Johnson", "email": "alex.johnson@example.com"},
			"user-002": {"id": "user-002", "name": "Sarah Chen", "email": "sarah.chen@example.com", "avatar": "https://randomuser.me/api/portraits/women/44.jpg"},
		},
	}
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /tickets", func(w http.ResponseWriter, r *http.Request) {
		f.record(r, nil)
		f.mu.Lock()
		data := make([]any, 0, len(f.tickets))
		for _, t := range f.tickets {
			data = append(data, t)
		}
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{
			"data": data,
			"meta": map[string]any{"totalCount": 57, "page": 1, "limit": 10, "totalPages": 6, "openCount": 30, "inProgressCount": 20, "resolvedCount": 7},
		})
	})

	mux.HandleFunc("GET /tickets/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.record(r, nil)
		f.mu.Lock()
		t, ok := f.tickets[r.PathValue("id")]
		f.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Ticket " + r.PathValue("id") + " not found"})
			return
		}
		writeJSON(w, http.StatusOK, t)
	})

	mux.HandleFunc("POST /tickets", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(r)
		f.record(r, body)
		f.mu.Lock()
		id := fmt.Sprintf("TKT-%03d", f.next)
		f.next++
		body["id"] = id
		body["createdAt"] = fakeNow.Format(time.RFC3339)
		body["updatedAt"] = fakeNow.Format(time.RFC3339)
		f.tickets[id] = body
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, body)
	})

	mux.HandleFunc("PATCH /tickets/{id}", func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(r)
		f.record(r, body)
		f.mu.Lock()
		defer f.mu.Unlock()
		t, ok := f.tickets[r.PathValue("id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		for k, v := range body {
			t[k] = v
		}
		t["updatedAt"] = fakeNow.Add(time.Minute).Format(time.RFC3339)
		writeJSON(w, http.StatusOK, t)
	})

	mux.HandleFunc("DELETE /tickets/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.record(r, nil)
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, ok := f.tickets[r.PathValue("id")]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Ticket not found"})
			return
		}
		delete(f.tickets, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		f.record(r, nil)
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []any{f.users["user-001"], f.users["user-002"]},
			"meta": map[string]any{"totalCount": 2},
		})
	})

	mux.HandleFunc("GET /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.record(r, nil)
		u, ok := f.users[r.PathValue("id")]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "User not found"})
			return
		}
		writeJSON(w, http.StatusOK, u)
	})

	return mux
}

func (f *fakeAPI) record(r *http.Request, body map[string]any) {
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Body: body})
	f.mu.Unlock()
}

func (f *fakeAPI) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func decodeBody(r *http.Request) map[string]any {
	body := map[string]any{}
	data, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(data, &body)
	return body
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func setupGateway(t *testing.T, h http.Handler) (*TicketGateway, *UserGateway) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	client := NewClient(Config{BaseURL: srv.URL + "/"}, logger.NewNop())
	return NewTicketGateway(client), NewUserGateway(client)
}
