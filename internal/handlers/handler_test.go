// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests:
// a miniredis-backed cache and session store, and a fake forum backend
// that counts how often each endpoint is hit.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"forumfront/internal/api"
	"forumfront/internal/auth"
	"forumfront/internal/cache"
	"forumfront/internal/i18n"
	"forumfront/internal/middleware"
	"forumfront/internal/models"
	"forumfront/internal/render"
	"forumfront/internal/session"
)

// fakeBackend is an in-process stand-in for the forum REST backend. Routes
// are registered on Mux; every request is counted by method and path so
// tests can assert which calls were (not) made.
type fakeBackend struct {
	Mux *http.ServeMux
	srv *httptest.Server

	mu   sync.Mutex
	hits map[string]int
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	b := &fakeBackend{
		Mux:  http.NewServeMux(),
		hits: make(map[string]int),
	}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.hits[r.Method+" "+r.URL.Path]++
		b.mu.Unlock()
		b.Mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

// Hits returns how many times "METHOD /path" was requested.
func (b *fakeBackend) Hits(methodPath string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[methodPath]
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// testEnv wires all handler groups over a fake backend and miniredis.
type testEnv struct {
	Auth    *Auth
	Forum   *Forum
	Admin   *Admin
	Backend *fakeBackend
	Cache   *cache.QueryCache
	Store   *session.Store
	Manager *auth.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	backend := newFakeBackend(t)
	apiClient := api.New(backend.srv.URL)

	store := session.NewStore(client, false)
	manager := auth.NewManager(apiClient, store)
	queryCache := cache.NewQueryCache(client, cache.DefaultQueryTTL)

	bundle, err := i18n.New("en")
	if err != nil {
		t.Fatalf("i18n.New: %v", err)
	}
	renderer, err := render.New(bundle)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	return &testEnv{
		Auth:    NewAuth(renderer, manager, bundle),
		Forum:   NewForum(renderer, apiClient, queryCache, bundle),
		Admin:   NewAdmin(renderer, apiClient, queryCache, bundle),
		Backend: backend,
		Cache:   queryCache,
		Store:   store,
		Manager: manager,
	}
}

// withChiParam attaches a chi URL parameter to the request so handlers
// called outside a router can read it.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ctxWithSession puts session data into the request context the way the
// LoadSession middleware does.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// memberSession returns a confirmed session for a regular user.
func memberSession(username string) *session.Data {
	return &session.Data{
		Token:      "tok-" + username,
		User:       models.User{ID: "u-" + username, Username: username, Role: models.RoleUser},
		State:      session.StateConfirmed,
		VerifiedAt: time.Now(),
	}
}

// adminSession returns a confirmed session for an ADMIN user.
func adminSession() *session.Data {
	sess := memberSession("root")
	sess.User.Role = models.RoleAdmin
	return sess
}
