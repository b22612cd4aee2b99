// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth owns the authenticated-session lifecycle: login, register,
// logout, and revalidation of cached user snapshots against the backend's
// profile endpoint. It is the only writer of session state; everything else
// reads the session from the request context.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"forumfront/internal/api"
	"forumfront/internal/models"
	"forumfront/internal/session"
)

// DefaultRevalidateAfter is how long a confirmed snapshot stays trusted
// before the next request triggers a fresh profile fetch.
const DefaultRevalidateAfter = 5 * time.Minute

// Manager drives session state transitions. A browser with no session is
// anonymous; a session whose snapshot is optimistic is pending revalidation;
// a confirmed session is authenticated.
type Manager struct {
	api             *api.Client
	sessions        *session.Store
	revalidateAfter time.Duration
}

// NewManager creates a Manager over the given backend client and session store.
func NewManager(apiClient *api.Client, sessions *session.Store) *Manager {
	return &Manager{
		api:             apiClient,
		sessions:        sessions,
		revalidateAfter: DefaultRevalidateAfter,
	}
}

// Login exchanges credentials with the backend and establishes a session.
// The login response's user is persisted as an optimistic snapshot, then a
// follow-up profile fetch (which includes aggregate counts) replaces it.
// If the follow-up fetch fails the session is still created optimistically;
// the next request's revalidation settles it. Backend rejections (invalid
// credentials) propagate to the caller for the form to display.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, email, password string) (*models.User, error) {
	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, w, resp)
}

// Register creates an account and establishes a session with the same
// contract as Login.
func (m *Manager) Register(ctx context.Context, w http.ResponseWriter, email, username, password string) (*models.User, error) {
	resp, err := m.api.Register(ctx, email, username, password)
	if err != nil {
		return nil, err
	}
	return m.establish(ctx, w, resp)
}

// establish persists a freshly issued token plus user snapshot, upgrading
// the snapshot to confirmed via the authoritative profile endpoint.
func (m *Manager) establish(ctx context.Context, w http.ResponseWriter, resp *models.AuthResponse) (*models.User, error) {
	data := &session.Data{
		Token: resp.Token,
		User:  resp.User,
		State: session.StateOptimistic,
	}

	if fresh, err := m.api.Me(ctx, resp.Token); err == nil {
		data.User = *fresh
		data.State = session.StateConfirmed
		data.VerifiedAt = time.Now()
	} else {
		slog.Warn("profile fetch after auth failed, keeping optimistic snapshot", "error", err)
	}

	if _, err := m.sessions.Create(ctx, w, data); err != nil {
		return nil, err
	}
	return &data.User, nil
}

// Logout clears the session synchronously. No backend call is made; the
// token simply stops being used.
func (m *Manager) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if err := m.sessions.Destroy(ctx, w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
}

// Current loads the request's session, revalidating the cached snapshot
// against the profile endpoint when it is optimistic or stale. Returns nil
// for anonymous browsers and for sessions whose token the backend rejected
// (those are destroyed on the spot, persisted state included).
func (m *Manager) Current(ctx context.Context, w http.ResponseWriter, r *http.Request) *session.Data {
	data, err := m.sessions.Get(ctx, r)
	if err != nil {
		slog.Error("session load failed", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	if !m.needsRevalidation(data) {
		return data
	}
	return m.revalidate(ctx, w, r, data)
}

// needsRevalidation reports whether the snapshot must be re-checked:
// always for optimistic snapshots, and for confirmed ones older than the
// revalidation window.
func (m *Manager) needsRevalidation(data *session.Data) bool {
	if data.State != session.StateConfirmed {
		return true
	}
	return time.Since(data.VerifiedAt) > m.revalidateAfter
}

// revalidate re-fetches the authoritative profile. A token the backend no
// longer accepts (401/403) destroys the session entirely. Other failures
// (backend down, timeouts) leave the cached snapshot in place since they
// say nothing about the token's validity.
func (m *Manager) revalidate(ctx context.Context, w http.ResponseWriter, r *http.Request, data *session.Data) *session.Data {
	fresh, err := m.api.Me(ctx, data.Token)
	if err != nil {
		if api.IsStatus(err, http.StatusUnauthorized) || api.IsStatus(err, http.StatusForbidden) {
			slog.Info("session token rejected, clearing session", "user", data.User.Username)
			m.sessions.Destroy(ctx, w, r)
			return nil
		}
		slog.Warn("session revalidation failed, keeping cached snapshot", "error", err)
		return data
	}

	data.User = *fresh
	data.State = session.StateConfirmed
	data.VerifiedAt = time.Now()
	if err := m.sessions.Update(ctx, r, data); err != nil {
		slog.Error("session update after revalidation failed", "error", err)
	}
	return data
}
