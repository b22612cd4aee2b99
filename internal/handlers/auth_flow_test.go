// auth_flow_test.go covers the login, register, and logout page handlers
// against the fake backend.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"forumfront/internal/models"
	"forumfront/internal/session"
)

// registerAuthRoutes wires working auth endpoints on the fake backend.
func registerAuthRoutes(b *fakeBackend) {
	user := models.User{ID: "u1", Email: "alice@example.com", Username: "alice", Role: models.RoleUser}

	b.Mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Email != "alice@example.com" || body.Password != "hunter2" {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		writeJSON(w, models.AuthResponse{User: user, Token: "tok-valid"})
	})
	b.Mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, models.AuthResponse{User: user, Token: "tok-valid"})
	})
	b.Mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-valid" {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		full := user
		full.Counts = &models.UserCounts{Posts: 1}
		writeJSON(w, full)
	})
}

func formRequest(target string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestLoginPage_ReturnsHTML(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Auth.LoginPage(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Content-Type: got %q, want text/html", ct)
	}
}

func TestLoginPage_AuthenticatedRedirectsHome(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req = req.WithContext(ctxWithSession(req.Context(), memberSession("alice")))
	rec := httptest.NewRecorder()

	env.Auth.LoginPage(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("location: got %q, want /", loc)
	}
}

func TestLoginSubmit_Success(t *testing.T) {
	env := newTestEnv(t)
	registerAuthRoutes(env.Backend)

	rec := httptest.NewRecorder()
	env.Auth.LoginSubmit(rec, formRequest("/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"hunter2"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected a session cookie after login")
	}

	// The session holds a confirmed snapshot from the profile endpoint.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie)
	data, err := env.Store.Get(context.Background(), req)
	if err != nil || data == nil {
		t.Fatalf("session load: data=%v err=%v", data, err)
	}
	if data.State != session.StateConfirmed {
		t.Errorf("state: got %q, want confirmed", data.State)
	}
	if data.User.Username != "alice" {
		t.Errorf("username: got %q", data.User.Username)
	}
}

func TestLoginSubmit_BackendErrorShownVerbatim(t *testing.T) {
	env := newTestEnv(t)
	registerAuthRoutes(env.Backend)

	rec := httptest.NewRecorder()
	env.Auth.LoginSubmit(rec, formRequest("/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"wrong"},
	}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (form re-rendered)", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Invalid email or password") {
		t.Error("expected backend error message on the form")
	}
	// The submitted email is echoed back.
	if !strings.Contains(body, "alice@example.com") {
		t.Error("expected email echoed in the form")
	}
	// No session was established.
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			t.Error("no session cookie should be set on failed login")
		}
	}
}

func TestLoginSubmit_EmptyFieldsSkipBackend(t *testing.T) {
	env := newTestEnv(t)
	registerAuthRoutes(env.Backend)

	rec := httptest.NewRecorder()
	env.Auth.LoginSubmit(rec, formRequest("/login", url.Values{"email": {""}, "password": {""}}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if got := env.Backend.Hits("POST /auth/login"); got != 0 {
		t.Errorf("backend login calls: got %d, want 0", got)
	}
	if !strings.Contains(rec.Body.String(), "All fields are required.") {
		t.Error("expected required-fields message")
	}
}

func TestRegisterSubmit_Success(t *testing.T) {
	env := newTestEnv(t)
	registerAuthRoutes(env.Backend)

	rec := httptest.NewRecorder()
	env.Auth.RegisterSubmit(rec, formRequest("/register", url.Values{
		"email":    {"alice@example.com"},
		"username": {"alice"},
		"password": {"hunter2"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}
	if got := env.Backend.Hits("POST /auth/register"); got != 1 {
		t.Errorf("backend register calls: got %d, want 1", got)
	}
}

func TestLogout_DestroysSession(t *testing.T) {
	env := newTestEnv(t)

	// Establish a session directly through the store.
	create := httptest.NewRecorder()
	if _, err := env.Store.Create(context.Background(), create, memberSession("alice")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := formRequest("/logout", url.Values{})
	for _, c := range create.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	env.Auth.Logout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}

	// The persisted session is gone: a follow-up lookup finds nothing.
	lookup := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range create.Result().Cookies() {
		lookup.AddCookie(c)
	}
	data, err := env.Store.Get(context.Background(), lookup)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data != nil {
		t.Error("session should be destroyed after logout")
	}
}
