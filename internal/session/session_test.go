package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"forumfront/internal/models"
)

// testValkeyClient returns a Redis client backed by an in-process miniredis,
// so session tests run without a live Valkey.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func testData(token, userID string) *Data {
	return &Data{
		Token: token,
		User:  models.User{ID: userID, Email: "test@forum.local", Username: "tester", Role: models.RoleUser},
		State: StateOptimistic,
	}
}

func TestSessionCreateAndGet(t *testing.T) {
	store := NewStore(testValkeyClient(t), false)

	w := httptest.NewRecorder()
	ctx := context.Background()

	sessionID, err := store.Create(ctx, w, testData("tok-1", "u1"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sessionID == "" {
		t.Error("expected non-empty session ID")
	}

	// Verify cookie was set.
	resp := w.Result()
	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == CookieName {
			sessionCookie = c
			break
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if !sessionCookie.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
	if sessionCookie.Secure {
		t.Error("expected Secure=false for non-secure store")
	}

	// Get the session back.
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(sessionCookie)

	retrieved, err := store.Get(ctx, req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if retrieved == nil {
		t.Fatal("expected session data, got nil")
	}
	if retrieved.Token != "tok-1" {
		t.Errorf("token: got %q, want %q", retrieved.Token, "tok-1")
	}
	if retrieved.User.ID != "u1" {
		t.Errorf("user ID: got %q, want %q", retrieved.User.ID, "u1")
	}
	if retrieved.State != StateOptimistic {
		t.Errorf("state: got %q, want %q", retrieved.State, StateOptimistic)
	}
}

func TestSessionGetNoCookie(t *testing.T) {
	store := NewStore(testValkeyClient(t), false)

	req := httptest.NewRequest("GET", "/", nil)
	data, err := store.Get(context.Background(), req)
	if err != nil {
		t.Fatalf("Get (no cookie): %v", err)
	}
	if data != nil {
		t.Error("expected nil for request without session cookie")
	}
}

func TestSessionGetExpired(t *testing.T) {
	store := NewStore(testValkeyClient(t), false)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "nonexistent-session-id"})

	data, err := store.Get(context.Background(), req)
	if err != nil {
		t.Fatalf("Get (expired): %v", err)
	}
	if data != nil {
		t.Error("expected nil for expired/nonexistent session")
	}
}

func TestSessionUpdate(t *testing.T) {
	store := NewStore(testValkeyClient(t), false)

	w := httptest.NewRecorder()
	ctx := context.Background()

	data := testData("tok-2", "u2")
	store.Create(ctx, w, data)
	cookie := w.Result().Cookies()[0]

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)

	// Confirm the snapshot, as revalidation would.
	data.State = StateConfirmed
	data.User.Counts = &models.UserCounts{Posts: 4}
	if err := store.Update(ctx, req, data); err != nil {
		t.Fatalf("Update: %v", err)
	}

	retrieved, _ := store.Get(ctx, req)
	if retrieved == nil {
		t.Fatal("expected session after update")
	}
	if retrieved.State != StateConfirmed {
		t.Errorf("state after update: got %q, want %q", retrieved.State, StateConfirmed)
	}
	if retrieved.User.Stats().Posts != 4 {
		t.Errorf("counts after update: got %+v", retrieved.User.Counts)
	}
}

func TestSessionUpdateNoCookie(t *testing.T) {
	store := NewStore(testValkeyClient(t), false)

	req := httptest.NewRequest("GET", "/", nil)
	err := store.Update(context.Background(), req, &Data{})
	if err == nil {
		t.Error("expected error when updating without cookie")
	}
}

func TestSessionDestroy(t *testing.T) {
	store := NewStore(testValkeyClient(t), false)

	w := httptest.NewRecorder()
	ctx := context.Background()

	store.Create(ctx, w, testData("tok-3", "u3"))
	cookie := w.Result().Cookies()[0]

	w2 := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)

	if err := store.Destroy(ctx, w2, req); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	// Verify cookie is expired.
	for _, c := range w2.Result().Cookies() {
		if c.Name == CookieName && c.MaxAge != -1 {
			t.Error("expected MaxAge=-1 on destroyed cookie")
		}
	}

	// Verify session is gone from Valkey.
	retrieved, _ := store.Get(ctx, req)
	if retrieved != nil {
		t.Error("expected nil after destroy")
	}
}

func TestSessionDestroyNoCookie(t *testing.T) {
	store := NewStore(testValkeyClient(t), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	// Should not error even without a cookie.
	if err := store.Destroy(context.Background(), w, req); err != nil {
		t.Errorf("Destroy (no cookie): %v", err)
	}
}

func TestSessionSecureCookie(t *testing.T) {
	store := NewStore(testValkeyClient(t), true) // secure = true

	w := httptest.NewRecorder()
	store.Create(context.Background(), w, testData("tok-4", "u4"))

	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			if !c.Secure {
				t.Error("expected Secure=true for secure store")
			}
			return
		}
	}
	t.Error("session cookie not found")
}
