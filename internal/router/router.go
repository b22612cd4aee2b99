// Package router sets up all HTTP routes and middleware chains for the
// forum frontend. Routes are organized into public pages, member actions,
// and the admin area, each with its own middleware stack.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"forumfront/internal/auth"
	"forumfront/internal/handlers"
	"forumfront/internal/middleware"
	"forumfront/web"
)

// authRateLimit bounds login/register submissions per client IP.
const (
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(manager *auth.Manager, authH *handlers.Auth, forum *handlers.Forum, admin *handlers.Admin, secureCookies bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Static assets and health check sit outside the session stack.
	staticFS, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	r.Get("/health", healthHandler)

	limiter := middleware.NewRateLimiter(authRateLimit, authRateWindow)

	r.Group(func(r chi.Router) {
		r.Use(middleware.LoadSession(manager))
		r.Use(middleware.CSRF(secureCookies))

		// Auth pages.
		r.Get("/login", authH.LoginPage)
		r.Get("/register", authH.RegisterPage)
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/login", authH.LoginSubmit)
			r.Post("/register", authH.RegisterSubmit)
		})
		r.Post("/logout", authH.Logout)

		// Public forum pages.
		r.Get("/", forum.Home)
		r.Get("/s/{slug}", forum.SubtopicPage)
		r.Get("/posts/{id}", forum.PostPage)
		r.Post("/language", forum.Language)

		// Member actions.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/subtopics/create", forum.CreateSubtopicPage)
			r.Post("/subtopics/create", forum.CreateSubtopicSubmit)
			r.Get("/s/{slug}/posts/create", forum.CreatePostPage)
			r.Post("/s/{slug}/posts/create", forum.CreatePostSubmit)
			r.Post("/posts/{id}/comments", forum.CommentCreate)
			r.Post("/comments/{id}/delete", forum.CommentDelete)
			r.Get("/profile", forum.Profile)
		})

		// Admin area. The dashboard handles its own denial page so the
		// message is rendered in the site layout; mutations get a hard 403.
		r.Get("/admin", admin.Dashboard)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/admin/subtopics/{id}", admin.SubtopicUpdate)
			r.Post("/admin/subtopics/{id}/delete", admin.SubtopicDelete)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
