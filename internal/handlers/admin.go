// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"forumfront/internal/api"
	"forumfront/internal/cache"
	"forumfront/internal/i18n"
	"forumfront/internal/middleware"
	"forumfront/internal/models"
	"forumfront/internal/render"
)

// Admin groups the admin dashboard handlers. The dashboard page itself
// renders an access-denied message for non-admins; the mutation routes are
// additionally gated by the RequireAdmin middleware.
type Admin struct {
	renderer *render.Renderer
	api      *api.Client
	cache    *cache.QueryCache
	bundle   *i18n.Bundle
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(renderer *render.Renderer, apiClient *api.Client, queryCache *cache.QueryCache, bundle *i18n.Bundle) *Admin {
	return &Admin{
		renderer: renderer,
		api:      apiClient,
		cache:    queryCache,
		bundle:   bundle,
	}
}

// Dashboard renders site-wide stats, recent users, and the community
// management listing.
func (h *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if !sess.IsAdmin() {
		h.accessDenied(w, r)
		return
	}

	h.renderDashboard(w, r, "")
}

// SubtopicUpdate applies an admin edit to a community's name and
// description.
func (h *Admin) SubtopicUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	name := strings.TrimSpace(r.FormValue("name"))
	description := strings.TrimSpace(r.FormValue("description"))

	if key := validateSubtopic(name, description); key != "" {
		lang := h.bundle.Resolve(r)
		h.renderDashboard(w, r, h.bundle.T(lang, key))
		return
	}

	if _, err := h.api.AdminUpdateSubtopic(ctx, sessionToken(r), id, name, description); err != nil {
		h.renderDashboard(w, r, api.Message(err))
		return
	}

	// A rename changes the slug, so the whole subtopic detail family goes.
	h.cache.Invalidate(ctx, cache.AdminSubtopicsKey(), cache.SubtopicsKey())
	h.cache.InvalidatePrefix(ctx, "subtopic:")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// SubtopicDelete removes a community and everything under it.
func (h *Admin) SubtopicDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.api.AdminDeleteSubtopic(ctx, sessionToken(r), id); err != nil {
		h.renderDashboard(w, r, api.Message(err))
		return
	}

	h.cache.Invalidate(ctx, cache.AdminSubtopicsKey(), cache.AdminStatsKey(), cache.SubtopicsKey())
	h.cache.InvalidatePrefix(ctx, "subtopic:")
	h.cache.InvalidatePrefix(ctx, "posts:")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// renderDashboard loads stats and the community listing and renders the
// dashboard, optionally with a form-level error.
func (h *Admin) renderDashboard(w http.ResponseWriter, r *http.Request, errMsg string) {
	ctx := r.Context()
	lang := h.bundle.Resolve(r)
	token := sessionToken(r)

	var stats *models.AdminStats
	if !h.cache.Get(ctx, cache.AdminStatsKey(), &stats) {
		var err error
		stats, err = h.api.AdminStats(ctx, token)
		if err != nil {
			h.errorPage(w, r, api.Message(err))
			return
		}
		h.cache.Set(ctx, cache.AdminStatsKey(), stats)
	}

	var subs []models.AdminSubtopic
	if !h.cache.Get(ctx, cache.AdminSubtopicsKey(), &subs) {
		var err error
		subs, err = h.api.AdminSubtopics(ctx, token)
		if err != nil {
			h.errorPage(w, r, api.Message(err))
			return
		}
		h.cache.Set(ctx, cache.AdminSubtopicsKey(), subs)
	}

	h.renderer.Page(w, r, "admin", &render.PageData{
		Title: h.bundle.T(lang, "admin.title"),
		Error: errMsg,
		Data: map[string]any{
			"Stats":     stats,
			"Subtopics": subs,
			"EditID":    r.URL.Query().Get("edit"),
		},
	})
}

// accessDenied renders the fixed denial page for signed-in non-admins.
func (h *Admin) accessDenied(w http.ResponseWriter, r *http.Request) {
	lang := h.bundle.Resolve(r)
	h.renderer.Page(w, r, "error", &render.PageData{
		Title:  h.bundle.T(lang, "auth.accessDenied"),
		Status: http.StatusForbidden,
		Data: map[string]any{
			"Heading": h.bundle.T(lang, "auth.accessDenied"),
			"Message": h.bundle.T(lang, "auth.accessDeniedMessage"),
		},
	})
}

func (h *Admin) errorPage(w http.ResponseWriter, r *http.Request, message string) {
	lang := h.bundle.Resolve(r)
	h.renderer.Page(w, r, "error", &render.PageData{
		Title:  h.bundle.T(lang, "common.error"),
		Status: http.StatusBadGateway,
		Data: map[string]any{
			"Heading": h.bundle.T(lang, "common.error"),
			"Message": message,
		},
	})
}
