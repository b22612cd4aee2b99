// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the forum pages, grouped
// into Auth (login/register/logout), Forum (public pages and member
// actions), and Admin (dashboard and community management).
package handlers

import (
	"net/http"

	"forumfront/internal/middleware"
	"forumfront/internal/models"
)

// sessionToken returns the backend bearer token of the request's session,
// or "" for anonymous browsers.
func sessionToken(r *http.Request) string {
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		return sess.Token
	}
	return ""
}

// viewer returns the request's user snapshot, or nil for anonymous browsers.
func viewer(r *http.Request) *models.User {
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		return &sess.User
	}
	return nil
}
