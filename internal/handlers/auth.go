// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"forumfront/internal/api"
	"forumfront/internal/auth"
	"forumfront/internal/i18n"
	"forumfront/internal/middleware"
	"forumfront/internal/render"
)

// Auth groups the authentication page handlers.
type Auth struct {
	renderer *render.Renderer
	manager  *auth.Manager
	bundle   *i18n.Bundle
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, manager *auth.Manager, bundle *i18n.Bundle) *Auth {
	return &Auth{
		renderer: renderer,
		manager:  manager,
		bundle:   bundle,
	}
}

// LoginPage renders the login form. Already-authenticated browsers are
// sent back to the home page.
func (h *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromCtx(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.renderLogin(w, r, "", "")
}

// LoginSubmit processes the login form. Backend rejections surface on the
// form; a successful exchange establishes the session and redirects home.
func (h *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		lang := h.bundle.Resolve(r)
		h.renderLogin(w, r, h.bundle.T(lang, "validate.fieldsRequired"), email)
		return
	}

	if _, err := h.manager.Login(r.Context(), w, email, password); err != nil {
		h.renderLogin(w, r, api.Message(err), email)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Auth) renderLogin(w http.ResponseWriter, r *http.Request, errMsg, email string) {
	lang := h.bundle.Resolve(r)
	h.renderer.Page(w, r, "login", &render.PageData{
		Title: h.bundle.T(lang, "auth.loginTitle"),
		Error: errMsg,
		Data:  map[string]any{"Email": email},
	})
}

// RegisterPage renders the account creation form.
func (h *Auth) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromCtx(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.renderRegister(w, r, "", "", "")
}

// RegisterSubmit processes the registration form.
func (h *Auth) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if email == "" || username == "" || password == "" {
		lang := h.bundle.Resolve(r)
		h.renderRegister(w, r, h.bundle.T(lang, "validate.fieldsRequired"), email, username)
		return
	}

	if _, err := h.manager.Register(r.Context(), w, email, username, password); err != nil {
		h.renderRegister(w, r, api.Message(err), email, username)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Auth) renderRegister(w http.ResponseWriter, r *http.Request, errMsg, email, username string) {
	lang := h.bundle.Resolve(r)
	h.renderer.Page(w, r, "register", &render.PageData{
		Title: h.bundle.T(lang, "auth.registerTitle"),
		Error: errMsg,
		Data:  map[string]any{"Email": email, "Username": username},
	})
}

// Logout clears the session and redirects home.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	h.manager.Logout(r.Context(), w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
