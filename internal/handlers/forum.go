// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"forumfront/internal/api"
	"forumfront/internal/cache"
	"forumfront/internal/comments"
	"forumfront/internal/i18n"
	"forumfront/internal/middleware"
	"forumfront/internal/models"
	"forumfront/internal/render"
)

// postsPageSize matches the backend's post listing page size. A full page
// means there may be a next one.
const postsPageSize = 10

// Forum groups the public forum page handlers and member actions.
type Forum struct {
	renderer *render.Renderer
	api      *api.Client
	cache    *cache.QueryCache
	bundle   *i18n.Bundle
}

// NewForum creates a new Forum handler group.
func NewForum(renderer *render.Renderer, apiClient *api.Client, queryCache *cache.QueryCache, bundle *i18n.Bundle) *Forum {
	return &Forum{
		renderer: renderer,
		api:      apiClient,
		cache:    queryCache,
		bundle:   bundle,
	}
}

// Home renders the community listing.
func (h *Forum) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := h.bundle.Resolve(r)

	var subs []models.Subtopic
	if !h.cache.Get(ctx, cache.SubtopicsKey(), &subs) {
		var err error
		subs, err = h.api.Subtopics(ctx)
		if err != nil {
			h.errorPage(w, r, http.StatusBadGateway, api.Message(err))
			return
		}
		h.cache.Set(ctx, cache.SubtopicsKey(), subs)
	}

	h.renderer.Page(w, r, "home", &render.PageData{
		Title: h.bundle.T(lang, "home.title"),
		Data:  map[string]any{"Subtopics": subs},
	})
}

// SubtopicPage renders a community with its paginated post listing.
func (h *Forum) SubtopicPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	page := parsePage(r)

	sub, err := h.subtopicBySlug(ctx, slug)
	if err != nil {
		h.apiErrorPage(w, r, err)
		return
	}

	var posts []models.Post
	if !h.cache.Get(ctx, cache.PostsKey(sub.ID, page), &posts) {
		posts, err = h.api.Posts(ctx, sub.ID, page)
		if err != nil {
			h.errorPage(w, r, http.StatusBadGateway, api.Message(err))
			return
		}
		h.cache.Set(ctx, cache.PostsKey(sub.ID, page), posts)
	}

	h.renderer.Page(w, r, "subtopic", &render.PageData{
		Title: sub.Name,
		Data: map[string]any{
			"Subtopic": sub,
			"Posts":    posts,
			"Page":     page,
			"HasNext":  len(posts) == postsPageSize,
		},
	})
}

// PostPage renders a post with its flattened comment tree. The comment
// tree comes from the backend already nested; flattening happens per
// request because the delete affordance depends on the viewer.
func (h *Forum) PostPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var post *models.Post
	if !h.cache.Get(ctx, cache.PostKey(id), &post) {
		var err error
		post, err = h.api.PostByID(ctx, id)
		if err != nil {
			h.apiErrorPage(w, r, err)
			return
		}
		h.cache.Set(ctx, cache.PostKey(id), post)
	}

	var tree []models.Comment
	if !h.cache.Get(ctx, cache.CommentsKey(id), &tree) {
		var err error
		tree, err = h.api.CommentsByPost(ctx, id)
		if err != nil {
			h.errorPage(w, r, http.StatusBadGateway, api.Message(err))
			return
		}
		h.cache.Set(ctx, cache.CommentsKey(id), tree)
	}

	h.renderer.Page(w, r, "post", &render.PageData{
		Title: post.Title,
		Data: map[string]any{
			"Post":     post,
			"Comments": comments.Flatten(tree, viewer(r)),
		},
	})
}

// CreateSubtopicPage renders the community creation form.
func (h *Forum) CreateSubtopicPage(w http.ResponseWriter, r *http.Request) {
	h.renderCreateSubtopic(w, r, "", "", "")
}

// CreateSubtopicSubmit processes the community creation form. Names that
// break the 3-20 character no-spaces rule are rejected locally without a
// backend call.
func (h *Forum) CreateSubtopicSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := strings.TrimSpace(r.FormValue("name"))
	description := strings.TrimSpace(r.FormValue("description"))

	if key := validateSubtopic(name, description); key != "" {
		lang := h.bundle.Resolve(r)
		h.renderCreateSubtopic(w, r, h.bundle.T(lang, key), name, description)
		return
	}

	created, err := h.api.CreateSubtopic(ctx, sessionToken(r), name, description)
	if err != nil {
		h.renderCreateSubtopic(w, r, api.Message(err), name, description)
		return
	}

	h.cache.Invalidate(ctx, cache.SubtopicsKey(), cache.AdminSubtopicsKey(), cache.AdminStatsKey())
	http.Redirect(w, r, "/s/"+created.Slug, http.StatusSeeOther)
}

func (h *Forum) renderCreateSubtopic(w http.ResponseWriter, r *http.Request, errMsg, name, description string) {
	lang := h.bundle.Resolve(r)
	h.renderer.Page(w, r, "create_subtopic", &render.PageData{
		Title: h.bundle.T(lang, "subtopic.createTitle"),
		Error: errMsg,
		Data:  map[string]any{"Name": name, "Description": description},
	})
}

// CreatePostPage renders the post creation form for a community.
func (h *Forum) CreatePostPage(w http.ResponseWriter, r *http.Request) {
	sub, err := h.subtopicBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.apiErrorPage(w, r, err)
		return
	}

	h.renderCreatePost(w, r, sub, "", "", "", "")
}

// CreatePostSubmit processes the post creation form.
func (h *Forum) CreatePostSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sub, err := h.subtopicBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		h.apiErrorPage(w, r, err)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	content := r.FormValue("content")
	image := strings.TrimSpace(r.FormValue("image"))

	if key := validatePost(title, content); key != "" {
		lang := h.bundle.Resolve(r)
		h.renderCreatePost(w, r, sub, h.bundle.T(lang, key), title, content, image)
		return
	}

	created, err := h.api.CreatePost(ctx, sessionToken(r), api.CreatePostInput{
		Title:      title,
		Content:    content,
		Image:      image,
		SubtopicID: sub.ID,
	})
	if err != nil {
		h.renderCreatePost(w, r, sub, api.Message(err), title, content, image)
		return
	}

	h.cache.InvalidatePrefix(ctx, "posts:"+sub.ID+":")
	h.cache.Invalidate(ctx,
		cache.SubtopicsKey(),
		cache.SubtopicKey(sub.Slug),
		cache.AdminStatsKey(),
	)
	http.Redirect(w, r, "/posts/"+created.ID, http.StatusSeeOther)
}

func (h *Forum) renderCreatePost(w http.ResponseWriter, r *http.Request, sub *models.Subtopic, errMsg, title, content, image string) {
	lang := h.bundle.Resolve(r)
	h.renderer.Page(w, r, "create_post", &render.PageData{
		Title: h.bundle.T(lang, "post.createTitle"),
		Error: errMsg,
		Data: map[string]any{
			"Subtopic": sub,
			"Title":    title,
			"Content":  content,
			"Image":    image,
		},
	})
}

// CommentCreate handles both top-level comments and replies; replies carry
// the parent comment's ID in a hidden field. Failures are logged and the
// browser returns to the post, which re-renders from fresh backend state.
func (h *Forum) CommentCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	postID := chi.URLParam(r, "id")
	content := r.FormValue("content")

	if comments.ValidContent(content) {
		_, err := h.api.CreateComment(ctx, sessionToken(r), api.CreateCommentInput{
			Content:  strings.TrimSpace(content),
			PostID:   postID,
			ParentID: r.FormValue("parent_id"),
		})
		if err != nil {
			slog.Error("comment create failed", "post", postID, "error", err)
		} else {
			h.cache.Invalidate(ctx,
				cache.CommentsKey(postID),
				cache.PostKey(postID),
				cache.AdminStatsKey(),
			)
		}
	}

	http.Redirect(w, r, "/posts/"+postID, http.StatusSeeOther)
}

// CommentDelete removes a comment and returns to its post. The backend
// authorizes the delete; a rejection here is only logged.
func (h *Forum) CommentDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	postID := r.FormValue("post_id")

	if err := h.api.DeleteComment(ctx, sessionToken(r), id); err != nil {
		slog.Error("comment delete failed", "comment", id, "error", err)
	} else if postID != "" {
		h.cache.Invalidate(ctx,
			cache.CommentsKey(postID),
			cache.PostKey(postID),
			cache.AdminStatsKey(),
		)
	}

	if postID == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/posts/"+postID, http.StatusSeeOther)
}

// Profile renders the signed-in user's profile with a posts or
// communities tab. Profile data is never cached: it is viewer-specific.
func (h *Forum) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := middleware.SessionFromCtx(ctx)
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	user := &sess.User

	tab := r.URL.Query().Get("tab")
	if tab != "communities" {
		tab = "posts"
	}

	data := map[string]any{"User": user, "Tab": tab}
	if tab == "communities" {
		subs, err := h.api.UserSubtopics(ctx, user.ID)
		if err != nil {
			h.errorPage(w, r, http.StatusBadGateway, api.Message(err))
			return
		}
		data["Subtopics"] = subs
	} else {
		posts, err := h.api.UserPosts(ctx, user.ID, parsePage(r))
		if err != nil {
			h.errorPage(w, r, http.StatusBadGateway, api.Message(err))
			return
		}
		data["Posts"] = posts
	}

	h.renderer.Page(w, r, "profile", &render.PageData{
		Title: user.Username,
		Data:  data,
	})
}

// Language persists the browser's language preference and returns to the
// page the switch was made from.
func (h *Forum) Language(w http.ResponseWriter, r *http.Request) {
	h.bundle.SetLanguage(w, r.FormValue("lang"))

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// subtopicBySlug loads a community by slug, from cache when possible.
func (h *Forum) subtopicBySlug(ctx context.Context, slug string) (*models.Subtopic, error) {
	var sub *models.Subtopic
	if h.cache.Get(ctx, cache.SubtopicKey(slug), &sub) {
		return sub, nil
	}
	sub, err := h.api.SubtopicBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	h.cache.Set(ctx, cache.SubtopicKey(slug), sub)
	return sub, nil
}

// apiErrorPage maps a backend error to the right error page: 404 renders
// the not-found page, anything else the generic failure page.
func (h *Forum) apiErrorPage(w http.ResponseWriter, r *http.Request, err error) {
	if api.IsStatus(err, http.StatusNotFound) {
		lang := h.bundle.Resolve(r)
		h.renderer.Page(w, r, "error", &render.PageData{
			Title:  h.bundle.T(lang, "common.notFound"),
			Status: http.StatusNotFound,
			Data: map[string]any{
				"Heading": h.bundle.T(lang, "common.notFound"),
				"Message": h.bundle.T(lang, "common.notFoundMessage"),
			},
		})
		return
	}
	h.errorPage(w, r, http.StatusBadGateway, api.Message(err))
}

// errorPage renders the generic error page with an already user-facing
// message.
func (h *Forum) errorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	lang := h.bundle.Resolve(r)
	h.renderer.Page(w, r, "error", &render.PageData{
		Title:  h.bundle.T(lang, "common.error"),
		Status: status,
		Data: map[string]any{
			"Heading": h.bundle.T(lang, "common.error"),
			"Message": message,
		},
	})
}

// parsePage reads the page query parameter, defaulting to 1.
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
