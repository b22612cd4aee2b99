package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"forumfront/internal/models"
)

// CreatePostInput is the body of POST /posts. Content and Image are optional.
type CreatePostInput struct {
	Title      string `json:"title"`
	Content    string `json:"content,omitempty"`
	Image      string `json:"image,omitempty"`
	SubtopicID string `json:"subtopicId"`
}

// Posts lists posts, optionally filtered by subtopic and page.
func (c *Client) Posts(ctx context.Context, subtopicID string, page int) ([]models.Post, error) {
	q := url.Values{}
	if subtopicID != "" {
		q.Set("subtopicId", subtopicID)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}

	path := "/posts"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []models.Post
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostByID fetches a single post.
func (c *Client) PostByID(ctx context.Context, id string) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, http.MethodGet, "/posts/"+pathEscape(id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePost creates a post authored by the token's user.
func (c *Client) CreatePost(ctx context.Context, token string, in CreatePostInput) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, http.MethodPost, "/posts", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
