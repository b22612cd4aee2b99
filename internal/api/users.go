package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"forumfront/internal/models"
)

// Me fetches the authoritative profile for the token's user, including
// aggregate counts. A rejected token surfaces as an *Error (typically 401),
// which the auth manager treats as "clear the session".
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserSubtopics lists the subtopics owned by a user.
func (c *Client) UserSubtopics(ctx context.Context, userID string) ([]models.Subtopic, error) {
	var out []models.Subtopic
	if err := c.do(ctx, http.MethodGet, "/users/"+pathEscape(userID)+"/subtopics", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserPosts lists the posts authored by a user. page <= 0 omits the parameter.
func (c *Client) UserPosts(ctx context.Context, userID string, page int) ([]models.Post, error) {
	path := "/users/" + pathEscape(userID) + "/posts"
	if page > 0 {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		path += "?" + q.Encode()
	}

	var out []models.Post
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
