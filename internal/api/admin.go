package api

import (
	"context"
	"net/http"

	"forumfront/internal/models"
)

// AdminSubtopics lists every subtopic with its recent posts embedded.
// Requires an ADMIN token.
func (c *Client) AdminSubtopics(ctx context.Context, token string) ([]models.AdminSubtopic, error) {
	var out []models.AdminSubtopic
	if err := c.do(ctx, http.MethodGet, "/admin/subtopics", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminUpdateSubtopic renames or re-describes a subtopic. Requires an ADMIN token.
func (c *Client) AdminUpdateSubtopic(ctx context.Context, token, id, name, description string) (*models.Subtopic, error) {
	var out models.Subtopic
	err := c.do(ctx, http.MethodPut, "/admin/subtopics/"+pathEscape(id), token, subtopicRequest{
		Name:        name,
		Description: description,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminDeleteSubtopic removes a subtopic and its content. Requires an ADMIN token.
func (c *Client) AdminDeleteSubtopic(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/subtopics/"+pathEscape(id), token, nil, nil)
}

// AdminStats fetches site-wide aggregate counts and the most recently
// registered users. Requires an ADMIN token.
func (c *Client) AdminStats(ctx context.Context, token string) (*models.AdminStats, error) {
	var out models.AdminStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
