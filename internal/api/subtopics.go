package api

import (
	"context"
	"net/http"

	"forumfront/internal/models"
)

// subtopicRequest is the body of the create and admin-update endpoints.
type subtopicRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Subtopics lists every subtopic.
func (c *Client) Subtopics(ctx context.Context) ([]models.Subtopic, error) {
	var out []models.Subtopic
	if err := c.do(ctx, http.MethodGet, "/subtopics", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubtopicBySlug fetches a single subtopic by its URL slug.
func (c *Client) SubtopicBySlug(ctx context.Context, slug string) (*models.Subtopic, error) {
	var out models.Subtopic
	if err := c.do(ctx, http.MethodGet, "/subtopics/"+pathEscape(slug), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSubtopic creates a new community owned by the token's user.
func (c *Client) CreateSubtopic(ctx context.Context, token, name, description string) (*models.Subtopic, error) {
	var out models.Subtopic
	err := c.do(ctx, http.MethodPost, "/subtopics", token, subtopicRequest{
		Name:        name,
		Description: description,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
