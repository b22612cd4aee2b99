package api

import (
	"context"
	"net/http"

	"forumfront/internal/models"
)

// CreateCommentInput is the body of POST /comments. ParentID is empty for
// top-level comments and set to the parent comment's ID for replies.
type CreateCommentInput struct {
	Content  string `json:"content"`
	PostID   string `json:"postId"`
	ParentID string `json:"parentId,omitempty"`
}

// CommentsByPost fetches the comment tree for a post. The backend returns
// top-level comments with their reply subtrees already nested.
func (c *Client) CommentsByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	var out []models.Comment
	if err := c.do(ctx, http.MethodGet, "/comments/post/"+pathEscape(postID), "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateComment creates a comment or reply authored by the token's user.
func (c *Client) CreateComment(ctx context.Context, token string, in CreateCommentInput) (*models.Comment, error) {
	var out models.Comment
	if err := c.do(ctx, http.MethodPost, "/comments", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment removes a comment. The backend authorizes the comment's
// author and ADMIN users.
func (c *Client) DeleteComment(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/comments/"+pathEscape(id), token, nil, nil)
}
