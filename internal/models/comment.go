package models

import "time"

// CommentCounts holds the aggregate counters embedded in a comment.
type CommentCounts struct {
	Replies int `json:"replies"`
}

// Comment represents a threaded reply attached to a post or to another
// comment. The backend returns comments already nested: top-level comments
// have no ParentID and carry their full reply subtree in Replies, in the
// order the backend chose. Depth is unbounded.
type Comment struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Author    AuthorRef     `json:"author"`
	PostID    string        `json:"postId"`
	ParentID  string        `json:"parentId,omitempty"`
	Replies   []Comment     `json:"replies"`
	Counts    CommentCounts `json:"_count"`
}

// CanDelete reports whether viewer may delete this comment: the comment's
// author and ADMIN users may. The backend enforces this independently; the
// client-side check only gates the affordance.
func (c *Comment) CanDelete(viewer *User) bool {
	if viewer == nil {
		return false
	}
	return viewer.ID == c.Author.ID || viewer.IsAdmin()
}
