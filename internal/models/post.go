package models

import "time"

// PostCounts holds the aggregate counters embedded in a post.
type PostCounts struct {
	Comments int `json:"comments"`
	Votes    int `json:"votes"`
}

// Post represents a titled discussion item within a subtopic.
// Content and Image are optional.
type Post struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content,omitempty"`
	Image     string      `json:"image,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Author    AuthorRef   `json:"author"`
	Subtopic  SubtopicRef `json:"subtopic"`
	Counts    PostCounts  `json:"_count"`
}
