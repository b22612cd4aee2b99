package models

import "time"

// SubtopicCounts holds the aggregate counters embedded in a subtopic.
type SubtopicCounts struct {
	Posts int `json:"posts"`
}

// Subtopic represents a user-created discussion community.
type Subtopic struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Slug        string         `json:"slug"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Owner       AuthorRef      `json:"owner"`
	Counts      SubtopicCounts `json:"_count"`
}

// SubtopicRef is the abbreviated subtopic record embedded in posts.
type SubtopicRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
