package models

// AdminSubtopic is a subtopic as returned by the admin listing endpoint,
// with its most recent posts embedded.
type AdminSubtopic struct {
	Subtopic
	Posts []Post `json:"posts"`
}

// AdminCounts holds the site-wide aggregate counters on the admin dashboard.
type AdminCounts struct {
	Users     int `json:"users"`
	Subtopics int `json:"subtopics"`
	Posts     int `json:"posts"`
	Comments  int `json:"comments"`
}

// AdminStats is the payload of the admin stats endpoint.
type AdminStats struct {
	Counts      AdminCounts `json:"counts"`
	RecentUsers []User      `json:"recentUsers"`
}
