// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package comments turns the backend's nested comment tree into the flat,
// depth-annotated sequence the discussion template renders, and validates
// comment input before it reaches the backend.
package comments

import (
	"strings"

	"forumfront/internal/models"
)

// MaxIndentDepth caps the visual indentation of deeply nested replies.
// It is presentational only: Depth keeps growing past it, the data model
// supports unbounded nesting.
const MaxIndentDepth = 6

// Node is one rendered row of the discussion view.
type Node struct {
	Comment   models.Comment
	Depth     int  // true nesting depth, 0 for top-level comments
	Indent    int  // visual indent level, capped at MaxIndentDepth
	CanDelete bool // viewer is the author or an ADMIN
}

// Flatten walks the server-nested tree depth-first and returns the rows in
// display order: each comment immediately followed by its replies, reply
// order preserved exactly as the backend sent it.
func Flatten(tree []models.Comment, viewer *models.User) []Node {
	var out []Node

	var walk func(c models.Comment, depth int)
	walk = func(c models.Comment, depth int) {
		indent := depth
		if indent > MaxIndentDepth {
			indent = MaxIndentDepth
		}
		out = append(out, Node{
			Comment:   c,
			Depth:     depth,
			Indent:    indent,
			CanDelete: c.CanDelete(viewer),
		})
		for _, reply := range c.Replies {
			walk(reply, depth+1)
		}
	}

	for _, c := range tree {
		walk(c, 0)
	}
	return out
}

// ValidContent reports whether text is acceptable comment content.
// Empty and whitespace-only submissions never reach the backend.
func ValidContent(text string) bool {
	return strings.TrimSpace(text) != ""
}
