package handlers

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validation limits for form fields.
const (
	minSubtopicNameLen = 3
	maxSubtopicNameLen = 20
	maxPostTitleLen    = 300
	maxPostContentLen  = 50_000
)

// validateSubtopic checks community form inputs and returns the message key
// of the first problem found, or "" when the input is acceptable. Invalid
// names are rejected here so they never reach the backend.
func validateSubtopic(name, description string) string {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n < minSubtopicNameLen || n > maxSubtopicNameLen {
		return "validate.communityName"
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return "validate.communityName"
	}
	if strings.TrimSpace(description) == "" {
		return "validate.descriptionRequired"
	}
	return ""
}

// validatePost checks post form inputs and returns the message key of the
// first problem found.
func validatePost(title, content string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "validate.titleRequired"
	}
	if utf8.RuneCountInString(title) > maxPostTitleLen {
		return "validate.titleTooLong"
	}
	if utf8.RuneCountInString(content) > maxPostContentLen {
		return "validate.contentTooLong"
	}
	return ""
}
