package models

import (
	"fmt"
	"strings"
)

// Title is a value object holding a non-blank item title.
type Title string

// NewTitle trims s and rejects blank titles.
func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("title must not be empty")
	}
	return Title(s), nil
}

// String returns the underlying string value.
func (t Title) String() string {
	return string(t)
}
