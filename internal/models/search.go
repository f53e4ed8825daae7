package models

import (
	"fmt"
	"time"
)

// PostSearchType says which fields a keyword is matched against.
type PostSearchType string

const (
	SearchTitle        PostSearchType = "TITLE"
	SearchContent      PostSearchType = "CONTENT"
	SearchTitleContent PostSearchType = "TITLE_CONTENT"
)

// ParsePostSearchType maps the `type` query parameter onto the enum.
// An empty value falls back to TITLE_CONTENT; anything else is rejected.
func ParsePostSearchType(s string) (PostSearchType, error) {
	switch PostSearchType(s) {
	case "":
		return SearchTitleContent, nil
	case SearchTitle, SearchContent, SearchTitleContent:
		return PostSearchType(s), nil
	default:
		return "", fmt.Errorf("unknown search type %q", s)
	}
}

// PostSearchCondition is the transient search input for post listing.
// It is never persisted; a zero value matches every post.
type PostSearchCondition struct {
	Keyword     string
	Type        PostSearchType
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
