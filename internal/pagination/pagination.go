// Package pagination provides the page request normalization and the page
// envelope shared by every list endpoint.
package pagination

import (
	"math"
)

// MaxSize bounds the page size regardless of what the client asked for.
const MaxSize = 50

// Request is a client-supplied page specification. Page is 0-based.
type Request struct {
	Page int
	Size int
	Sort string
}

// Normalize clamps the request into valid bounds: negative pages become 0,
// a non-positive size falls back to defaultSize, and the size is silently
// capped at MaxSize.
func (r Request) Normalize(defaultSize int) Request {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size <= 0 {
		r.Size = defaultSize
	}
	if r.Size > MaxSize {
		r.Size = MaxSize
	}
	return r
}

// Offset is the row offset for the normalized request.
func (r Request) Offset() int {
	return r.Page * r.Size
}

// Page is the response envelope for one slice of an ordered result set.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
}

// NewPage wraps content with pagination metadata for the given request.
func NewPage[T any](content []T, total int64, req Request) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(req.Size)))
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Page:          req.Page,
		Size:          req.Size,
	}
}
