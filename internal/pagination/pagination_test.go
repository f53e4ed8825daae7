package pagination

import (
	"testing"
)

func TestNormalizeClampsSize(t *testing.T) {
	req := Request{Page: 0, Size: 1000}.Normalize(5)
	if req.Size != MaxSize {
		t.Errorf("expected size clamped to %d, got %d", MaxSize, req.Size)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	req := Request{Page: -3, Size: 0}.Normalize(5)
	if req.Page != 0 {
		t.Errorf("expected page 0, got %d", req.Page)
	}
	if req.Size != 5 {
		t.Errorf("expected default size 5, got %d", req.Size)
	}
}

func TestOffset(t *testing.T) {
	req := Request{Page: 3, Size: 10}
	if req.Offset() != 30 {
		t.Errorf("expected offset 30, got %d", req.Offset())
	}
}

func TestNewPageMetadata(t *testing.T) {
	req := Request{Page: 1, Size: 10}
	page := NewPage([]int{1, 2, 3}, 23, req)

	if page.TotalElements != 23 {
		t.Errorf("expected 23 total elements, got %d", page.TotalElements)
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", page.TotalPages)
	}
	if page.Page != 1 || page.Size != 10 {
		t.Errorf("unexpected page metadata: %+v", page)
	}
}

func TestNewPageNilContent(t *testing.T) {
	page := NewPage[int](nil, 0, Request{Page: 0, Size: 5})
	if page.Content == nil {
		t.Error("content must be an empty slice, not nil")
	}
	if page.TotalPages != 0 {
		t.Errorf("expected 0 total pages, got %d", page.TotalPages)
	}
}
