package httpmetrics

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"root", "/", "/"},
		{"empty", "", "/"},
		{"collection", "/todos", "/todos"},
		{"item id", "/todos/1", "/todos/{id}"},
		{"large id", "/todos/12345", "/todos/{id}"},
		{"non numeric segment", "/todos/abc", "/todos/abc"},
		{"mixed segment", "/todos/1a", "/todos/1a"},
		{"nested ids", "/todos/7/sub/42", "/todos/{id}/sub/{id}"},
		{"static routes", "/login", "/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
