package mapfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name             string
		path             string
		workingDirectory string
		want             string
	}{
		{"absolute path unchanged", "/docs/readme.txt", "/docs", "/docs/readme.txt"},
		{"root unchanged", "/", "/docs", "/"},
		{"relative against root", "docs", "/", "/docs"},
		{"relative against nested", "readme.txt", "/docs", "/docs/readme.txt"},
		{"relative against deep", "c", "/a/b", "/a/b/c"},
		{"parent of nested working directory", "..", "/a/b", "/a"},
		{"parent of root child", "..", "/a", "/"},
		{"parent of root", "..", "/", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePath(tt.path, tt.workingDirectory))
		})
	}
}

func TestParentPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"root is its own parent", "/", "/"},
		{"direct root child", "/docs", "/"},
		{"nested path", "/docs/readme.txt", "/docs"},
		{"deeply nested path", "/a/b/c/d", "/a/b/c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParentPath(tt.path))
		})
	}
}

func TestParentPath_PanicsOnBlankInput(t *testing.T) {
	require.PanicsWithValue(t, "path is empty", func() { ParentPath("") })
	require.PanicsWithValue(t, "path is empty", func() { ParentPath("   ") })
}

func TestPathDepth(t *testing.T) {
	assert.Equal(t, 0, PathDepth("/"))
	assert.Equal(t, 1, PathDepth("/a"))
	assert.Equal(t, 2, PathDepth("/a/b"))
	assert.Equal(t, 3, PathDepth("/a/b/c"))
}
