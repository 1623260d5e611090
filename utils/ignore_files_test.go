package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDefaultIgnored(t *testing.T) {
	tests := []struct {
		path    string
		ignored bool
	}{
		{"src/main.go", false},
		{".git/config", true},
		{"node_modules/lib/index.js", true},
		{"a/__pycache__/m.pyc", true},
		{"vendor/dep/dep.go", true},
		{".env", true},
		{"./src/app.py", false},
		{"dist/bundle.js", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ignored, IsDefaultIgnored(tt.path), tt.path)
	}
}

func TestIsWithin(t *testing.T) {
	assert.True(t, IsWithin("/a/b/c.txt", "/a/b"))
	assert.True(t, IsWithin("/a/b", "/a/b"))
	assert.False(t, IsWithin("/a/bc", "/a/b"), "sibling sharing a name prefix is outside")
	assert.False(t, IsWithin("/a", "/a/b"))
	assert.False(t, IsWithin("/a/b", ""))
}

func TestMatchesExcludeGlob(t *testing.T) {
	patterns := []string{"generated/**", "**/*.min.js"}

	assert.True(t, MatchesExcludeGlob("generated/api/client.go", patterns))
	assert.True(t, MatchesExcludeGlob("static/app.min.js", patterns))
	assert.False(t, MatchesExcludeGlob("src/app.js", patterns))
	assert.False(t, MatchesExcludeGlob("src/app.js", nil))
}
