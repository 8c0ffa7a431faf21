package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shortlinks/internal/domain"
)

func TestLinks_FindByURL(t *testing.T) {
	links := domain.Links{
		"abc123": {Code: "abc123", URL: "https://example.com/a"},
		"def456": {Code: "def456", URL: "https://example.com/b"},
	}

	link, ok := links.FindByURL("https://example.com/b")
	assert.True(t, ok)
	assert.Equal(t, "def456", link.Code)

	_, ok = links.FindByURL("https://example.com/b/")
	assert.False(t, ok, "matching is raw string equality")

	_, ok = domain.Links{}.FindByURL("https://example.com/a")
	assert.False(t, ok)
}
