package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeID_Stable(t *testing.T) {
	links := []string{
		"https://example.com/news/1",
		"https://example.com/news/1/",
		"https://example.com/a?utm_source=x&b=1",
		"https://예시.한국/기사/42",
	}

	for _, link := range links {
		first := ComputeID(link)
		assert.Equal(t, first, ComputeID(link), link)
		assert.NotContains(t, first, "/")
		assert.NotContains(t, first, "=")

		back, err := LinkFromID(first)
		require.NoError(t, err)
		assert.Equal(t, link, back)
	}
}

func TestComputeID_DistinctLinks(t *testing.T) {
	seen := map[string]string{}
	for _, link := range []string{
		"https://example.com/news/1",
		"https://example.com/news/1/",
		"http://example.com/news/1",
		"https://example.com/news/2",
	} {
		id := ComputeID(link)
		prev, dup := seen[id]
		assert.False(t, dup, "%s collides with %s", link, prev)
		seen[id] = link
	}
}

func TestLinkFromID_Invalid(t *testing.T) {
	_, err := LinkFromID("not/base64!")
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "decode article id"))
}
