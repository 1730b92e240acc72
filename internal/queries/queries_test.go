package queries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	seen := map[string]bool{}
	for _, q := range All() {
		assert.False(t, seen[q.Name], "duplicate query name %s", q.Name)
		seen[q.Name] = true
		assert.True(t, strings.HasPrefix(q.Query, "query "), "%s must be a query operation", q.Name)
		assert.NotContains(t, q.Query, "mutation", "%s must not mutate", q.Name)
		assert.Equal(t, strings.Count(q.Query, "{"), strings.Count(q.Query, "}"), "%s has unbalanced braces", q.Name)
	}
}

func TestLookup(t *testing.T) {
	q, ok := Lookup("jobs")
	assert.True(t, ok)
	assert.Equal(t, JobListings, q.Query)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}
