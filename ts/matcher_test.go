package ts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcherLongestFirst(t *testing.T) {
	m := newMatcher([]string{"t", "tʰ", "ts", "s", "+"})
	data := []struct {
		input string
		spans [][]int
	}{
		{"tʰ", [][]int{{0, 3}}},
		{"tʰts", [][]int{{0, 3}, {3, 5}}},
		{"st", [][]int{{0, 1}, {1, 2}}},
		{"t+", [][]int{{0, 1}, {1, 2}}},
		{"x", nil},
	}
	for _, d := range data {
		assert.Equal(t, d.spans, m.findAll(d.input), "matches in %q", d.input)
	}
	assert.Nil(t, newMatcher(nil).findAll("t"))
}
