package slugify_test

import (
	"regexp"
	"strings"
	"testing"

	"go-blog-backend/pkg/slugify"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple title",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "punctuation is stripped not kept as hyphen neighbours",
			input:    "Into the Glade, Uninvited.",
			expected: "into-the-glade-uninvited",
		},
		{
			name:     "uppercase is lowered",
			input:    "GO Generics Explained",
			expected: "go-generics-explained",
		},
		{
			name:     "numbers survive",
			input:    "Top 10 Posts of 2026",
			expected: "top-10-posts-of-2026",
		},
		{
			name:     "consecutive separators collapse",
			input:    "one -- two --- three",
			expected: "one-two-three",
		},
		{
			name:     "leading and trailing punctuation trimmed",
			input:    "...edge case!",
			expected: "edge-case",
		},
		{
			name:     "emoji removed",
			input:    "Launch day 🚀🚀",
			expected: "launch-day",
		},
		{
			name:     "empty title",
			input:    "",
			expected: "",
		},
		{
			name:     "no retainable characters",
			input:    "!!! ??? ...",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugify.Make(tt.input))
		})
	}
}

func TestMakeIsDeterministic(t *testing.T) {
	assert.Equal(t, slugify.Make("Some Title Here"), slugify.Make("Some Title Here"))
}

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestMakeUnique(t *testing.T) {
	t.Run("appends suffix to base slug", func(t *testing.T) {
		s := slugify.MakeUnique("Into the Glade, Uninvited.")
		assert.True(t, strings.HasPrefix(s, "into-the-glade-uninvited-"))
		assert.Regexp(t, slugShape, s)
	})

	t.Run("falls back when title has no retainable characters", func(t *testing.T) {
		s := slugify.MakeUnique("!!!")
		assert.True(t, strings.HasPrefix(s, "post-"))
		assert.Regexp(t, slugShape, s)
	})

	t.Run("same title yields distinct slugs", func(t *testing.T) {
		a := slugify.MakeUnique("Duplicate Title")
		b := slugify.MakeUnique("Duplicate Title")
		assert.NotEqual(t, a, b)
	})
}
