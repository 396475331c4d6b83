package jira

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIssueKey(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		branch   string
		expected string
	}{
		{
			name:     "key in title",
			title:    "Fix login bug PROJ-123",
			branch:   "feature/OTHER-9",
			expected: "PROJ-123",
		},
		{
			name:     "key in branch only",
			title:    "Fix login bug",
			branch:   "feature/ABC-7-fix",
			expected: "ABC-7",
		},
		{
			name:     "first key in title wins",
			title:    "ABC-1 and DEF-2",
			expected: "ABC-1",
		},
		{
			name:     "lowercase key is ignored",
			title:    "abc-1 cleanup",
			branch:   "bugfix/abc-1",
			expected: "",
		},
		{
			name:     "no key anywhere",
			title:    "Refactor",
			branch:   "main",
			expected: "",
		},
		{
			name:     "hyphen without digits",
			title:    "WIP-draft",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveIssueKey(tt.title, tt.branch))
		})
	}
}
