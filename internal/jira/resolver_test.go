package jira

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeResolver_IssueType(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		payloads map[string]string
		errs     map[string]error
		expected string
	}{
		{
			name:     "direct type",
			key:      "ABC-1",
			payloads: map[string]string{"ABC-1": IssuePayload("ABC-1", "Bug", "")},
			expected: "Bug",
		},
		{
			name:     "sub-task takes parent type",
			key:      "ABC-2",
			payloads: map[string]string{"ABC-2": IssuePayload("ABC-2", "Sub-task", "Story")},
			expected: "Story",
		},
		{
			name:     "sub-task without parent type keeps own type",
			key:      "ABC-3",
			payloads: map[string]string{"ABC-3": IssuePayload("ABC-3", "Sub-task", "")},
			expected: "Sub-task",
		},
		{
			name:     "non sub-task ignores parent",
			key:      "ABC-4",
			payloads: map[string]string{"ABC-4": IssuePayload("ABC-4", "Task", "Epic")},
			expected: "Task",
		},
		{
			name:     "lookup failure",
			key:      "ABC-5",
			errs:     map[string]error{"ABC-5": errors.New("404 Not Found")},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &MockFetcher{Payloads: tt.payloads, Errors: tt.errs}
			r := NewTypeResolver(fetcher)

			assert.Equal(t, tt.expected, r.IssueType(context.Background(), tt.key))
			assert.Equal(t, []string{tt.key}, fetcher.Calls)
		})
	}
}

func TestTypeResolver_Memoizes(t *testing.T) {
	fetcher := &MockFetcher{
		Payloads: map[string]string{"ABC-1": IssuePayload("ABC-1", "Story", "")},
		Errors:   map[string]error{"ABC-9": errors.New("boom")},
	}
	r := NewTypeResolver(fetcher)
	ctx := context.Background()

	assert.Equal(t, "Story", r.IssueType(ctx, "ABC-1"))
	assert.Equal(t, "Story", r.IssueType(ctx, "ABC-1"))
	assert.Equal(t, "", r.IssueType(ctx, "ABC-9"))
	assert.Equal(t, "", r.IssueType(ctx, "ABC-9"))

	assert.Equal(t, []string{"ABC-1", "ABC-9"}, fetcher.Calls)
}

func TestTypeResolver_SkipsLookup(t *testing.T) {
	t.Run("empty key", func(t *testing.T) {
		fetcher := &MockFetcher{}
		r := NewTypeResolver(fetcher)

		assert.Equal(t, "", r.IssueType(context.Background(), ""))
		assert.Empty(t, fetcher.Calls)
	})

	t.Run("tracker not configured", func(t *testing.T) {
		r := NewTypeResolver(nil)
		assert.Equal(t, "", r.IssueType(context.Background(), "ABC-1"))
	})
}
