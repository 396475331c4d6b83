package jira

import (
	"context"
	"fmt"
)

// MockFetcher implements IssueFetcher for testing
type MockFetcher struct {
	Payloads map[string]string
	Errors   map[string]error

	// Keys requested, in order
	Calls []string
}

// FetchIssue mocks the Jira issue endpoint
func (m *MockFetcher) FetchIssue(ctx context.Context, key string) ([]byte, error) {
	m.Calls = append(m.Calls, key)
	if err := m.Errors[key]; err != nil {
		return nil, err
	}
	payload, ok := m.Payloads[key]
	if !ok {
		return nil, fmt.Errorf("issue %s does not exist", key)
	}
	return []byte(payload), nil
}

// IssuePayload builds a minimal issue response; an empty parentType omits the parent
func IssuePayload(key, issueType, parentType string) string {
	if parentType == "" {
		return fmt.Sprintf(`{"key": %q, "fields": {"issuetype": {"name": %q}}}`, key, issueType)
	}
	return fmt.Sprintf(`{"key": %q, "fields": {"issuetype": {"name": %q}, "parent": {"key": "PARENT-1", "fields": {"issuetype": {"name": %q}}}}}`,
		key, issueType, parentType)
}
