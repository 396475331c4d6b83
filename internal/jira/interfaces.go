package jira

import "context"

// IssueFetcher retrieves the raw JSON of one issue
type IssueFetcher interface {
	FetchIssue(ctx context.Context, key string) ([]byte, error)
}

// Ensure Client implements IssueFetcher interface
var _ IssueFetcher = (*Client)(nil)
