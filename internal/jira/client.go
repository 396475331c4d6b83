package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	gojira "github.com/andygrunwald/go-jira"
)

// Options holds Jira connection settings
type Options struct {
	BaseURL   string
	Email     string
	APIToken  string
	Transport http.RoundTripper
}

// Client fetches issue metadata from Jira
type Client struct {
	jira *gojira.Client
}

func NewClient(opts Options) (*Client, error) {
	tp := &gojira.BasicAuthTransport{
		Username:  opts.Email,
		Password:  opts.APIToken,
		Transport: opts.Transport,
	}

	jiraClient, err := gojira.NewClient(tp.Client(), opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create Jira client: %w", err)
	}
	return &Client{jira: jiraClient}, nil
}

// FetchIssue returns the raw issue payload restricted to its type and parent
func (c *Client) FetchIssue(ctx context.Context, key string) ([]byte, error) {
	path := fmt.Sprintf("rest/api/2/issue/%s?fields=issuetype,parent", url.PathEscape(key))
	req, err := c.jira.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build issue request: %w", err)
	}

	var raw json.RawMessage
	if _, err := c.jira.Do(req, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch issue %s: %w", key, err)
	}
	return raw, nil
}
