package jira

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchIssue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "me@example.com", user)
		assert.Equal(t, "token", pass)
		assert.Equal(t, "issuetype,parent", r.URL.Query().Get("fields"))

		switch r.URL.Path {
		case "/rest/api/2/issue/ABC-2":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(IssuePayload("ABC-2", "Sub-task", "Story")))
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errorMessages": ["Issue does not exist or you do not have permission to see it."]}`))
		}
	}))
	defer server.Close()

	client, err := NewClient(Options{BaseURL: server.URL, Email: "me@example.com", APIToken: "token"})
	require.NoError(t, err)

	r := NewTypeResolver(client)
	assert.Equal(t, "Story", r.IssueType(context.Background(), "ABC-2"))
	assert.Equal(t, "", r.IssueType(context.Background(), "NOPE-1"))

	_, err = client.FetchIssue(context.Background(), "NOPE-1")
	assert.Error(t, err)
}
