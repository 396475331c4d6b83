package bitbucket

import (
	"context"
	"fmt"

	"github.com/ryo246912/bb-qa-reviews/internal/models"
)

// MockClient implements BitbucketClient for testing
type MockClient struct {
	// Control test behavior
	CurrentUser       string
	CurrentUserError  error
	PullRequests      map[string][]models.PullRequest
	PullRequestErrors map[string]error
	Comments          map[string][]models.Comment
	CommentErrors     map[string]error

	// Track method calls
	CurrentUserUUIDCalled bool
	ListedRepositories    []string
	WalkedPRs             []string
}

// CurrentUserUUID mocks the /user call
func (m *MockClient) CurrentUserUUID(ctx context.Context) (string, error) {
	m.CurrentUserUUIDCalled = true
	return m.CurrentUser, m.CurrentUserError
}

// ListMergedPullRequests mocks the pull request search
func (m *MockClient) ListMergedPullRequests(ctx context.Context, repo, self string) ([]models.PullRequest, error) {
	m.ListedRepositories = append(m.ListedRepositories, repo)
	if err := m.PullRequestErrors[repo]; err != nil {
		return nil, err
	}
	return m.PullRequests[repo], nil
}

// WalkComments mocks the comment listing; comments are keyed by CommentKey
func (m *MockClient) WalkComments(ctx context.Context, repo string, prID int, user string, fn func(models.Comment) bool) error {
	key := CommentKey(repo, prID)
	m.WalkedPRs = append(m.WalkedPRs, key)
	for _, c := range m.Comments[key] {
		if c.User.UUID != "" && c.User.UUID != user {
			continue
		}
		if !fn(c) {
			return nil
		}
	}
	return m.CommentErrors[key]
}

// CommentKey identifies a PR's comments in MockClient.Comments
func CommentKey(repo string, prID int) string {
	return fmt.Sprintf("%s#%d", repo, prID)
}

// Helper functions for creating test data
func CreateTestPR(id int, title, branch string, participants ...models.Participant) models.PullRequest {
	pr := models.PullRequest{
		ID:           id,
		Title:        title,
		State:        "MERGED",
		Author:       models.User{UUID: "{author}"},
		Participants: participants,
	}
	pr.Links.HTML.Href = fmt.Sprintf("https://bitbucket.org/ws/repo/pull-requests/%d", id)
	pr.Source.Branch.Name = branch
	return pr
}

func CreateTestComment(user, raw, createdOn string) models.Comment {
	c := models.Comment{CreatedOn: createdOn, User: models.User{UUID: user}}
	c.Content.Raw = raw
	return c
}

// Error helpers for testing error conditions
func NewAPIError(message string) error {
	return fmt.Errorf("API error: %s", message)
}
