package bitbucket

import (
	"context"

	"github.com/ryo246912/bb-qa-reviews/internal/models"
)

// BitbucketClient defines the interface for Bitbucket operations
type BitbucketClient interface {
	CurrentUserUUID(ctx context.Context) (string, error)
	ListMergedPullRequests(ctx context.Context, repo, self string) ([]models.PullRequest, error)
	WalkComments(ctx context.Context, repo string, prID int, user string, fn func(models.Comment) bool) error
}

// Ensure Client implements BitbucketClient interface
var _ BitbucketClient = (*Client)(nil)
