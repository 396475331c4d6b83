package bitbucket

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/ryo246912/bb-qa-reviews/internal/models"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultAPIURL = "https://api.bitbucket.org/2.0"

	pageLen = 50

	pullRequestFields = "values.id,values.title,values.state,values.author,values.links,values.participants,values.source,next"
	commentFields     = "values.content.raw,values.created_on,values.user,next"
)

// ErrRepositoryInaccessible is returned when the first page of a repository listing fails
var ErrRepositoryInaccessible = errors.New("repository not found or access denied")

// Options configures a Client
type Options struct {
	BaseURL   string
	Email     string
	APIToken  string
	Workspace string
	// Log receives an HTTP trace when set
	Log       io.Writer
	Transport http.RoundTripper
}

// Client wraps a REST client pointed at the Bitbucket Cloud API
type Client struct {
	rest      *api.RESTClient
	baseURL   string
	workspace string
}

func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Bitbucket API URL: %w", err)
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	// Requests always carry absolute URLs, so the host only scopes the auth header.
	credentials := base64.StdEncoding.EncodeToString([]byte(opts.Email + ":" + opts.APIToken))
	restClient, err := api.NewRESTClient(api.ClientOptions{
		Host:      u.Hostname(),
		AuthToken: opts.APIToken,
		Headers: map[string]string{
			"Authorization": "Basic " + credentials,
			"Accept":        "application/json",
		},
		Transport:      transport,
		Log:            opts.Log,
		LogIgnoreEnv:   true,
		LogVerboseHTTP: opts.Log != nil,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	return &Client{
		rest:      restClient,
		baseURL:   baseURL,
		workspace: opts.Workspace,
	}, nil
}

// CurrentUserUUID fetches the authenticated user's UUID
func (c *Client) CurrentUserUUID(ctx context.Context) (string, error) {
	var user models.User
	if err := c.rest.DoWithContext(ctx, http.MethodGet, c.baseURL+"/user", nil, &user); err != nil {
		return "", fmt.Errorf("failed to fetch current user: %w", err)
	}
	if user.UUID == "" {
		return "", fmt.Errorf("failed to fetch current user: empty uuid in response")
	}
	return user.UUID, nil
}

// ListMergedPullRequests fetches merged, commented PRs in repo not authored by self
func (c *Client) ListMergedPullRequests(ctx context.Context, repo, self string) ([]models.PullRequest, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf(`state="MERGED" AND comment_count > 0 AND author.uuid!="%s"`, self))
	params.Set("pagelen", strconv.Itoa(pageLen))
	params.Set("fields", pullRequestFields)

	var prs []models.PullRequest
	pages, err := paginate(ctx, c.rest, c.repositoryURL(repo, "pullrequests"), params, func(pr models.PullRequest) bool {
		prs = append(prs, pr)
		return true
	})
	if err != nil {
		if pages == 0 {
			return nil, fmt.Errorf("%w: %s: %w", ErrRepositoryInaccessible, repo, err)
		}
		log.WithError(err).WithField("repository", repo).Debug("pull request listing truncated")
	}
	return prs, nil
}

// WalkComments visits the comments of a PR written by user, in page order, until fn returns false
func (c *Client) WalkComments(ctx context.Context, repo string, prID int, user string, fn func(models.Comment) bool) error {
	params := url.Values{}
	params.Set("q", fmt.Sprintf(`user.uuid="%s"`, user))
	params.Set("pagelen", strconv.Itoa(pageLen))
	params.Set("fields", commentFields)

	path := c.repositoryURL(repo, fmt.Sprintf("pullrequests/%d/comments", prID))
	if _, err := paginate(ctx, c.rest, path, params, fn); err != nil {
		return fmt.Errorf("failed to fetch comments: %w", err)
	}
	return nil
}

func (c *Client) repositoryURL(repo, resource string) string {
	return fmt.Sprintf("%s/repositories/%s/%s/%s",
		c.baseURL, url.PathEscape(c.workspace), url.PathEscape(repo), resource)
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
