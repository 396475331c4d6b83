package service

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"slices"

	"github.com/ryo246912/bb-qa-reviews/internal/bitbucket"
	"github.com/ryo246912/bb-qa-reviews/internal/jira"
	"github.com/ryo246912/bb-qa-reviews/internal/models"
	"github.com/ryo246912/bb-qa-reviews/internal/report"
	"github.com/ryo246912/bb-qa-reviews/internal/ui"
	log "github.com/sirupsen/logrus"
)

const mergedState = "MERGED"

// Matches "QA" or "DEV QA" anywhere in a comment
var qaPattern = regexp.MustCompile(`(?i)(DEV )?QA`)

// IssueTypeResolver resolves an issue key to its type name
type IssueTypeResolver interface {
	IssueType(ctx context.Context, key string) string
}

// Auditor contains the business logic of one audit run
type Auditor struct {
	client       bitbucket.BitbucketClient
	issues       IssueTypeResolver
	repositories []string
	out          io.Writer
}

// NewAuditor creates a new auditor instance
func NewAuditor(client bitbucket.BitbucketClient, issues IssueTypeResolver, repositories []string) *Auditor {
	return &Auditor{
		client:       client,
		issues:       issues,
		repositories: repositories,
		out:          io.Discard,
	}
}

// SetOutput directs the per-PR match lines to w
func (a *Auditor) SetOutput(w io.Writer) {
	a.out = w
}

// Run authenticates and audits every repository in order
func (a *Auditor) Run(ctx context.Context) ([]models.ReviewRecord, error) {
	log.Info("Authenticating...")
	self, err := a.client.CurrentUserUUID(ctx)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	log.Infof("Authenticated as UUID: %s", self)

	var records []models.ReviewRecord
	for _, repo := range a.repositories {
		records = append(records, a.AuditRepository(ctx, repo, self)...)
	}
	return records, nil
}

// AuditRepository returns one record per PR in repo that self approved and acknowledged with a QA comment.
// An inaccessible repository yields no records.
func (a *Auditor) AuditRepository(ctx context.Context, repo, self string) []models.ReviewRecord {
	logger := log.WithField("repository", repo)
	logger.Info("Processing repository")

	prs, err := a.client.ListMergedPullRequests(ctx, repo, self)
	if err != nil {
		logger.WithError(err).WithField("status", bitbucket.StatusCode(err)).
			Warnf("Repository %s not found or access denied", repo)
		return nil
	}

	approved := ApprovedBy(prs, self)
	logger.Infof("Found %d approved PRs. Checking comments...", len(approved))

	var records []models.ReviewRecord
	for _, pr := range approved {
		qaDate, ok := a.FindQAComment(ctx, repo, pr.ID, self)
		if !ok {
			continue
		}

		logger.WithField("pr", pr.ID).Debug("QA comment found")
		ui.PrintMatch(a.out, pr.ID, pr.Title)
		key := jira.ResolveIssueKey(pr.Title, pr.Branch())
		records = append(records, models.ReviewRecord{
			Repository: repo,
			PRID:       pr.ID,
			IssueKey:   key,
			IssueType:  a.issues.IssueType(ctx, key),
			Title:      pr.Title,
			URL:        pr.URL(),
			QADate:     report.NormalizeDate(qaDate),
		})
	}
	return records
}

// FindQAComment returns the creation time of the first QA comment user left on the PR.
// A failing comment page ends the search with whatever was seen so far.
func (a *Auditor) FindQAComment(ctx context.Context, repo string, prID int, user string) (string, bool) {
	var match *models.Comment
	err := a.client.WalkComments(ctx, repo, prID, user, func(c models.Comment) bool {
		if c.User.UUID != "" && c.User.UUID != user {
			return true
		}
		if IsQAComment(c.Content.Raw) {
			match = &c
			return false
		}
		return true
	})
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"repository": repo, "pr": prID}).Debug("comment scan truncated")
	}

	if match == nil {
		return "", false
	}
	return match.CreatedOn, true
}

// ApprovedBy keeps the merged PRs, not authored by user, that user approved
func ApprovedBy(prs []models.PullRequest, user string) []models.PullRequest {
	var approved []models.PullRequest
	for _, pr := range prs {
		if eligible(pr, user) && approvedBy(pr, user) {
			approved = append(approved, pr)
		}
	}
	return approved
}

// IsQAComment reports whether a comment body carries a QA acknowledgement
func IsQAComment(raw string) bool {
	return qaPattern.MatchString(raw)
}

// eligible repeats the server-side search filter; fields missing from the response are not held against the PR
func eligible(pr models.PullRequest, self string) bool {
	if pr.State != "" && pr.State != mergedState {
		return false
	}
	return pr.Author.UUID != self
}

func approvedBy(pr models.PullRequest, user string) bool {
	return slices.ContainsFunc(pr.Participants, func(p models.Participant) bool {
		return p.Approved && p.User.UUID == user
	})
}
