package jira

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const subTaskType = "Sub-task"

// TypeResolver maps issue keys to issue type names, remembering every answer for the
// lifetime of the resolver. Sub-tasks report the type of their parent.
type TypeResolver struct {
	fetcher IssueFetcher
	cache   map[string]string
}

// NewTypeResolver returns a resolver; a nil fetcher disables lookups.
func NewTypeResolver(fetcher IssueFetcher) *TypeResolver {
	return &TypeResolver{
		fetcher: fetcher,
		cache:   make(map[string]string),
	}
}

// IssueType returns the type name for key, or "" when it cannot be resolved
func (r *TypeResolver) IssueType(ctx context.Context, key string) string {
	if key == "" || r.fetcher == nil {
		return ""
	}
	if issueType, ok := r.cache[key]; ok {
		return issueType
	}

	payload, err := r.fetcher.FetchIssue(ctx, key)
	if err != nil {
		log.WithError(err).WithField("issue", key).Debug("issue type lookup failed")
		r.cache[key] = ""
		return ""
	}

	issueType := issueTypeFromPayload(payload)
	r.cache[key] = issueType
	return issueType
}

func issueTypeFromPayload(payload []byte) string {
	own := gjson.GetBytes(payload, "fields.issuetype.name").String()
	if own != subTaskType {
		return own
	}
	parent := gjson.GetBytes(payload, "fields.parent.fields.issuetype.name").String()
	return firstNonEmpty(parent, own)
}
