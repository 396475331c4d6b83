package jira

import "regexp"

var issueKeyPattern = regexp.MustCompile(`[A-Z]+-\d+`)

// ResolveIssueKey returns the first issue key found in the title, falling back to the branch name.
func ResolveIssueKey(title, branch string) string {
	return firstMatch(issueKeyPattern, title, branch)
}

func firstMatch(re *regexp.Regexp, candidates ...string) string {
	for _, s := range candidates {
		if m := re.FindString(s); m != "" {
			return m
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
