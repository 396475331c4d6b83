package models

// PullRequest represents Bitbucket PR metadata
type PullRequest struct {
	ID           int           `json:"id"`
	Title        string        `json:"title"`
	State        string        `json:"state"`
	Author       User          `json:"author"`
	Links        Links         `json:"links"`
	Participants []Participant `json:"participants"`
	Source       Source        `json:"source"`
}

// URL returns the PR web link
func (pr PullRequest) URL() string {
	return pr.Links.HTML.Href
}

// Branch returns the source branch name
func (pr PullRequest) Branch() string {
	return pr.Source.Branch.Name
}

type Links struct {
	HTML Link `json:"html"`
}

type Link struct {
	Href string `json:"href"`
}

type Source struct {
	Branch struct {
		Name string `json:"name"`
	} `json:"branch"`
}

// User represents a Bitbucket account
type User struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"display_name"`
	Nickname    string `json:"nickname"`
}

// Participant represents a user attached to a PR
type Participant struct {
	User     User   `json:"user"`
	Role     string `json:"role"`
	Approved bool   `json:"approved"`
}

// Comment represents a PR comment
type Comment struct {
	Content struct {
		Raw string `json:"raw"`
	} `json:"content"`
	CreatedOn string `json:"created_on"`
	User      User   `json:"user"`
}

// Page is one page of a paginated Bitbucket collection
type Page[T any] struct {
	Values []T    `json:"values"`
	Next   string `json:"next"`
}

// ReviewRecord is one row of the QA review report
type ReviewRecord struct {
	Repository string
	PRID       int
	IssueKey   string
	IssueType  string
	Title      string
	URL        string
	QADate     string
}
