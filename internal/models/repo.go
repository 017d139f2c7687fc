package models

// RepoOwner carries the only owner field the site cares about: the login
// needed to resolve a README preview image.
type RepoOwner struct {
	Login string `json:"login"`
}

// Repository is the normalized shape of a GitHub repository as served by
// GET /api/github/repos. Optional numeric fields default to 0 and
// DefaultBranch to "main"; timestamps are ISO-8601 strings and may be empty.
type Repository struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Language    string `json:"language"`

	StargazersCount int `json:"stargazers_count"`
	ForksCount      int `json:"forks_count"`
	OpenIssuesCount int `json:"open_issues_count"`
	WatchersCount   int `json:"watchers_count"`

	Archived bool `json:"archived"`
	Fork     bool `json:"fork"`

	Topics        []string  `json:"topics"`
	Homepage      string    `json:"homepage"`
	DefaultBranch string    `json:"default_branch"`
	PushedAt      string    `json:"pushed_at"`
	UpdatedAt     string    `json:"updated_at"`
	CreatedAt     string    `json:"created_at"`
	Owner         RepoOwner `json:"owner"`
	Visibility    string    `json:"visibility"`
}
