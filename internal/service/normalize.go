package service

import (
	"time"

	gh "github.com/google/go-github/v57/github"

	"github.com/Rajan167030/portfolio/internal/models"
)

// Normalize maps a raw GitHub repository record into the shape the site
// serves: absent numerics become 0, the default branch falls back to "main",
// topics are always a non-nil slice and timestamps are RFC 3339 strings.
func Normalize(r *gh.Repository) models.Repository {
	branch := r.GetDefaultBranch()
	if branch == "" {
		branch = "main"
	}

	topics := r.Topics
	if topics == nil {
		topics = []string{}
	}

	return models.Repository{
		ID:              r.GetID(),
		Name:            r.GetName(),
		FullName:        r.GetFullName(),
		HTMLURL:         r.GetHTMLURL(),
		Description:     r.GetDescription(),
		Language:        r.GetLanguage(),
		StargazersCount: r.GetStargazersCount(),
		ForksCount:      r.GetForksCount(),
		OpenIssuesCount: r.GetOpenIssuesCount(),
		WatchersCount:   r.GetWatchersCount(),
		Archived:        r.GetArchived(),
		Fork:            r.GetFork(),
		Topics:          topics,
		Homepage:        r.GetHomepage(),
		DefaultBranch:   branch,
		PushedAt:        formatTimestamp(r.GetPushedAt()),
		UpdatedAt:       formatTimestamp(r.GetUpdatedAt()),
		CreatedAt:       formatTimestamp(r.GetCreatedAt()),
		Owner:           models.RepoOwner{Login: r.GetOwner().GetLogin()},
		Visibility:      r.GetVisibility(),
	}
}

func formatTimestamp(ts gh.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
