// Package github wraps the GitHub REST API v3 behind the handful of calls
// this site needs: listing a user's repositories, resolving the
// authenticated login, and fetching README metadata plus its raw body.
package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// ListPageSize is the single page of repositories fetched per listing.
// Accounts with more repositories are silently truncated.
const ListPageSize = 100

// Client is a thin wrapper around go-github plus a raw HTTP client for
// downloading README bodies (which are served outside the REST API).
type Client struct {
	rest *gh.Client
	http *http.Client
}

// NewClient returns a ready-to-use GitHub API client.
// token may be an empty string, but you will be subject to very low rate-limits.
func NewClient(ctx context.Context, token string) *Client {
	hc := &http.Client{Timeout: 10 * time.Second}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
		hc.Timeout = 10 * time.Second
	}

	return &Client{
		rest: gh.NewClient(hc),
		http: hc,
	}
}

// AuthenticatedLogin resolves the login of the user owning the configured token.
func (c *Client) AuthenticatedLogin(ctx context.Context) (string, error) {
	user, _, err := c.rest.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("github: get authenticated user: %w", err)
	}
	return user.GetLogin(), nil
}

// ListUserRepos fetches the user's 100 most-recently-updated repositories.
func (c *Client) ListUserRepos(ctx context.Context, username string) ([]*gh.Repository, error) {
	opts := &gh.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: ListPageSize},
	}

	repos, _, err := c.rest.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, fmt.Errorf("github: list repos for %s: %w", username, err)
	}
	return repos, nil
}

// GetReadme fetches README metadata for a repository. A repository without a
// README yields an error (GitHub answers 404).
func (c *Client) GetReadme(ctx context.Context, owner, repo string) (*gh.RepositoryContent, error) {
	readme, _, err := c.rest.Repositories.GetReadme(ctx, owner, repo, nil)
	if err != nil {
		return nil, fmt.Errorf("github: get readme %s/%s: %w", owner, repo, err)
	}
	return readme, nil
}

// FetchRaw downloads the document at url (typically a README download_url)
// and returns its body as text.
func (c *Client) FetchRaw(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "portfolio-api")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("github: unexpected status %s fetching %s", resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// StatusCode extracts the upstream HTTP status from a go-github error, or 0
// when the error carries none (network failure, cancelled context).
func StatusCode(err error) int {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode
	}
	return 0
}
