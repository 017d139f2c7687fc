package service

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	gh "github.com/google/go-github/v57/github"
	"github.com/rs/zerolog/log"
)

// ---- GitHub client contract ------------------------------------------------

// ReadmeFetcher is the slice of the GitHub client the image resolver needs.
type ReadmeFetcher interface {
	GetReadme(ctx context.Context, owner, repo string) (*gh.RepositoryContent, error)
	FetchRaw(ctx context.Context, url string) (string, error)
}

// ---- Service interface + implementation ------------------------------------

// ReadmeImageService discovers a representative preview image for a
// repository by scanning its README for the first Markdown image reference.
// Best-effort by contract: every failure mode degrades to "no image".
type ReadmeImageService interface {
	ResolveImage(ctx context.Context, owner, repo string) (string, bool)
}

// firstImage matches the first Markdown image: ![alt](url-or-path).
var firstImage = regexp.MustCompile(`!\[[^\]]*\]\(([^)]+)\)`)

var absoluteURL = regexp.MustCompile(`(?i)^https?://`)

type imageResult struct {
	url   string
	found bool
}

type readmeImageService struct {
	gh    ReadmeFetcher
	cache *ristretto.Cache[string, imageResult]
	ttl   time.Duration
}

// NewReadmeImageService wires the GitHub client and a TTL cache. Negative
// results are cached too, so repos without a README are not re-fetched on
// every card render.
func NewReadmeImageService(ghc ReadmeFetcher, ttl time.Duration) (ReadmeImageService, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, imageResult]{
		NumCounters: 1e4,
		MaxCost:     1 << 22,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create readme image cache: %w", err)
	}

	return &readmeImageService{gh: ghc, cache: cache, ttl: ttl}, nil
}

func (s *readmeImageService) ResolveImage(ctx context.Context, owner, repo string) (string, bool) {
	key := owner + "/" + repo
	if cached, found := s.cache.Get(key); found {
		return cached.url, cached.found
	}

	imageURL, found := s.resolve(ctx, owner, repo)
	s.cache.SetWithTTL(key, imageResult{url: imageURL, found: found}, 1, s.ttl)
	return imageURL, found
}

func (s *readmeImageService) resolve(ctx context.Context, owner, repo string) (string, bool) {
	meta, err := s.gh.GetReadme(ctx, owner, repo)
	if err != nil {
		// No README, rate-limited, not found: all normal terminal states.
		log.Debug().Err(err).Str("repo", owner+"/"+repo).Msg("readme metadata unavailable")
		return "", false
	}

	downloadURL := meta.GetDownloadURL()
	if downloadURL == "" {
		return "", false
	}

	body, err := s.gh.FetchRaw(ctx, downloadURL)
	if err != nil {
		log.Debug().Err(err).Str("repo", owner+"/"+repo).Msg("readme body fetch failed")
		return "", false
	}

	match := firstImage.FindStringSubmatch(body)
	if match == nil {
		return "", false
	}

	target := strings.TrimSpace(match[1])
	target = strings.TrimPrefix(target, "<")
	target = strings.TrimSuffix(target, ">")

	if absoluteURL.MatchString(target) {
		return target, true
	}

	// Relative to the repository root.
	switch {
	case strings.HasPrefix(target, "./"):
		target = target[2:]
	case strings.HasPrefix(target, "/"):
		target = target[1:]
	}

	branch := branchFromDownloadURL(downloadURL, owner, repo)
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/%s", owner, repo, branch, target), true
}

// branchFromDownloadURL recovers the branch segment from a
// raw.githubusercontent.com download URL ("/{owner}/{repo}/{branch}/…").
// "HEAD" is always a valid ref for raw content, so it is the fallback.
func branchFromDownloadURL(downloadURL, owner, repo string) string {
	u, err := url.Parse(downloadURL)
	if err != nil {
		return "HEAD"
	}

	parts := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	if len(parts) >= 3 && parts[0] == owner && parts[1] == repo && parts[2] != "" {
		return parts[2]
	}
	return "HEAD"
}
