package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	gh "github.com/google/go-github/v57/github"
	"github.com/rs/zerolog/log"

	"github.com/Rajan167030/portfolio/internal/models"
)

// ---- GitHub client contract ------------------------------------------------

// GitHubLister is the slice of the GitHub client the repo service depends on.
type GitHubLister interface {
	AuthenticatedLogin(ctx context.Context) (string, error)
	ListUserRepos(ctx context.Context, username string) ([]*gh.Repository, error)
}

// ---- Service interface + implementation ------------------------------------

// ListOptions controls whose repositories are listed and which records are
// dropped server-side. The fork/archived exclusions here are independent of
// the explorer's own client-side toggles: the UI must be able to re-filter an
// already-filtered response without re-fetching.
type ListOptions struct {
	Username        string
	ExcludeForks    bool
	ExcludeArchived bool
}

// RepoService produces normalized repository collections for an account.
type RepoService interface {
	// List fetches, normalizes and filters one page of repositories.
	List(ctx context.Context, opts ListOptions) ([]models.Repository, error)
	// ListOrEmpty is the fail-soft variant: upstream failures degrade to an
	// empty collection. Callers must not treat a non-empty result as fresh.
	ListOrEmpty(ctx context.Context, opts ListOptions) []models.Repository
}

type repoService struct {
	gh       GitHubLister
	fallback string
	hasToken bool
	cache    *ristretto.Cache[string, []models.Repository]
	ttl      time.Duration
}

// NewRepoService wires the GitHub client and a TTL cache for listings.
// fallback is the account listed when no username is supplied and no token
// login can be resolved.
func NewRepoService(ghc GitHubLister, fallback string, hasToken bool, ttl time.Duration) (RepoService, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, []models.Repository]{
		NumCounters: 1e4,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create repo cache: %w", err)
	}

	return &repoService{
		gh:       ghc,
		fallback: fallback,
		hasToken: hasToken,
		cache:    cache,
		ttl:      ttl,
	}, nil
}

func (s *repoService) List(ctx context.Context, opts ListOptions) ([]models.Repository, error) {
	username := s.resolveUsername(ctx, opts.Username)

	key := fmt.Sprintf("%s|%t|%t", username, opts.ExcludeForks, opts.ExcludeArchived)
	if cached, found := s.cache.Get(key); found {
		return cached, nil
	}

	raw, err := s.gh.ListUserRepos(ctx, username)
	if err != nil {
		return nil, err
	}

	repos := make([]models.Repository, 0, len(raw))
	for _, r := range raw {
		if opts.ExcludeForks && r.GetFork() {
			continue
		}
		if opts.ExcludeArchived && r.GetArchived() {
			continue
		}
		repos = append(repos, Normalize(r))
	}

	s.cache.SetWithTTL(key, repos, 1, s.ttl)
	return repos, nil
}

func (s *repoService) ListOrEmpty(ctx context.Context, opts ListOptions) []models.Repository {
	repos, err := s.List(ctx, opts)
	if err != nil {
		log.Warn().Err(err).Str("username", opts.Username).Msg("repo listing failed; serving empty collection")
		return []models.Repository{}
	}
	return repos
}

// resolveUsername picks, in order: the explicit parameter, the token owner's
// login, the configured fallback handle.
func (s *repoService) resolveUsername(ctx context.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if s.hasToken {
		if login, err := s.gh.AuthenticatedLogin(ctx); err == nil && login != "" {
			return login
		}
	}
	return s.fallback
}
