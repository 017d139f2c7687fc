package service

import (
	"context"
	"errors"
	"testing"
	"time"

	gh "github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGitHub fakes the GitHub client for adapter tests.
type stubGitHub struct {
	login     string
	loginErr  error
	repos     []*gh.Repository
	listErr   error
	listCalls int
	listedFor []string
}

func (s *stubGitHub) AuthenticatedLogin(context.Context) (string, error) {
	return s.login, s.loginErr
}

func (s *stubGitHub) ListUserRepos(_ context.Context, username string) ([]*gh.Repository, error) {
	s.listCalls++
	s.listedFor = append(s.listedFor, username)
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.repos, nil
}

func ghRepo(id int64, name string, fork, archived bool) *gh.Repository {
	return &gh.Repository{
		ID:       gh.Int64(id),
		Name:     gh.String(name),
		Fork:     gh.Bool(fork),
		Archived: gh.Bool(archived),
	}
}

func newTestRepoService(t *testing.T, stub *stubGitHub, fallback string, hasToken bool) RepoService {
	t.Helper()
	svc, err := NewRepoService(stub, fallback, hasToken, time.Minute)
	require.NoError(t, err)
	return svc
}

func TestListExcludesForksAndArchivedServerSide(t *testing.T) {
	stub := &stubGitHub{repos: []*gh.Repository{
		ghRepo(1, "keep", false, false),
		ghRepo(2, "fork", true, false),
		ghRepo(3, "archived", false, true),
	}}
	svc := newTestRepoService(t, stub, "rajanjha", false)

	repos, err := svc.List(context.Background(), ListOptions{
		Username:        "rajanjha",
		ExcludeForks:    true,
		ExcludeArchived: true,
	})

	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "keep", repos[0].Name)
}

func TestListKeepsEverythingWithoutExclusions(t *testing.T) {
	stub := &stubGitHub{repos: []*gh.Repository{
		ghRepo(1, "keep", false, false),
		ghRepo(2, "fork", true, false),
	}}
	svc := newTestRepoService(t, stub, "rajanjha", false)

	repos, err := svc.List(context.Background(), ListOptions{Username: "rajanjha"})

	require.NoError(t, err)
	assert.Len(t, repos, 2)
}

func TestListUsernameResolutionOrder(t *testing.T) {
	t.Run("explicit parameter wins", func(t *testing.T) {
		stub := &stubGitHub{login: "token-owner"}
		svc := newTestRepoService(t, stub, "fallback", true)

		_, err := svc.List(context.Background(), ListOptions{Username: "explicit"})

		require.NoError(t, err)
		assert.Equal(t, []string{"explicit"}, stub.listedFor)
	})

	t.Run("token login when no parameter", func(t *testing.T) {
		stub := &stubGitHub{login: "token-owner"}
		svc := newTestRepoService(t, stub, "fallback", true)

		_, err := svc.List(context.Background(), ListOptions{})

		require.NoError(t, err)
		assert.Equal(t, []string{"token-owner"}, stub.listedFor)
	})

	t.Run("fallback when login resolution fails", func(t *testing.T) {
		stub := &stubGitHub{loginErr: errors.New("401")}
		svc := newTestRepoService(t, stub, "fallback", true)

		_, err := svc.List(context.Background(), ListOptions{})

		require.NoError(t, err)
		assert.Equal(t, []string{"fallback"}, stub.listedFor)
	})

	t.Run("fallback without token", func(t *testing.T) {
		stub := &stubGitHub{}
		svc := newTestRepoService(t, stub, "fallback", false)

		_, err := svc.List(context.Background(), ListOptions{})

		require.NoError(t, err)
		assert.Equal(t, []string{"fallback"}, stub.listedFor)
	})
}

func TestListPropagatesUpstreamError(t *testing.T) {
	stub := &stubGitHub{listErr: errors.New("boom")}
	svc := newTestRepoService(t, stub, "rajanjha", false)

	_, err := svc.List(context.Background(), ListOptions{Username: "rajanjha"})

	assert.Error(t, err)
}

func TestListOrEmptyDegradesToEmptyCollection(t *testing.T) {
	stub := &stubGitHub{listErr: errors.New("rate limited")}
	svc := newTestRepoService(t, stub, "rajanjha", false)

	repos := svc.ListOrEmpty(context.Background(), ListOptions{Username: "rajanjha"})

	assert.NotNil(t, repos)
	assert.Empty(t, repos)
}

func TestListEmptyAccountYieldsEmptyArrayNotError(t *testing.T) {
	stub := &stubGitHub{}
	svc := newTestRepoService(t, stub, "rajanjha", false)

	repos, err := svc.List(context.Background(), ListOptions{Username: "rajanjha"})

	require.NoError(t, err)
	assert.Empty(t, repos)
}

func TestListCachesCollections(t *testing.T) {
	stub := &stubGitHub{repos: []*gh.Repository{ghRepo(1, "keep", false, false)}}
	svc := newTestRepoService(t, stub, "rajanjha", false)

	_, err := svc.List(context.Background(), ListOptions{Username: "rajanjha"})
	require.NoError(t, err)

	// Ristretto applies buffered writes asynchronously.
	svc.(*repoService).cache.Wait()

	_, err = svc.List(context.Background(), ListOptions{Username: "rajanjha"})
	require.NoError(t, err)

	assert.Equal(t, 1, stub.listCalls)
}

func TestListCacheKeyIncludesExclusions(t *testing.T) {
	stub := &stubGitHub{repos: []*gh.Repository{
		ghRepo(1, "keep", false, false),
		ghRepo(2, "fork", true, false),
	}}
	svc := newTestRepoService(t, stub, "rajanjha", false)

	all, err := svc.List(context.Background(), ListOptions{Username: "rajanjha"})
	require.NoError(t, err)
	svc.(*repoService).cache.Wait()

	noForks, err := svc.List(context.Background(), ListOptions{Username: "rajanjha", ExcludeForks: true})
	require.NoError(t, err)

	assert.Len(t, all, 2)
	assert.Len(t, noForks, 1)
	assert.Equal(t, 2, stub.listCalls)
}
