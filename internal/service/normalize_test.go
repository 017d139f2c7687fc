package service

import (
	"testing"
	"time"

	gh "github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	got := Normalize(&gh.Repository{
		ID:   gh.Int64(42),
		Name: gh.String("bare"),
	})

	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "bare", got.Name)
	assert.Zero(t, got.StargazersCount)
	assert.Zero(t, got.ForksCount)
	assert.Zero(t, got.OpenIssuesCount)
	assert.Zero(t, got.WatchersCount)
	assert.Equal(t, "main", got.DefaultBranch)
	assert.NotNil(t, got.Topics)
	assert.Empty(t, got.Topics)
	assert.Empty(t, got.UpdatedAt)
	assert.Empty(t, got.Owner.Login)
}

func TestNormalizeCarriesFields(t *testing.T) {
	updated := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	got := Normalize(&gh.Repository{
		ID:              gh.Int64(7),
		Name:            gh.String("portfolio"),
		FullName:        gh.String("rajan/portfolio"),
		HTMLURL:         gh.String("https://github.com/rajan/portfolio"),
		Description:     gh.String("my site"),
		Language:        gh.String("TypeScript"),
		StargazersCount: gh.Int(12),
		ForksCount:      gh.Int(3),
		Archived:        gh.Bool(false),
		Fork:            gh.Bool(true),
		Topics:          []string{"nextjs", "portfolio"},
		DefaultBranch:   gh.String("trunk"),
		UpdatedAt:       &gh.Timestamp{Time: updated},
		Owner:           &gh.User{Login: gh.String("rajan")},
		Visibility:      gh.String("public"),
	})

	assert.Equal(t, "rajan/portfolio", got.FullName)
	assert.Equal(t, "TypeScript", got.Language)
	assert.Equal(t, 12, got.StargazersCount)
	assert.True(t, got.Fork)
	assert.Equal(t, "trunk", got.DefaultBranch)
	assert.Equal(t, "2024-03-01T12:00:00Z", got.UpdatedAt)
	assert.Equal(t, "rajan", got.Owner.Login)
}
