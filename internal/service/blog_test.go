package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rajan167030/portfolio/internal/models"
	"github.com/Rajan167030/portfolio/internal/repository"
)

// captureNotifier records events instead of logging them.
type captureNotifier struct {
	events []models.Notification
}

func (c *captureNotifier) Notify(_ context.Context, n models.Notification) (string, error) {
	c.events = append(c.events, n)
	return "ok", nil
}

func newTestBlog() (BlogService, *captureNotifier) {
	store := repository.NewBlogMemorySeeded()
	notifier := &captureNotifier{}
	return NewBlogService(store, store, notifier), notifier
}

func TestCreatePublishedPostNotifiesSubscribers(t *testing.T) {
	svc, notifier := newTestBlog()

	created, err := svc.CreatePost(context.Background(), models.BlogPost{
		Title:     "Go for Web Developers",
		Slug:      "go-for-web-developers",
		Author:    models.Author{Name: "Rajan Jha"},
		Published: true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.PublishedAt)

	require.Len(t, notifier.events, 1)
	ev := notifier.events[0]
	assert.Equal(t, models.ActionNewPost, ev.Action)
	assert.Equal(t, "Go for Web Developers", ev.PostTitle)
	assert.Equal(t, "/blog/go-for-web-developers", ev.PostURL)
}

func TestCreateDraftPostStaysQuiet(t *testing.T) {
	svc, notifier := newTestBlog()

	_, err := svc.CreatePost(context.Background(), models.BlogPost{
		Title: "Draft",
		Slug:  "draft",
	})

	require.NoError(t, err)
	assert.Empty(t, notifier.events)
}

func TestAddCommentStartsUnapprovedAndNotifies(t *testing.T) {
	svc, notifier := newTestBlog()

	added, err := svc.AddComment(context.Background(), models.Comment{
		PostID:   "1",
		Author:   "Reader",
		Content:  "Nice one!",
		Approved: true, // must be ignored: moderation decides
	})

	require.NoError(t, err)
	assert.False(t, added.Approved)
	assert.NotEmpty(t, added.PublishedAt)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, models.ActionNewComment, notifier.events[0].Action)
	assert.Equal(t, "Reader", notifier.events[0].CommentAuthor)
}

func TestAddCommentOnMissingPost(t *testing.T) {
	svc, notifier := newTestBlog()

	_, err := svc.AddComment(context.Background(), models.Comment{
		PostID:  "does-not-exist",
		Author:  "Reader",
		Content: "hello?",
	})

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, notifier.events)
}

func TestApproveComment(t *testing.T) {
	svc, _ := newTestBlog()

	// Seeded comment "2" starts unapproved.
	pending, err := svc.ListComments(context.Background(), "1", true)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, svc.ApproveComment(context.Background(), "2"))

	approved, err := svc.ListComments(context.Background(), "1", true)
	require.NoError(t, err)
	assert.Len(t, approved, 2)
}

func TestListPostsPublishedOnly(t *testing.T) {
	svc, _ := newTestBlog()

	_, err := svc.CreatePost(context.Background(), models.BlogPost{Title: "Draft", Slug: "draft"})
	require.NoError(t, err)

	published, err := svc.ListPosts(context.Background(), true)
	require.NoError(t, err)
	all, err := svc.ListPosts(context.Background(), false)
	require.NoError(t, err)

	assert.Len(t, published, 2)
	assert.Len(t, all, 3)
}
