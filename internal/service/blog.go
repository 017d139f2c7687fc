package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Rajan167030/portfolio/internal/models"
)

// ---- Repository layer contracts -------------------------------------------

// PostRepository handles persistence of blog posts. Implementations are
// interchangeable: the in-memory store and the Mongo store satisfy the same
// contract, so the handlers never know which one is wired.
type PostRepository interface {
	ListPosts(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error)
	GetPost(ctx context.Context, id string) (models.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (models.BlogPost, error)
	CreatePost(ctx context.Context, p models.BlogPost) (models.BlogPost, error)
	UpdatePost(ctx context.Context, p models.BlogPost) (models.BlogPost, error)
	DeletePost(ctx context.Context, id string) error
}

// CommentRepository handles persistence of reader comments.
type CommentRepository interface {
	ListComments(ctx context.Context, postID string, approvedOnly bool) ([]models.Comment, error)
	AddComment(ctx context.Context, c models.Comment) (models.Comment, error)
	SetCommentApproved(ctx context.Context, id string, approved bool) error
	DeleteComment(ctx context.Context, id string) error
}

// ---- Service interface + implementation ------------------------------------

// BlogService is the business layer over posts and comments. Mutations that
// readers should hear about are forwarded to the Notifier; notification
// failures are logged and never fail the mutation itself.
type BlogService interface {
	ListPosts(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (models.BlogPost, error)
	CreatePost(ctx context.Context, p models.BlogPost) (models.BlogPost, error)
	UpdatePost(ctx context.Context, p models.BlogPost) (models.BlogPost, error)
	DeletePost(ctx context.Context, id string) error

	ListComments(ctx context.Context, postID string, approvedOnly bool) ([]models.Comment, error)
	AddComment(ctx context.Context, c models.Comment) (models.Comment, error)
	ApproveComment(ctx context.Context, id string) error
	DeleteComment(ctx context.Context, id string) error
}

type blogService struct {
	posts    PostRepository
	comments CommentRepository
	notifier Notifier
}

// NewBlogService wires the stores and the notification producer.
func NewBlogService(posts PostRepository, comments CommentRepository, notifier Notifier) BlogService {
	return &blogService{posts: posts, comments: comments, notifier: notifier}
}

func (s *blogService) ListPosts(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	return s.posts.ListPosts(ctx, publishedOnly)
}

func (s *blogService) GetPostBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	return s.posts.GetPostBySlug(ctx, slug)
}

func (s *blogService) CreatePost(ctx context.Context, p models.BlogPost) (models.BlogPost, error) {
	if p.PublishedAt == "" {
		p.PublishedAt = time.Now().UTC().Format("2006-01-02")
	}

	created, err := s.posts.CreatePost(ctx, p)
	if err != nil {
		return models.BlogPost{}, err
	}

	if created.Published {
		s.notify(ctx, models.Notification{
			Action:      models.ActionNewPost,
			PostTitle:   created.Title,
			PostExcerpt: created.Excerpt,
			PostURL:     "/blog/" + created.Slug,
			AuthorName:  created.Author.Name,
		})
	}
	return created, nil
}

func (s *blogService) UpdatePost(ctx context.Context, p models.BlogPost) (models.BlogPost, error) {
	return s.posts.UpdatePost(ctx, p)
}

func (s *blogService) DeletePost(ctx context.Context, id string) error {
	return s.posts.DeletePost(ctx, id)
}

func (s *blogService) ListComments(ctx context.Context, postID string, approvedOnly bool) ([]models.Comment, error) {
	return s.comments.ListComments(ctx, postID, approvedOnly)
}

// AddComment stores a new comment awaiting moderation and notifies the admin.
func (s *blogService) AddComment(ctx context.Context, c models.Comment) (models.Comment, error) {
	post, err := s.posts.GetPost(ctx, c.PostID)
	if err != nil {
		return models.Comment{}, err
	}

	c.Approved = false
	if c.PublishedAt == "" {
		c.PublishedAt = time.Now().UTC().Format("2006-01-02")
	}

	added, err := s.comments.AddComment(ctx, c)
	if err != nil {
		return models.Comment{}, err
	}

	s.notify(ctx, models.Notification{
		Action:         models.ActionNewComment,
		PostTitle:      post.Title,
		PostURL:        "/blog/" + post.Slug,
		CommentAuthor:  added.Author,
		CommentContent: added.Content,
	})
	return added, nil
}

func (s *blogService) ApproveComment(ctx context.Context, id string) error {
	return s.comments.SetCommentApproved(ctx, id, true)
}

func (s *blogService) DeleteComment(ctx context.Context, id string) error {
	return s.comments.DeleteComment(ctx, id)
}

func (s *blogService) notify(ctx context.Context, ev models.Notification) {
	if s.notifier == nil {
		return
	}
	if _, err := s.notifier.Notify(ctx, ev); err != nil {
		log.Warn().Err(err).Str("action", ev.Action).Msg("notification failed")
	}
}
