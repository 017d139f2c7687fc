package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Rajan167030/portfolio/internal/models"
)

// BlogMemory is the in-memory blog store. It is the default backend when no
// Mongo URI is configured and the stand-in used by tests; state lives only as
// long as the process.
type BlogMemory struct {
	mu       sync.RWMutex
	posts    map[string]models.BlogPost
	comments map[string]models.Comment
}

// NewBlogMemory returns an empty in-memory store.
func NewBlogMemory() *BlogMemory {
	return &BlogMemory{
		posts:    make(map[string]models.BlogPost),
		comments: make(map[string]models.Comment),
	}
}

// NewBlogMemorySeeded returns an in-memory store preloaded with the site's
// sample posts and comments.
func NewBlogMemorySeeded() *BlogMemory {
	m := NewBlogMemory()
	for _, p := range samplePosts() {
		m.posts[p.ID] = p
	}
	for _, c := range sampleComments() {
		m.comments[c.ID] = c
	}
	return m
}

// ---- posts -----------------------------------------------------------------

func (m *BlogMemory) ListPosts(_ context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.BlogPost, 0, len(m.posts))
	for _, p := range m.posts {
		if publishedOnly && !p.Published {
			continue
		}
		out = append(out, p)
	}

	// Newest first; dates are YYYY-MM-DD so string order works.
	sort.Slice(out, func(i, j int) bool {
		if out[i].PublishedAt != out[j].PublishedAt {
			return out[i].PublishedAt > out[j].PublishedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *BlogMemory) GetPost(_ context.Context, id string) (models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.posts[id]
	if !ok {
		return models.BlogPost{}, ErrNotFound
	}
	return p, nil
}

func (m *BlogMemory) GetPostBySlug(_ context.Context, slug string) (models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return models.BlogPost{}, ErrNotFound
}

func (m *BlogMemory) CreatePost(_ context.Context, p models.BlogPost) (models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m.posts[p.ID] = p
	return p, nil
}

func (m *BlogMemory) UpdatePost(_ context.Context, p models.BlogPost) (models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[p.ID]; !ok {
		return models.BlogPost{}, ErrNotFound
	}
	m.posts[p.ID] = p
	return p, nil
}

func (m *BlogMemory) DeletePost(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return ErrNotFound
	}
	delete(m.posts, id)

	// Comments don't outlive their post.
	for cid, c := range m.comments {
		if c.PostID == id {
			delete(m.comments, cid)
		}
	}
	return nil
}

// ---- comments --------------------------------------------------------------

func (m *BlogMemory) ListComments(_ context.Context, postID string, approvedOnly bool) ([]models.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Comment, 0)
	for _, c := range m.comments {
		if c.PostID != postID {
			continue
		}
		if approvedOnly && !c.Approved {
			continue
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].PublishedAt != out[j].PublishedAt {
			return out[i].PublishedAt < out[j].PublishedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *BlogMemory) AddComment(_ context.Context, c models.Comment) (models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m.comments[c.ID] = c
	return c, nil
}

func (m *BlogMemory) SetCommentApproved(_ context.Context, id string, approved bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.comments[id]
	if !ok {
		return ErrNotFound
	}
	c.Approved = approved
	m.comments[id] = c
	return nil
}

func (m *BlogMemory) DeleteComment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.comments[id]; !ok {
		return ErrNotFound
	}
	delete(m.comments, id)
	return nil
}
