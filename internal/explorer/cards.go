package explorer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Rajan167030/portfolio/internal/models"
)

// NoPreviewText is the placeholder shown when no README image resolves.
const NoPreviewText = "No preview found"

// How many README lookups run at once during a bulk resolve.
const resolveConcurrency = 8

// ImageState tracks one card's preview image lifecycle.
type ImageState int

const (
	ImageLoading ImageState = iota
	ImageResolved
	ImageNone
)

func (s ImageState) String() string {
	switch s {
	case ImageResolved:
		return "resolved"
	case ImageNone:
		return "none"
	default:
		return "loading"
	}
}

// MarshalText renders the state as its lowercase name in JSON.
func (s ImageState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses the lowercase name back into a state.
func (s *ImageState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "resolved":
		*s = ImageResolved
	case "none":
		*s = ImageNone
	default:
		*s = ImageLoading
	}
	return nil
}

// Card is one rendered repository plus its preview-image state. Cards are
// independent: no cache is shared between them and nothing orders their
// resolutions relative to each other.
type Card struct {
	Repo     models.Repository `json:"repo"`
	Image    ImageState        `json:"imageState"`
	ImageURL string            `json:"imageUrl,omitempty"`
}

// Cards wraps the current view in loading-state cards.
func (e *Explorer) Cards() []Card {
	view := e.View()
	cards := make([]Card, len(view))
	for i, r := range view {
		cards[i] = Card{Repo: r, Image: ImageLoading}
	}
	return cards
}

// ResolveCardImage resolves one card's preview image. ctx doubles as the
// card's liveness guard: when it is cancelled before the lookup finishes the
// result is discarded and the card stays in its loading state.
func (e *Explorer) ResolveCardImage(ctx context.Context, c *Card) {
	url, ok := e.images.ResolveImage(ctx, c.Repo.Owner.Login, c.Repo.Name)
	if ctx.Err() != nil {
		return
	}

	if ok {
		c.Image = ImageResolved
		c.ImageURL = url
		return
	}
	c.Image = ImageNone
}

// ResolveImages resolves every card concurrently. Cards finish in arbitrary
// order; a failure on one never affects its siblings.
func (e *Explorer) ResolveImages(ctx context.Context, cards []Card) {
	var g errgroup.Group
	g.SetLimit(resolveConcurrency)

	for i := range cards {
		i := i
		g.Go(func() error {
			e.ResolveCardImage(ctx, &cards[i])
			return nil
		})
	}
	_ = g.Wait()
}
