package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Rajan167030/portfolio/internal/models"
)

// ErrUnknownAction is returned for notification actions the producer does not
// recognise.
var ErrUnknownAction = errors.New("unknown notification action")

// Notifier is the outbound-notification contract. Delivery semantics belong
// to the producer behind it; callers only hand over events. The returned
// string is a human-readable confirmation for the HTTP response.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification) (string, error)
}

// logNotifier "sends" mail by logging the would-be delivery. It also keeps
// the subscriber list in memory so the subscribe flow has something to add to.
type logNotifier struct {
	mu          sync.Mutex
	subscribers []string
}

// NewLogNotifier returns a Notifier that records sends in the server log
// instead of talking to an SMTP host.
func NewLogNotifier() Notifier {
	return &logNotifier{}
}

func (n *logNotifier) Notify(ctx context.Context, ev models.Notification) (string, error) {
	switch ev.Action {
	case models.ActionNewPost:
		log.Info().
			Str("title", ev.PostTitle).
			Str("url", ev.PostURL).
			Str("author", ev.AuthorName).
			Msg("sending new post notification")
		return "New post notifications sent successfully", nil

	case models.ActionNewComment:
		log.Info().
			Str("post", ev.PostTitle).
			Str("author", ev.CommentAuthor).
			Msg("sending comment notification")
		return "Comment notification sent", nil

	case models.ActionSubscribe:
		n.addSubscriber(ev.Email)
		log.Info().Str("email", ev.Email).Msg("new subscriber")
		// A welcome mail goes out automatically on subscription.
		if _, err := n.Notify(ctx, models.Notification{Action: models.ActionWelcome, Email: ev.Email}); err != nil {
			return "", err
		}
		return "Subscription successful", nil

	case models.ActionWelcome:
		log.Info().Str("email", ev.Email).Msg("sending welcome email")
		return "Welcome email sent", nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, ev.Action)
	}
}

func (n *logNotifier) addSubscriber(email string) {
	if email == "" {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if !slices.Contains(n.subscribers, email) {
		n.subscribers = append(n.subscribers, email)
	}
}

// Subscribers returns a copy of the current subscriber list.
func (n *logNotifier) Subscribers() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.subscribers)
}
