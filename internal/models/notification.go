package models

// Notification actions accepted by POST /api/email.
const (
	ActionNewPost    = "new-post"
	ActionNewComment = "new-comment"
	ActionSubscribe  = "subscribe"
	ActionWelcome    = "welcome"
)

// Notification is a single outbound-mail event. Only the fields relevant to
// the action are populated; delivery is owned by whatever producer backs the
// notifier, not by this type.
type Notification struct {
	Action string `json:"action"`

	// new-post
	PostTitle   string `json:"postTitle,omitempty"`
	PostExcerpt string `json:"postExcerpt,omitempty"`
	PostURL     string `json:"postUrl,omitempty"`
	AuthorName  string `json:"authorName,omitempty"`

	// new-comment
	CommentAuthor  string `json:"commentAuthor,omitempty"`
	CommentContent string `json:"commentContent,omitempty"`

	// subscribe / welcome
	Email string `json:"email,omitempty"`
}
