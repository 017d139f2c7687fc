package models

// Author identifies who wrote a blog post.
type Author struct {
	Name   string `bson:"name"   json:"name"`
	Avatar string `bson:"avatar" json:"avatar"`
}

// BlogPost is a single article managed through the admin panel.
type BlogPost struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Title       string   `bson:"title"         json:"title"`
	Excerpt     string   `bson:"excerpt"       json:"excerpt"`
	Content     string   `bson:"content"       json:"content"`
	Image       string   `bson:"image"         json:"image"`
	Author      Author   `bson:"author"        json:"author"`
	PublishedAt string   `bson:"published_at"  json:"publishedAt"`
	ReadingTime int      `bson:"reading_time"  json:"readingTime"`
	Category    string   `bson:"category"      json:"category"`
	Tags        []string `bson:"tags"          json:"tags"`
	Slug        string   `bson:"slug"          json:"slug"`
	Featured    bool     `bson:"featured"      json:"featured"`
	Published   bool     `bson:"published"     json:"published"`
	Views       int      `bson:"views"         json:"views"`
	Likes       int      `bson:"likes"         json:"likes"`
}

// Comment is a reader comment on a post. Comments start unapproved and only
// show on the public surface once an admin approves them.
type Comment struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	PostID      string `bson:"post_id"       json:"postId"`
	Author      string `bson:"author"        json:"author"`
	Email       string `bson:"email"         json:"email"`
	Content     string `bson:"content"       json:"content"`
	PublishedAt string `bson:"published_at"  json:"publishedAt"`
	Approved    bool   `bson:"approved"      json:"approved"`
}
