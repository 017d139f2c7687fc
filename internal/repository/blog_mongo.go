package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rajan167030/portfolio/internal/models"
)

// BlogMongo provides Mongo-backed persistence for blog posts and comments.
// It satisfies the same service-layer contracts as BlogMemory, so swapping
// backends is a wiring change in cmd/server only.
type BlogMongo struct {
	postCol    *mongo.Collection
	commentCol *mongo.Collection
}

// NewBlogMongo wires the "posts" and "comments" collections.
func NewBlogMongo(db *mongo.Database) *BlogMongo {
	return &BlogMongo{
		postCol:    db.Collection("posts"),
		commentCol: db.Collection("comments"),
	}
}

// ---- posts -----------------------------------------------------------------

func (r *BlogMongo) ListPosts(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}

	cur, err := r.postCol.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []models.BlogPost{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *BlogMongo) GetPost(ctx context.Context, id string) (models.BlogPost, error) {
	var p models.BlogPost
	err := r.postCol.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.BlogPost{}, ErrNotFound
	}
	return p, err
}

func (r *BlogMongo) GetPostBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	var p models.BlogPost
	err := r.postCol.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.BlogPost{}, ErrNotFound
	}
	return p, err
}

func (r *BlogMongo) CreatePost(ctx context.Context, p models.BlogPost) (models.BlogPost, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, err := r.postCol.InsertOne(ctx, p); err != nil {
		return models.BlogPost{}, err
	}
	return p, nil
}

func (r *BlogMongo) UpdatePost(ctx context.Context, p models.BlogPost) (models.BlogPost, error) {
	res, err := r.postCol.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return models.BlogPost{}, err
	}
	if res.MatchedCount == 0 {
		return models.BlogPost{}, ErrNotFound
	}
	return p, nil
}

func (r *BlogMongo) DeletePost(ctx context.Context, id string) error {
	res, err := r.postCol.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	// Comments don't outlive their post.
	_, err = r.commentCol.DeleteMany(ctx, bson.M{"post_id": id})
	return err
}

// ---- comments --------------------------------------------------------------

func (r *BlogMongo) ListComments(ctx context.Context, postID string, approvedOnly bool) ([]models.Comment, error) {
	filter := bson.M{"post_id": postID}
	if approvedOnly {
		filter["approved"] = true
	}

	cur, err := r.commentCol.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "published_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	comments := []models.Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *BlogMongo) AddComment(ctx context.Context, c models.Comment) (models.Comment, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, err := r.commentCol.InsertOne(ctx, c); err != nil {
		return models.Comment{}, err
	}
	return c, nil
}

func (r *BlogMongo) SetCommentApproved(ctx context.Context, id string, approved bool) error {
	res, err := r.commentCol.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"approved": approved}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BlogMongo) DeleteComment(ctx context.Context, id string) error {
	res, err := r.commentCol.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
