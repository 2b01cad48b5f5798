package repositories

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"naya-blog/db"
	"naya-blog/models"
)

var (
	// ErrNotFound is returned when no post matches the filter.
	ErrNotFound = errors.New("post not found")
	// ErrDuplicateSlug is returned when the uniq_slug index rejects a write.
	ErrDuplicateSlug = errors.New("duplicate slug")
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Counter names a numeric field that can be incremented in place.
type Counter string

const (
	CounterViews Counter = "views"
	CounterLikes Counter = "likes"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(d *mongo.Database) *PostRepository {
	return &PostRepository{col: d.Collection(db.PostsCollection)}
}

// Insert inserts a new post document and sets p.ID.
func (r *PostRepository) Insert(ctx context.Context, p *models.BlogPost) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return translateWriteError(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

// Replace overwrites the whole document identified by p.ID.
func (r *PostRepository) Replace(ctx context.Context, p *models.BlogPost) error {
	p.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return translateWriteError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByID returns a post by its ObjectID
func (r *PostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindBySlug returns a post by slug. An empty status matches every status.
func (r *PostRepository) FindBySlug(ctx context.Context, slug string, status models.Status) (*models.BlogPost, error) {
	filter := bson.M{"slug": slug}
	if status != "" {
		filter["status"] = status
	}
	return r.findOne(ctx, filter)
}

func (r *PostRepository) findOne(ctx context.Context, filter bson.M) (*models.BlogPost, error) {
	var p models.BlogPost
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// SlugExists checks whether another post already uses slug.
// A zero excludeID checks every post. This is a best-effort pre-check; uniq_slug decides.
func (r *PostRepository) SlugExists(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error) {
	err := r.col.FindOne(ctx, SlugFilter(slug, excludeID), options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return err == nil, err
}

func SlugFilter(slug string, excludeID primitive.ObjectID) bson.M {
	filter := bson.M{"slug": slug}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

type ListPostsOptions struct {
	Status   models.Status
	Category string
	Search   string
	Page     int
	PageSize int
}

// Normalize applies the default page and page size.
func (o ListPostsOptions) Normalize() ListPostsOptions {
	if o.Page <= 0 {
		o.Page = 1
	}
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.PageSize > MaxPageSize {
		o.PageSize = MaxPageSize
	}
	// (Page-1)*PageSize 가 int 범위를 넘지 않도록 자른다. 이런 페이지는 어차피 비어 있다.
	if last := math.MaxInt / o.PageSize; o.Page > last {
		o.Page = last
	}
	return o
}

// Skip is the number of documents before the requested page. Call on normalized options.
func (o ListPostsOptions) Skip() int {
	return (o.Page - 1) * o.PageSize
}

// ListFilter builds the Mongo filter for List. Category "all" means no category filter.
func ListFilter(opt ListPostsOptions) bson.M {
	filter := bson.M{}
	if opt.Status != "" {
		filter["status"] = opt.Status
	}
	if opt.Category != "" && opt.Category != "all" {
		filter["category"] = opt.Category
	}
	if opt.Search != "" {
		filter["$text"] = bson.M{"$search": opt.Search}
	}
	return filter
}

// List returns posts with filters and pagination, sorted by published_at desc
func (r *PostRepository) List(ctx context.Context, opt ListPostsOptions) ([]models.BlogPost, int64, error) {
	opt = opt.Normalize()
	filter := ListFilter(opt)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64(opt.Skip())
	findOpts := options.Find().SetSkip(skip).SetLimit(int64(opt.PageSize)).SetSort(bson.D{
		{Key: "published_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	results, err := r.find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// ListAll returns every post regardless of status, newest first.
func (r *PostRepository) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	findOpts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	return r.find(ctx, bson.M{}, findOpts)
}

// ListPublished returns slug and timestamps of every published post for the sitemap.
func (r *PostRepository) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}}).
		SetProjection(bson.M{"slug": 1, "updated_at": 1, "published_at": 1})
	return r.find(ctx, bson.M{"status": models.StatusPublished}, findOpts)
}

// IncrementCounter increments views or likes of a published post by 1 and returns the new value.
// updated_at is left alone so counters do not change the sitemap lastmod.
func (r *PostRepository) IncrementCounter(ctx context.Context, slug string, counter Counter) (int64, error) {
	if counter != CounterViews && counter != CounterLikes {
		return 0, fmt.Errorf("unknown counter %q", counter)
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"views": 1, "likes": 1})
	var p models.BlogPost
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"slug": slug, "status": models.StatusPublished},
		bson.M{"$inc": bson.M{string(counter): 1}},
		opts,
	).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	if counter == CounterLikes {
		return p.Likes, nil
	}
	return p.Views, nil
}

func (r *PostRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.BlogPost, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	results := []models.BlogPost{}
	for cur.Next(ctx) {
		var p models.BlogPost
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// translateWriteError maps the unique slug index violation to ErrDuplicateSlug.
func translateWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicateSlug, err)
	}
	return err
}
