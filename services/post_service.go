package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"naya-blog/config"
	"naya-blog/content"
	"naya-blog/dto"
	"naya-blog/eventbus"
	"naya-blog/events"
	"naya-blog/metrics"
	"naya-blog/models"
	"naya-blog/repositories"
	"naya-blog/trace"
)

// PostStore is the storage PostService needs.
// *repositories.PostRepository and *repositories.MemoryPostRepository implement it.
type PostStore interface {
	Insert(ctx context.Context, p *models.BlogPost) error
	Replace(ctx context.Context, p *models.BlogPost) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error)
	FindBySlug(ctx context.Context, slug string, status models.Status) (*models.BlogPost, error)
	SlugExists(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error)
	List(ctx context.Context, opt repositories.ListPostsOptions) ([]models.BlogPost, int64, error)
	ListAll(ctx context.Context) ([]models.BlogPost, error)
	ListPublished(ctx context.Context) ([]models.BlogPost, error)
	IncrementCounter(ctx context.Context, slug string, counter repositories.Counter) (int64, error)
}

// CacheInvalidator drops a cached value after a write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

const publishTimeout = 5 * time.Second

// PostService encapsulates business logic for posts and DTO mapping
type PostService struct {
	repo    PostStore
	bus     eventbus.EventBus
	topic   eventbus.Topic
	sitemap CacheInvalidator
	now     func() time.Time
}

// NewPostService wires the service. bus and sitemap may be nil.
func NewPostService(repo PostStore, bus eventbus.EventBus, topic eventbus.Topic, sitemap CacheInvalidator) *PostService {
	if bus == nil {
		bus = eventbus.NoopEventBus{}
	}
	return &PostService{
		repo:    repo,
		bus:     bus,
		topic:   topic,
		sitemap: sitemap,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create validates the request, resolves the slug, derives every computed field and inserts the post.
func (s *PostService) Create(ctx context.Context, req dto.PostRequest) (dto.PostDTO, error) {
	var p models.BlogPost
	applyRequest(&p, req)
	if err := validatePost(p); err != nil {
		return dto.PostDTO{}, err
	}

	explicit := ""
	if req.Slug != nil {
		explicit = *req.Slug
	}
	p.Slug = content.ResolveSlug(explicit, p.Title)
	if p.Slug == "" {
		return dto.PostDTO{}, validationError("slug is empty after normalization")
	}

	// best-effort; uniq_slug catches the race
	exists, err := s.repo.SlugExists(ctx, p.Slug, primitive.NilObjectID)
	if err != nil {
		return dto.PostDTO{}, storeError("check slug", err)
	}
	if exists {
		return dto.PostDTO{}, ErrConflict
	}

	if p.PublishedAt == nil && p.Status == models.StatusPublished {
		now := s.now()
		p.PublishedAt = &now
	}

	p, err = content.Derive(p)
	if err != nil {
		return dto.PostDTO{}, validationError("content could not be parsed: %v", err)
	}
	if err := s.repo.Insert(ctx, &p); err != nil {
		return dto.PostDTO{}, storeError("insert post", err)
	}

	s.afterWrite(ctx, events.PostCreated, p)
	return dto.NewPostDTO(p), nil
}

// Update overlays the supplied fields on the stored post and re-derives it.
// The stored slug is kept unless a new one is supplied.
func (s *PostService) Update(ctx context.Context, hexID string, req dto.PostRequest) (dto.PostDTO, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return dto.PostDTO{}, ErrNotFound
	}
	stored, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return dto.PostDTO{}, storeError("find post", err)
	}

	p := *stored
	// SEO values the fallback chain produced last time are recomputed from the new content.
	p.SEO = content.StripDerivedSEO(stored.SEO, content.SEOSource{
		Title:     stored.Title,
		Excerpt:   stored.Excerpt,
		PlainText: content.PlainText(stored.Content),
		ImageURL:  stored.ImageURL,
	})
	applyRequest(&p, req)
	if err := validatePost(p); err != nil {
		return dto.PostDTO{}, err
	}

	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		p.Slug = content.Slugify(*req.Slug)
		if p.Slug == "" {
			return dto.PostDTO{}, validationError("slug is empty after normalization")
		}
	}
	if p.Slug != stored.Slug {
		exists, err := s.repo.SlugExists(ctx, p.Slug, p.ID)
		if err != nil {
			return dto.PostDTO{}, storeError("check slug", err)
		}
		if exists {
			return dto.PostDTO{}, ErrConflict
		}
	}

	if p.PublishedAt == nil && p.Status == models.StatusPublished {
		now := s.now()
		p.PublishedAt = &now
	}

	p, err = content.Derive(p)
	if err != nil {
		return dto.PostDTO{}, validationError("content could not be parsed: %v", err)
	}
	if err := s.repo.Replace(ctx, &p); err != nil {
		return dto.PostDTO{}, storeError("replace post", err)
	}

	s.afterWrite(ctx, events.PostUpdated, p)
	return dto.NewPostDTO(p), nil
}

func (s *PostService) Delete(ctx context.Context, hexID string) error {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return ErrNotFound
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return storeError("find post", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError("delete post", err)
	}

	s.afterWrite(ctx, events.PostDeleted, *p)
	return nil
}

type ListPostsInput struct {
	Page     int
	Limit    int
	Search   string
	Category string
}

// ListPublished lists published posts newest first with pagination metadata.
func (s *PostService) ListPublished(ctx context.Context, in ListPostsInput) (dto.PostListDTO, error) {
	opt := repositories.ListPostsOptions{
		Status:   models.StatusPublished,
		Category: in.Category,
		Search:   strings.TrimSpace(in.Search),
		Page:     in.Page,
		PageSize: in.Limit,
	}.Normalize()

	posts, total, err := s.repo.List(ctx, opt)
	if err != nil {
		return dto.PostListDTO{}, storeError("list posts", err)
	}
	return dto.PostListDTO{
		Posts:      dto.NewPostDTOs(posts),
		Pagination: dto.NewPaginationDTO(opt.Page, opt.PageSize, total),
	}, nil
}

// AdminList returns every post regardless of status.
func (s *PostService) AdminList(ctx context.Context) (dto.AdminPostListDTO, error) {
	posts, err := s.repo.ListAll(ctx)
	if err != nil {
		return dto.AdminPostListDTO{}, storeError("list all posts", err)
	}
	return dto.AdminPostListDTO{Posts: dto.NewPostDTOs(posts), Total: len(posts)}, nil
}

// GetPublishedBySlug returns a published post with heading anchors injected into its content.
func (s *PostService) GetPublishedBySlug(ctx context.Context, slug string) (dto.PostDetailDTO, error) {
	p, err := s.repo.FindBySlug(ctx, slug, models.StatusPublished)
	if err != nil {
		return dto.PostDetailDTO{}, storeError("find post", err)
	}
	return dto.PostDetailDTO{
		PostDTO:         dto.NewPostDTO(*p),
		RenderedContent: content.InjectHeadingIDs(p.Content, p.TOC),
	}, nil
}

func (s *PostService) RegisterView(ctx context.Context, slug string) (dto.CounterDTO, error) {
	n, err := s.repo.IncrementCounter(ctx, slug, repositories.CounterViews)
	if err != nil {
		return dto.CounterDTO{}, storeError("increment views", err)
	}
	return dto.CounterDTO{Slug: slug, Views: &n}, nil
}

func (s *PostService) RegisterLike(ctx context.Context, slug string) (dto.CounterDTO, error) {
	n, err := s.repo.IncrementCounter(ctx, slug, repositories.CounterLikes)
	if err != nil {
		return dto.CounterDTO{}, storeError("increment likes", err)
	}
	return dto.CounterDTO{Slug: slug, Likes: &n}, nil
}

// afterWrite publishes the lifecycle event and drops the sitemap cache.
// The write is already committed, so failures are only logged.
func (s *PostService) afterWrite(ctx context.Context, t events.EventType, p models.BlogPost) {
	requestID := trace.RequestIDFromContext(ctx)
	fields := config.Fields{"event_type": string(t), "post_id": p.ID.Hex(), "slug": p.Slug, "request_id": requestID}

	evt := events.NewPostEvent(t, p, requestID)
	msg, err := eventbus.NewJSONEvent(evt.ID, string(t), p.ID.Hex(), evt)
	if err == nil {
		pctx, cancel := context.WithTimeout(ctx, publishTimeout)
		err = s.bus.Publish(pctx, s.topic.Base(), msg)
		cancel()
	}
	metrics.RecordEventPublish(string(t), err)
	if err != nil {
		fields["error"] = err.Error()
		config.ErrorWithFields("post event publish failed", fields)
	}

	if s.sitemap != nil {
		if err := s.sitemap.Invalidate(ctx); err != nil {
			config.WarnWithFields("sitemap cache invalidation failed", config.Fields{"error": err.Error(), "slug": p.Slug})
		}
	}
}

// applyRequest copies every supplied field of req onto p.
func applyRequest(p *models.BlogPost, req dto.PostRequest) {
	setString(&p.Title, req.Title)
	setString(&p.Excerpt, req.Excerpt)
	setString(&p.Content, req.Content)
	setString(&p.Author, req.Author)
	setString(&p.ImageURL, req.ImageURL)
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Tags != nil {
		p.Tags = normalizeTags(*req.Tags)
	}
	if req.PublishedAt != nil {
		t := req.PublishedAt.UTC()
		p.PublishedAt = &t
	}
	if req.ScheduledAt != nil {
		t := req.ScheduledAt.UTC()
		p.ScheduledAt = &t
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Pinned != nil {
		p.Pinned = *req.Pinned
	}

	setString(&p.MetaTitle, req.MetaTitle)
	setString(&p.MetaDescription, req.MetaDescription)
	setString(&p.CanonicalURL, req.CanonicalURL)
	setString(&p.OGTitle, req.OGTitle)
	setString(&p.OGDescription, req.OGDescription)
	setString(&p.OGImage, req.OGImage)
	if req.TwitterCard != nil {
		p.TwitterCard = *req.TwitterCard
	}
	if req.StructuredData != nil {
		p.StructuredData = bson.M(req.StructuredData)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// normalizeTags trims, drops empty and de-duplicates tags keeping first-seen order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
