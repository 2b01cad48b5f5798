package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"naya-blog/models"
)

// MemoryPostRepository is an in-process PostRepository with the same ordering,
// filtering and uniqueness rules as the Mongo one. Used by service and handler tests.
// $text search is approximated by a case-insensitive match of any search term.
type MemoryPostRepository struct {
	mu    sync.RWMutex
	posts map[primitive.ObjectID]models.BlogPost

	// Err, when set, is returned by every call.
	Err error
}

func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{posts: map[primitive.ObjectID]models.BlogPost{}}
}

func (r *MemoryPostRepository) Insert(_ context.Context, p *models.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if r.slugTaken(p.Slug, primitive.NilObjectID) {
		return fmt.Errorf("%w: %s", ErrDuplicateSlug, p.Slug)
	}
	now := time.Now().UTC()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	r.posts[p.ID] = clonePost(*p)
	return nil
}

func (r *MemoryPostRepository) Replace(_ context.Context, p *models.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.posts[p.ID]; !ok {
		return ErrNotFound
	}
	if r.slugTaken(p.Slug, p.ID) {
		return fmt.Errorf("%w: %s", ErrDuplicateSlug, p.Slug)
	}
	p.UpdatedAt = time.Now().UTC()
	r.posts[p.ID] = clonePost(*p)
	return nil
}

func (r *MemoryPostRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.posts[id]; !ok {
		return ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *MemoryPostRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	p, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := clonePost(p)
	return &out, nil
}

func (r *MemoryPostRepository) FindBySlug(_ context.Context, slug string, status models.Status) (*models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, p := range r.posts {
		if p.Slug == slug && (status == "" || p.Status == status) {
			out := clonePost(p)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryPostRepository) SlugExists(_ context.Context, slug string, excludeID primitive.ObjectID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return false, r.Err
	}
	return r.slugTaken(slug, excludeID), nil
}

func (r *MemoryPostRepository) slugTaken(slug string, excludeID primitive.ObjectID) bool {
	for id, p := range r.posts {
		if p.Slug == slug && id != excludeID {
			return true
		}
	}
	return false
}

func (r *MemoryPostRepository) List(_ context.Context, opt ListPostsOptions) ([]models.BlogPost, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, 0, r.Err
	}
	opt = opt.Normalize()

	matched := []models.BlogPost{}
	for _, p := range r.posts {
		if matchesList(p, opt) {
			matched = append(matched, clonePost(p))
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := timeOrZero(matched[i].PublishedAt), timeOrZero(matched[j].PublishedAt)
		if !a.Equal(b) {
			return a.After(b)
		}
		return matched[i].ID.Hex() > matched[j].ID.Hex()
	})

	total := int64(len(matched))
	start := opt.Skip()
	if start >= len(matched) {
		return []models.BlogPost{}, total, nil
	}
	end := start + opt.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *MemoryPostRepository) ListAll(_ context.Context) ([]models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]models.BlogPost, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.Hex() > out[j].ID.Hex()
	})
	return out, nil
}

func (r *MemoryPostRepository) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	posts, _, err := r.List(ctx, ListPostsOptions{Status: models.StatusPublished, PageSize: MaxPageSize})
	if err != nil {
		return nil, err
	}
	// List caps the page size; the sitemap needs every post.
	all := posts
	for page := 2; len(posts) == MaxPageSize; page++ {
		posts, _, err = r.List(ctx, ListPostsOptions{Status: models.StatusPublished, Page: page, PageSize: MaxPageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, posts...)
	}
	return all, nil
}

func (r *MemoryPostRepository) IncrementCounter(_ context.Context, slug string, counter Counter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	for id, p := range r.posts {
		if p.Slug != slug || p.Status != models.StatusPublished {
			continue
		}
		switch counter {
		case CounterViews:
			p.Views++
			r.posts[id] = p
			return p.Views, nil
		case CounterLikes:
			p.Likes++
			r.posts[id] = p
			return p.Likes, nil
		default:
			return 0, fmt.Errorf("unknown counter %q", counter)
		}
	}
	return 0, ErrNotFound
}

func matchesList(p models.BlogPost, opt ListPostsOptions) bool {
	if opt.Status != "" && p.Status != opt.Status {
		return false
	}
	if opt.Category != "" && opt.Category != "all" && string(p.Category) != opt.Category {
		return false
	}
	if opt.Search == "" {
		return true
	}
	haystack := strings.ToLower(strings.Join(append([]string{p.Title, p.Excerpt, p.Content}, p.Tags...), " "))
	for _, term := range strings.Fields(strings.ToLower(opt.Search)) {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func clonePost(p models.BlogPost) models.BlogPost {
	p.Tags = append([]string(nil), p.Tags...)
	p.Headings = append([]string(nil), p.Headings...)
	p.TOC = append([]models.Heading(nil), p.TOC...)
	if p.PublishedAt != nil {
		t := *p.PublishedAt
		p.PublishedAt = &t
	}
	if p.ScheduledAt != nil {
		t := *p.ScheduledAt
		p.ScheduledAt = &t
	}
	if p.StructuredData != nil {
		sd := make(map[string]any, len(p.StructuredData))
		for k, v := range p.StructuredData {
			sd[k] = v
		}
		p.StructuredData = sd
	}
	return p
}
