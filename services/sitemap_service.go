package services

import (
	"context"
	"strings"
	"time"

	"naya-blog/cache"
	"naya-blog/config"
	"naya-blog/dto"
	"naya-blog/models"
)

// PublishedLister lists the published posts for the sitemap.
type PublishedLister interface {
	ListPublished(ctx context.Context) ([]models.BlogPost, error)
}

// SitemapService builds sitemap entries for the static routes and every published post.
type SitemapService struct {
	repo  PublishedLister
	site  config.SiteConfig
	store cache.Store
	now   func() time.Time
}

// NewSitemapService wires the service. store may be nil (no cache).
func NewSitemapService(repo PublishedLister, site config.SiteConfig, store cache.Store) *SitemapService {
	return &SitemapService{
		repo:  repo,
		site:  site,
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Entries returns static routes first (last modified now), then one entry per published post.
// Only the post entries are cached.
func (s *SitemapService) Entries(ctx context.Context) (dto.SitemapDTO, error) {
	var postEntries []dto.SitemapEntryDTO
	err := cache.CacheAside(ctx, s.store, &postEntries, func() error {
		posts, err := s.repo.ListPublished(ctx)
		if err != nil {
			return storeError("list published posts", err)
		}
		postEntries = make([]dto.SitemapEntryDTO, 0, len(posts))
		for _, p := range posts {
			postEntries = append(postEntries, dto.SitemapEntryDTO{
				URL:          s.absolute(p.URL()),
				LastModified: lastModified(p),
			})
		}
		return nil
	})
	if err != nil {
		return dto.SitemapDTO{}, err
	}

	now := s.now()
	entries := make([]dto.SitemapEntryDTO, 0, len(s.site.StaticRoutes)+len(postEntries))
	for _, route := range s.site.StaticRoutes {
		entries = append(entries, dto.SitemapEntryDTO{URL: s.absolute(route), LastModified: now})
	}
	entries = append(entries, postEntries...)
	return dto.SitemapDTO{Entries: entries}, nil
}

func (s *SitemapService) absolute(path string) string {
	base := strings.TrimRight(s.site.BaseURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// lastModified is updated_at, falling back to published_at.
func lastModified(p models.BlogPost) time.Time {
	if !p.UpdatedAt.IsZero() {
		return p.UpdatedAt
	}
	if p.PublishedAt != nil {
		return *p.PublishedAt
	}
	return time.Time{}
}
