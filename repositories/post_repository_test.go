package repositories

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"naya-blog/models"
)

func TestListFilter(t *testing.T) {
	testCases := []struct {
		name string
		opt  ListPostsOptions
		want bson.M
	}{
		{"empty", ListPostsOptions{}, bson.M{}},
		{"status", ListPostsOptions{Status: models.StatusPublished}, bson.M{"status": models.StatusPublished}},
		{"category all is ignored", ListPostsOptions{Category: "all"}, bson.M{}},
		{"category", ListPostsOptions{Category: "tutorials"}, bson.M{"category": "tutorials"}},
		{
			"search",
			ListPostsOptions{Status: models.StatusPublished, Search: "golang"},
			bson.M{"status": models.StatusPublished, "$text": bson.M{"$search": "golang"}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ListFilter(tc.opt))
		})
	}
}

func TestSlugFilter(t *testing.T) {
	assert.Equal(t, bson.M{"slug": "a"}, SlugFilter("a", primitive.NilObjectID))

	id := primitive.NewObjectID()
	assert.Equal(t, bson.M{"slug": "a", "_id": bson.M{"$ne": id}}, SlugFilter("a", id))
}

func TestListPostsOptionsNormalize(t *testing.T) {
	got := ListPostsOptions{}.Normalize()
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, DefaultPageSize, got.PageSize)

	got = ListPostsOptions{Page: 3, PageSize: 1000}.Normalize()
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, MaxPageSize, got.PageSize)
	assert.Equal(t, 2*MaxPageSize, got.Skip())

	got = ListPostsOptions{Page: math.MaxInt, PageSize: 100}.Normalize()
	assert.Equal(t, math.MaxInt/100, got.Page)
	assert.Positive(t, got.Skip())
}

func publishedAt(days int) *time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
	return &t
}

func TestMemoryPostRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPostRepository()

	first := &models.BlogPost{Title: "Go tips", Slug: "go-tips", Status: models.StatusPublished, Category: models.CategoryTutorials, PublishedAt: publishedAt(1)}
	second := &models.BlogPost{Title: "Design", Slug: "design", Status: models.StatusPublished, Category: models.CategoryUIUXDesign, PublishedAt: publishedAt(2)}
	draft := &models.BlogPost{Title: "Draft", Slug: "draft", Status: models.StatusDraft}
	for _, p := range []*models.BlogPost{first, second, draft} {
		require.NoError(t, repo.Insert(ctx, p))
		assert.False(t, p.ID.IsZero())
	}

	err := repo.Insert(ctx, &models.BlogPost{Slug: "go-tips"})
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	posts, total, err := repo.List(ctx, ListPostsOptions{Status: models.StatusPublished})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, posts, 2)
	assert.Equal(t, "design", posts[0].Slug)

	posts, total, err = repo.List(ctx, ListPostsOptions{Status: models.StatusPublished, Search: "GO"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "go-tips", posts[0].Slug)

	posts, _, err = repo.List(ctx, ListPostsOptions{Status: models.StatusPublished, Page: 2, PageSize: 1})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "go-tips", posts[0].Slug)

	posts, total, err = repo.List(ctx, ListPostsOptions{Status: models.StatusPublished, Page: math.MaxInt / 10, PageSize: 100})
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.EqualValues(t, 2, total)

	exists, err := repo.SlugExists(ctx, "go-tips", first.ID)
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = repo.SlugExists(ctx, "go-tips", primitive.NilObjectID)
	require.NoError(t, err)
	assert.True(t, exists)

	n, err := repo.IncrementCounter(ctx, "go-tips", CounterViews)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	_, err = repo.IncrementCounter(ctx, "draft", CounterLikes)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Delete(ctx, draft.ID))
	assert.ErrorIs(t, repo.Delete(ctx, draft.ID), ErrNotFound)
	_, err = repo.FindByID(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemoryPostRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPostRepository()
	p := &models.BlogPost{Slug: "a", Tags: []string{"x"}}
	require.NoError(t, repo.Insert(ctx, p))

	p.Tags[0] = "mutated"
	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got.Tags)
}
