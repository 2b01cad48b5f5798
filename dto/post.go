package dto

import (
	"time"

	"naya-blog/models"
)

// PostDTO is the public representation of a post.
// ID is a hex string; the raw _id never leaves the service.
type PostDTO struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Excerpt     string          `json:"excerpt"`
	Content     string          `json:"content"`
	Author      string          `json:"author"`
	Category    models.Category `json:"category"`
	Tags        []string        `json:"tags"`
	ImageURL    string          `json:"image_url,omitempty"`
	Slug        string          `json:"slug"`
	URL         string          `json:"url"`
	Status      models.Status   `json:"status"`
	PublishedAt *time.Time      `json:"published_at"`
	ScheduledAt *time.Time      `json:"scheduled_at"`

	models.SEO

	Headings    []string         `json:"headings"`
	TOC         []models.Heading `json:"toc"`
	ReadingTime int              `json:"reading_time"`
	WordCount   int              `json:"word_count"`

	Featured bool  `json:"featured"`
	Pinned   bool  `json:"pinned"`
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPostDTO constructs PostDTO from models.BlogPost
func NewPostDTO(p models.BlogPost) PostDTO {
	return PostDTO{
		ID:          p.ID.Hex(),
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		Author:      p.Author,
		Category:    p.Category,
		Tags:        nonNil(p.Tags),
		ImageURL:    p.ImageURL,
		Slug:        p.Slug,
		URL:         p.URL(),
		Status:      p.Status,
		PublishedAt: p.PublishedAt,
		ScheduledAt: p.ScheduledAt,
		SEO:         p.SEO,
		Headings:    nonNil(p.Headings),
		TOC:         nonNil(p.TOC),
		ReadingTime: p.ReadingTime,
		WordCount:   p.WordCount,
		Featured:    p.Featured,
		Pinned:      p.Pinned,
		Views:       p.Views,
		Likes:       p.Likes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewPostDTOs(posts []models.BlogPost) []PostDTO {
	out := make([]PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostDTO(p))
	}
	return out
}

// PostDetailDTO is returned by the public detail endpoint.
// RenderedContent is Content with TOC anchors injected into the headings.
type PostDetailDTO struct {
	PostDTO
	RenderedContent string `json:"rendered_content"`
}

// PostMutationDTO wraps a created or updated post.
type PostMutationDTO struct {
	Message string  `json:"message" example:"Post created successfully"`
	Post    PostDTO `json:"post"`
}

// CounterDTO is returned by the view and like endpoints.
type CounterDTO struct {
	Slug  string `json:"slug"`
	Views *int64 `json:"views,omitempty"`
	Likes *int64 `json:"likes,omitempty"`
}

// PostRequest is the body of POST /posts and PUT /posts/{id}.
// nil means "not supplied"; on update only supplied fields are applied.
type PostRequest struct {
	Title       *string          `json:"title,omitempty"`
	Excerpt     *string          `json:"excerpt,omitempty"`
	Content     *string          `json:"content,omitempty"`
	Author      *string          `json:"author,omitempty"`
	Category    *models.Category `json:"category,omitempty"`
	Tags        *[]string        `json:"tags,omitempty"`
	ImageURL    *string          `json:"image_url,omitempty"`
	Slug        *string          `json:"slug,omitempty"`
	Status      *models.Status   `json:"status,omitempty"`
	PublishedAt *time.Time       `json:"published_at,omitempty"`
	ScheduledAt *time.Time       `json:"scheduled_at,omitempty"`
	Featured    *bool            `json:"featured,omitempty"`
	Pinned      *bool            `json:"pinned,omitempty"`

	MetaTitle       *string             `json:"meta_title,omitempty"`
	MetaDescription *string             `json:"meta_description,omitempty"`
	CanonicalURL    *string             `json:"canonical_url,omitempty"`
	OGTitle         *string             `json:"og_title,omitempty"`
	OGDescription   *string             `json:"og_description,omitempty"`
	OGImage         *string             `json:"og_image,omitempty"`
	TwitterCard     *models.TwitterCard `json:"twitter_card,omitempty"`
	StructuredData  map[string]any      `json:"structured_data,omitempty"`
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
