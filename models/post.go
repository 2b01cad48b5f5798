package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the publication state of a post. Any status may follow any other.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusScheduled Status = "scheduled"
	StatusArchived  Status = "archived"
)

var AllStatuses = []Status{StatusDraft, StatusPublished, StatusScheduled, StatusArchived}

func (s Status) Valid() bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Category string

const (
	CategoryWebDevelopment    Category = "web-development"
	CategoryMobileDevelopment Category = "mobile-development"
	CategoryUIUXDesign        Category = "ui-ux-design"
	CategorySEOMarketing      Category = "seo-marketing"
	CategoryTutorials         Category = "tutorials"
	CategoryBusiness          Category = "business"
	CategoryCaseStudy         Category = "case-study"
	CategoryOpinion           Category = "opinion"
)

var AllCategories = []Category{
	CategoryWebDevelopment,
	CategoryMobileDevelopment,
	CategoryUIUXDesign,
	CategorySEOMarketing,
	CategoryTutorials,
	CategoryBusiness,
	CategoryCaseStudy,
	CategoryOpinion,
}

func (c Category) Valid() bool {
	for _, v := range AllCategories {
		if v == c {
			return true
		}
	}
	return false
}

type TwitterCard string

const (
	TwitterCardSummary           TwitterCard = "summary"
	TwitterCardSummaryLargeImage TwitterCard = "summary_large_image"
	TwitterCardApp               TwitterCard = "app"
	TwitterCardPlayer            TwitterCard = "player"
)

// Valid reports whether c is a known card type. The empty value is valid (unset).
func (c TwitterCard) Valid() bool {
	switch c {
	case "", TwitterCardSummary, TwitterCardSummaryLargeImage, TwitterCardApp, TwitterCardPlayer:
		return true
	}
	return false
}

// Heading is one table-of-contents entry.
type Heading struct {
	Level int    `bson:"level" json:"level"`
	Text  string `bson:"text" json:"text"`
	ID    string `bson:"id" json:"id"`
}

// SEO holds search/social metadata. Empty fields are filled by the fallback chain on save.
type SEO struct {
	MetaTitle       string      `bson:"meta_title,omitempty" json:"meta_title,omitempty"`
	MetaDescription string      `bson:"meta_description,omitempty" json:"meta_description,omitempty"`
	CanonicalURL    string      `bson:"canonical_url,omitempty" json:"canonical_url,omitempty"`
	OGTitle         string      `bson:"og_title,omitempty" json:"og_title,omitempty"`
	OGDescription   string      `bson:"og_description,omitempty" json:"og_description,omitempty"`
	OGImage         string      `bson:"og_image,omitempty" json:"og_image,omitempty"`
	TwitterCard     TwitterCard `bson:"twitter_card,omitempty" json:"twitter_card,omitempty"`
	StructuredData  bson.M      `bson:"structured_data,omitempty" json:"structured_data,omitempty"`
}

// BlogPost is a blog post document
// Collection: posts
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Excerpt     string             `bson:"excerpt"`
	Content     string             `bson:"content"`
	Author      string             `bson:"author"`
	Category    Category           `bson:"category"`
	Tags        []string           `bson:"tags"`
	ImageURL    string             `bson:"image_url,omitempty"`
	Slug        string             `bson:"slug"`
	Status      Status             `bson:"status"`
	PublishedAt *time.Time         `bson:"published_at"`
	ScheduledAt *time.Time         `bson:"scheduled_at"`

	SEO `bson:",inline"`

	// derived on every save
	Headings    []string  `bson:"headings"`
	TOC         []Heading `bson:"toc"`
	ReadingTime int       `bson:"reading_time"`
	WordCount   int       `bson:"word_count"`

	Featured bool  `bson:"featured"`
	Pinned   bool  `bson:"pinned"`
	Views    int64 `bson:"views"`
	Likes    int64 `bson:"likes"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// URL is the public path of the post.
func (p BlogPost) URL() string {
	return "/blog/" + p.Slug
}
