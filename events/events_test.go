package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"naya-blog/models"
)

func TestNewPostEvent(t *testing.T) {
	id := primitive.NewObjectID()
	p := models.BlogPost{
		ID:       id,
		Slug:     "hello",
		Title:    "Hello",
		Status:   models.StatusPublished,
		Category: models.CategoryTutorials,
	}

	evt := NewPostEvent(PostCreated, p, "req-1")

	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, PostCreated, evt.Type)
	assert.Equal(t, SourceAPI, evt.Source)
	assert.Equal(t, "req-1", evt.RequestID)
	assert.Equal(t, id.Hex(), evt.PostID)
	assert.Equal(t, "hello", evt.Slug)
	assert.Equal(t, "tutorials", evt.Category)
	assert.False(t, evt.Timestamp.IsZero())

	other := NewPostEvent(PostCreated, p, "")
	assert.NotEqual(t, evt.ID, other.ID)
}
