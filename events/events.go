package events

import (
	"time"

	"github.com/google/uuid"

	"naya-blog/models"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	PostCreated EventType = "post.created"
	PostUpdated EventType = "post.updated"
	PostDeleted EventType = "post.deleted"
)

const (
	SourceAPI = "api"
	Version   = "1"
)

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
	RequestID string    `json:"request_id,omitempty"`
}

// PostEvent 포스트 생성/수정/삭제 시 발행되는 이벤트
// 구독자가 다시 조회할 수 있도록 식별자와 공개 여부만 담는다.
type PostEvent struct {
	BaseEvent
	PostID      string        `json:"post_id"`
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Status      models.Status `json:"status"`
	Category    string        `json:"category"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
}

// NewPostEvent builds a lifecycle event for p.
func NewPostEvent(t EventType, p models.BlogPost, requestID string) PostEvent {
	return PostEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.NewString(),
			Type:      t,
			Timestamp: time.Now().UTC(),
			Source:    SourceAPI,
			Version:   Version,
			RequestID: requestID,
		},
		PostID:      p.ID.Hex(),
		Slug:        p.Slug,
		Title:       p.Title,
		Status:      p.Status,
		Category:    string(p.Category),
		PublishedAt: p.PublishedAt,
	}
}
