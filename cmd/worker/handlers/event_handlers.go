package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"naya-blog/config"
	"naya-blog/dto"
	"naya-blog/eventbus"
	"naya-blog/events"
	"naya-blog/metrics"
)

// Invalidator drops the cached sitemap post entries.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// SitemapBuilder rebuilds the sitemap; with a cache configured this also refills it.
type SitemapBuilder interface {
	Entries(ctx context.Context) (dto.SitemapDTO, error)
}

// EventHandlers 포스트 이벤트 핸들러 모음
type EventHandlers struct {
	cache   Invalidator
	sitemap SitemapBuilder
}

func NewEventHandlers(cache Invalidator, sitemap SitemapBuilder) *EventHandlers {
	return &EventHandlers{cache: cache, sitemap: sitemap}
}

// Route 는 이벤트 타입을 보고 핸들러를 고른다. 다른 타입은 무시(커밋)한다.
func (h *EventHandlers) Route(ctx context.Context, ev eventbus.Event) error {
	eventType := events.EventType(ev.Type)
	if eventType == "" {
		// 이벤트 타입만 먼저 파싱 (BaseEvent.Type는 payload top-level에 있음)
		var peek struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(ev.Payload, &peek); err != nil {
			return fmt.Errorf("peek event type: %w", err)
		}
		eventType = events.EventType(peek.Type)
	}

	switch eventType {
	case events.PostCreated, events.PostUpdated, events.PostDeleted:
		v, err := eventbus.DecodeJSON[events.PostEvent](ev)
		if err == nil {
			err = h.HandlePostChanged(ctx, &v)
		}
		metrics.RecordWorkerEvent(string(eventType), err)
		return err
	default:
		config.Logger.Debugf("ignoring event %s of type %q", ev.ID, eventType)
		return nil
	}
}

// HandlePostChanged 캐시된 sitemap을 버리고 바로 다시 채운다.
func (h *EventHandlers) HandlePostChanged(ctx context.Context, event *events.PostEvent) error {
	if err := h.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate sitemap cache: %w", err)
	}
	out, err := h.sitemap.Entries(ctx)
	if err != nil {
		return fmt.Errorf("rebuild sitemap: %w", err)
	}

	config.InfoWithFields("sitemap cache refreshed", config.Fields{
		"event_type": string(event.Type),
		"post_id":    event.PostID,
		"slug":       event.Slug,
		"request_id": event.RequestID,
		"entries":    len(out.Entries),
	})
	return nil
}
