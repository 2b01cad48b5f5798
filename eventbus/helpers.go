package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"naya-blog/config"
)

// NewJSONEvent 생성: payload를 JSON으로 인코딩하여 Event를 구성합니다.
// id가 빈 문자열이면 UUID를 생성합니다.
func NewJSONEvent(id, eventType, key string, payload any) (Event, error) {
	if id == "" {
		id = uuid.NewString()
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("payload marshal 실패: %w", err)
	}
	return Event{
		ID:      id,
		Key:     key,
		Type:    eventType,
		Payload: b,
	}, nil
}

// DecodeJSON은 Event.Payload를 제네릭 타입으로 언마샬합니다.
func DecodeJSON[T any](evt Event) (T, error) {
	var out T
	if err := json.Unmarshal(evt.Payload, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("payload unmarshal 실패: %w", err)
	}
	return out, nil
}

// HandleWithRetry는 handler를 실행하고, 실패하면 delays 간격으로 다시 시도합니다.
// 실행 횟수와 마지막 오류를 반환합니다. 대기 중 ctx가 취소되면 ctx.Err()를 반환합니다.
func HandleWithRetry(ctx context.Context, event Event, handler EventHandler, delays []time.Duration) (int, error) {
	attempts := 0
	for {
		attempts++
		err := handler(ctx, event)
		if err == nil {
			return attempts, nil
		}
		if attempts > len(delays) {
			return attempts, err
		}

		delay := delays[attempts-1]
		config.Logger.Warnf("이벤트 %s 처리 실패 (%d/%d), %s 후 재시도: %v", event.ID, attempts, len(delays)+1, delay, err)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return attempts, ctx.Err()
		case <-timer.C:
		}
	}
}

// NoopEventBus는 브로커가 설정되지 않았을 때 사용하는 EventBus입니다.
type NoopEventBus struct{}

func (NoopEventBus) Publish(context.Context, string, Event) error { return nil }
func (NoopEventBus) Close()                                      {}

// MemoryEventBus는 발행된 이벤트를 메모리에 보관합니다. 테스트용.
type MemoryEventBus struct {
	mu     sync.Mutex
	events map[string][]Event
	Err    error
}

func NewMemoryEventBus() *MemoryEventBus {
	return &MemoryEventBus{events: map[string][]Event{}}
}

func (m *MemoryEventBus) Publish(_ context.Context, topic string, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.events[topic] = append(m.events[topic], event)
	return nil
}

func (m *MemoryEventBus) Close() {}

// Events returns a copy of what was published to topic.
func (m *MemoryEventBus) Events(topic string) []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events[topic]...)
}
