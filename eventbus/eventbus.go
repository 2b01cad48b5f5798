package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// RetryDelays는 재시도 횟수(1-based)별 대기 시간입니다. 모두 실패하면 DLQ로 보냅니다.
var RetryDelays = []time.Duration{
	1 * time.Second,
	5 * time.Second,
	30 * time.Second,
}

// Topic은 기본 토픽과 DLQ 토픽 이름을 관리합니다.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// DLQ는 DLQ 토픽 이름을 반환합니다 (예: naya-blog.post.events.dlq).
func (t Topic) DLQ() string {
	return t.base + ".dlq"
}

// Event는 Kafka 메시지의 페이로드로 사용되는 구조체입니다.
// Key가 비어 있으면 ID가 파티션 키로 사용됩니다.
type Event struct {
	ID      string          `json:"id"`
	Key     string          `json:"-"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`

	// DLQ로 보낼 때 채워집니다.
	Retry     int    `json:"retry,omitempty"`
	LastError string `json:"last_error,omitempty"`
}

func (e Event) partitionKey() string {
	if e.Key != "" {
		return e.Key
	}
	return e.ID
}

// EventBus는 이벤트 발행의 추상화입니다.
// API는 발행만 하고, 구독은 cmd/worker가 합니다.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// EventHandler는 구독한 이벤트 하나를 처리합니다. 오류를 반환하면 재시도됩니다.
type EventHandler func(ctx context.Context, event Event) error

// Subscriber는 컨슈머 그룹으로 토픽을 구독합니다. ctx가 취소될 때까지 블로킹됩니다.
type Subscriber interface {
	Subscribe(ctx context.Context, groupID string, topic Topic, handler EventHandler) error
}

// ErrClosed는 Close 이후 Publish가 호출되었을 때 반환됩니다.
var ErrClosed = errors.New("eventbus: closed")
