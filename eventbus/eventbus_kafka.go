package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"naya-blog/config"
)

// KafkaEventBus는 confluent-kafka-go 라이브러리를 사용한 EventBus 구현체입니다.
type KafkaEventBus struct {
	Producer *kafka.Producer
	Brokers  string
	closed   atomic.Bool

	maxPollIntervalMs int
}

// NewKafkaEventBus는 Kafka Producer를 초기화합니다.
func NewKafkaEventBus(cfg config.KafkaConfig) (*KafkaEventBus, error) {
	cm := &kafka.ConfigMap{
		"bootstrap.servers": cfg.Brokers,
		"acks":              "all",
		"retries":           5,
	}
	if cfg.MessageMaxBytes > 0 {
		_ = cm.SetKey("message.max.bytes", cfg.MessageMaxBytes)
	}
	p, err := kafka.NewProducer(cm)
	if err != nil {
		return nil, fmt.Errorf("kafka Producer 생성 실패: %w", err)
	}

	// 전달 보고서는 Publish의 deliveryChan으로 받고, 여기서는 클라이언트 오류만 기록합니다.
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					config.Logger.Errorf("메시지 전달 실패 %v: %v", ev.TopicPartition, ev.TopicPartition.Error)
				}
			case kafka.Error:
				config.Logger.Errorf("Kafka 오류: %v", ev)
			}
		}
	}()

	return &KafkaEventBus{
		Producer:          p,
		Brokers:           cfg.Brokers,
		maxPollIntervalMs: cfg.MaxPollIntervalMs,
	}, nil
}

// Close는 Producer를 안전하게 종료합니다.
func (k *KafkaEventBus) Close() {
	if k.Producer == nil || !k.closed.CompareAndSwap(false, true) {
		return
	}
	// 5초 동안 남은 메시지를 모두 플러시합니다.
	if remaining := k.Producer.Flush(5000); remaining > 0 {
		config.Logger.Warnf("플러시 후에도 %d개의 메시지가 남아 있습니다.", remaining)
	}
	k.Producer.Close()
	config.Logger.Info("Kafka Producer 종료.")
}

// Publish는 지정된 토픽에 이벤트를 발행하고 전달 보고서를 기다립니다.
func (k *KafkaEventBus) Publish(ctx context.Context, topic string, event Event) error {
	if k.closed.Load() {
		return ErrClosed
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("이벤트 마샬링 실패: %w", err)
	}

	// 버퍼 1: ctx 취소로 먼저 반환해도 전달 보고서 전송이 막히지 않습니다.
	deliveryChan := make(chan kafka.Event, 1)

	err = k.Producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          data,
		Key:            []byte(event.partitionKey()),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("메시지 발행 실패: %w", err)
	}

	select {
	case ev := <-deliveryChan:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("예상치 못한 전달 이벤트: %v", ev)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("메시지 전달 실패: %w", m.TopicPartition.Error)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

// Subscribe는 기본 토픽을 구독하고 handler를 실행합니다.
// 실패한 이벤트는 RetryDelays만큼 재시도한 뒤 DLQ로 보내고, 그 후에 오프셋을 커밋합니다.
func (k *KafkaEventBus) Subscribe(ctx context.Context, groupID string, topic Topic, handler EventHandler) error {
	consumerCfg := &kafka.ConfigMap{
		"bootstrap.servers":             k.Brokers,
		"group.id":                      groupID,
		"auto.offset.reset":             "earliest",
		"enable.auto.commit":            false, // 처리 후 수동 커밋
		"partition.assignment.strategy": "range",
	}
	if k.maxPollIntervalMs > 0 {
		_ = consumerCfg.SetKey("max.poll.interval.ms", k.maxPollIntervalMs)
	}

	c, err := kafka.NewConsumer(consumerCfg)
	if err != nil {
		return fmt.Errorf("kafka Consumer 생성 실패: %w", err)
	}
	defer c.Close()

	if err := c.SubscribeTopics([]string{topic.Base()}, nil); err != nil {
		return fmt.Errorf("토픽 구독 실패 %s: %w", topic.Base(), err)
	}
	config.Logger.Infof("컨슈머 (%s) 시작됨. 구독 토픽: %s", groupID, topic.Base())

	for {
		select {
		case <-ctx.Done():
			config.Logger.Info("컨슈머 종료 중.")
			return ctx.Err()
		default:
		}

		msg, err := c.ReadMessage(100 * time.Millisecond)
		if err != nil {
			var kerr kafka.Error
			if errors.As(err, &kerr) {
				if kerr.Code() == kafka.ErrTimedOut {
					continue
				}
				if kerr.IsFatal() {
					return fmt.Errorf("컨슈머 치명적 오류: %w", err)
				}
			}
			config.Logger.Errorf("ReadMessage 오류: %v", err)
			continue
		}

		var evt Event
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			config.Logger.Errorf("토픽 %s의 이벤트 페이로드 오류: %v. 건너뛰고 커밋합니다.", *msg.TopicPartition.Topic, err)
			_, _ = c.CommitMessage(msg)
			continue
		}
		if len(msg.Key) > 0 {
			evt.Key = string(msg.Key)
		}

		attempts, err := HandleWithRetry(ctx, evt, handler, RetryDelays)
		if err != nil {
			if ctx.Err() != nil {
				// 커밋하지 않으면 재시작 후 다시 처리됩니다.
				return ctx.Err()
			}
			evt.Retry = attempts - 1
			evt.LastError = err.Error()
			config.Logger.Errorf("이벤트 %s 최종 실패. DLQ %s로 전송: %v", evt.ID, topic.DLQ(), err)
			if pubErr := k.Publish(ctx, topic.DLQ(), evt); pubErr != nil {
				config.Logger.Errorf("DLQ %s 발행 실패: %v. 오프셋 커밋 안함.", topic.DLQ(), pubErr)
				continue
			}
		}

		if _, err := c.CommitMessage(msg); err != nil {
			config.Logger.Errorf("오프셋 커밋 오류: %v", err)
		}
	}
}
