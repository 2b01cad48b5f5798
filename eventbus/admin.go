package eventbus

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"naya-blog/config"
)

// TopicSpecs는 포스트 토픽과 DLQ 토픽의 생성 사양을 반환합니다.
// DLQ는 1 파티션이며, DLQRetention이 있으면 retention.ms로 설정됩니다.
func TopicSpecs(cfg config.KafkaConfig) []kafka.TopicSpecification {
	topic := NewTopic(cfg.Topic)
	partitions := max(cfg.Partitions, 1)
	replicas := max(cfg.ReplicationFactor, 1)

	dlq := kafka.TopicSpecification{
		Topic:             topic.DLQ(),
		NumPartitions:     1,
		ReplicationFactor: replicas,
	}
	if cfg.DLQRetention > 0 {
		dlq.Config = map[string]string{
			"retention.ms": strconv.FormatInt(cfg.DLQRetention.Milliseconds(), 10),
		}
	}

	return []kafka.TopicSpecification{
		{
			Topic:             topic.Base(),
			NumPartitions:     partitions,
			ReplicationFactor: replicas,
		},
		dlq,
	}
}

// EnsureTopics는 TopicSpecs의 토픽을 생성합니다. 이미 존재하는 토픽은 성공으로 간주합니다.
func EnsureTopics(ctx context.Context, cfg config.KafkaConfig) error {
	admin, err := kafka.NewAdminClient(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Brokers,
	})
	if err != nil {
		return fmt.Errorf("AdminClient 생성 실패: %w", err)
	}
	defer admin.Close()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	results, err := admin.CreateTopics(ctx, TopicSpecs(cfg))
	if err != nil {
		return fmt.Errorf("토픽 생성 요청 실패: %w", err)
	}

	for _, r := range results {
		switch r.Error.Code() {
		case kafka.ErrNoError:
			config.Logger.Infof("토픽 %s 생성됨", r.Topic)
		case kafka.ErrTopicAlreadyExists:
		default:
			return fmt.Errorf("토픽 %s 생성 실패: %v", r.Topic, r.Error)
		}
	}
	return nil
}
