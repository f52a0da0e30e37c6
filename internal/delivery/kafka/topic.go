package kafka

import (
	"context"
	"net"
	"strconv"

	kafka "github.com/segmentio/kafka-go"
)

// EnsureTopic creates topic through the cluster controller. An existing topic
// is left as is.
func EnsureTopic(ctx context.Context, broker string, cfg kafka.TopicConfig) error {
	conn, err := kafka.DialContext(ctx, "tcp", broker)
	if err != nil {
		return err
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}

	ctrlAddr := net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port))
	cconn, err := kafka.DialContext(ctx, "tcp", ctrlAddr)
	if err != nil {
		return err
	}
	defer cconn.Close()

	return cconn.CreateTopics(cfg)
}

func TopicConfig(topic string, partitions int) kafka.TopicConfig {
	if partitions <= 0 {
		partitions = 1
	}
	return kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     partitions,
		ReplicationFactor: 1,
	}
}
