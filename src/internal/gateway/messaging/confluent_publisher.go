package messaging

import (
	kafka "kerjabantu-service/src/pkg/kafka/confluent"

	k "gopkg.in/confluentinc/confluent-kafka-go.v1/kafka"
)

// ConfluentPublisher adapts the librdkafka producer to Publisher.
type ConfluentPublisher struct {
	Producer kafka.Producer
}

func NewConfluentPublisher(producer kafka.Producer) *ConfluentPublisher {
	return &ConfluentPublisher{Producer: producer}
}

func (c *ConfluentPublisher) Publish(topic string, key, value []byte) error {
	message := &k.Message{
		TopicPartition: k.TopicPartition{Topic: &topic, Partition: k.PartitionAny},
		Key:            key,
		Value:          value,
	}
	return c.Producer.Publish(message)
}
