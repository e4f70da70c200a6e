package kafka

import (
	"fmt"
	"kerjabantu-service/src/pkg/log"

	k "gopkg.in/confluentinc/confluent-kafka-go.v1/kafka"
)

const flushTimeoutMs = 5000

type producer struct {
	kafka *k.Producer
	log   log.Log
}

func NewProducer(config *k.ConfigMap, logger log.Log) (Producer, error) {
	kp, err := k.NewProducer(config)
	if err != nil {
		return nil, fmt.Errorf("kafka: new producer: %w", err)
	}
	p := &producer{kafka: kp, log: logger}
	go p.watchEvents()
	return p, nil
}

// watchEvents logs delivery reports of messages sent without a delivery
// channel.
func (p *producer) watchEvents() {
	for e := range p.kafka.Events() {
		switch ev := e.(type) {
		case *k.Message:
			if ev.TopicPartition.Error != nil {
				p.log.Error("kafka-producer", ev.TopicPartition.Error.Error(), "delivery", *ev.TopicPartition.Topic)
			}
		case k.Error:
			p.log.Error("kafka-producer", ev.Error(), "events", ev.Code().String())
		}
	}
}

// Publish sends a message and waits for its delivery report.
func (p *producer) Publish(message *k.Message) error {
	delivery := make(chan k.Event, 1)
	if err := p.kafka.Produce(message, delivery); err != nil {
		return err
	}
	e := <-delivery
	if m, ok := e.(*k.Message); ok && m.TopicPartition.Error != nil {
		return m.TopicPartition.Error
	}
	return nil
}

// PublishChannel sends without waiting. Failures show up in the log.
func (p *producer) PublishChannel(topic string, message []byte) {
	p.kafka.ProduceChannel() <- &k.Message{
		TopicPartition: k.TopicPartition{Topic: &topic, Partition: k.PartitionAny},
		Value:          message,
	}
}

func (p *producer) Close() {
	p.kafka.Flush(flushTimeoutMs)
	p.kafka.Close()
}
