package messaging

import (
	"encoding/json"
	"kerjabantu-service/src/internal/model"
	"kerjabantu-service/src/pkg/log"
)

// Publisher is a Kafka client able to write one message. Both the confluent
// and the sarama drivers satisfy it.
type Publisher interface {
	Publish(topic string, key, value []byte) error
}

// Producer publishes one event type to one topic. A nil Publisher turns Send
// into a no-op so the service runs without a broker.
type Producer[T model.Event] struct {
	Publisher Publisher
	Topic     string
	Log       log.Log
}

func (p *Producer[T]) GetTopic() *string {
	return &p.Topic
}

func (p *Producer[T]) Send(event T) error {
	if p.Publisher == nil {
		p.Log.Info("gateway/messaging/producer", "publisher disabled, event dropped", "Send", p.Topic)
		return nil
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("gateway/messaging/producer", "failed to marshal event", "Send", err.Error())
		return err
	}

	err = p.Publisher.Publish(p.Topic, []byte(event.GetId()), value)
	if err != nil {
		p.Log.Error("send-event", "error send message", "send", err.Error())
		return err
	}

	return nil
}
