package messaging

import "sync"

// Message is one record captured by a RecordingPublisher.
type Message struct {
	Topic string
	Key   string
	Value []byte
}

// RecordingPublisher keeps published messages in memory. Tests and the local
// profile (kafka.producer.driver=memory) use it.
type RecordingPublisher struct {
	mu       sync.Mutex
	messages []Message
	Err      error
}

func (r *RecordingPublisher) Publish(topic string, key, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.messages = append(r.messages, Message{Topic: topic, Key: string(key), Value: append([]byte(nil), value...)})
	return nil
}

func (r *RecordingPublisher) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}

// Topic returns the messages sent to one topic.
func (r *RecordingPublisher) Topic(topic string) []Message {
	var out []Message
	for _, m := range r.Messages() {
		if m.Topic == topic {
			out = append(out, m)
		}
	}
	return out
}
