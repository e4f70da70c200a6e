package model

// Event is anything the messaging producers can publish. GetId becomes the
// Kafka message key.
type Event interface {
	GetId() string
}
