package kafka

import (
	"encoding/base64"
	"fmt"
	"strings"

	k "gopkg.in/confluentinc/confluent-kafka-go.v1/kafka"
)

type Producer interface {
	Publish(message *k.Message) error
	PublishChannel(topic string, message []byte)
	Close()
}

// KafkaConfig is the resolved connection setting of the librdkafka driver.
type KafkaConfig struct {
	Username      string
	Password      string
	Address       string
	SaslMechanism string
	AppName       string
	KafkaCaCert   string
}

type Cfg struct {
	KafkaUrl      string
	KafkaUsername string
	KafkaPassword string
	KafkaCaCert   string
	AppName       string
}

var kafkaConfig KafkaConfig

func InitKafkaConfig(cfg Cfg) KafkaConfig {
	kafkaConfig = KafkaConfig{
		Address:       strings.TrimSpace(cfg.KafkaUrl),
		Username:      cfg.KafkaUsername,
		Password:      cfg.KafkaPassword,
		AppName:       cfg.AppName,
		KafkaCaCert:   cfg.KafkaCaCert,
		SaslMechanism: "PLAIN",
	}
	return kafkaConfig
}

func GetConfig() KafkaConfig {
	return kafkaConfig
}

// DecodeCaCert returns the PEM text of a base64 encoded CA certificate.
func DecodeCaCert(secret string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// GetProducerConfig builds the librdkafka settings for an idempotent
// producer. Credentials switch the connection to SASL over TLS.
func (kc KafkaConfig) GetProducerConfig() (*k.ConfigMap, error) {
	if kc.Address == "" {
		return nil, fmt.Errorf("kafka: bootstrap servers are not configured")
	}
	kafkaCfg := k.ConfigMap{
		"bootstrap.servers":        kc.Address,
		"client.id":                kc.AppName,
		"acks":                     "all",
		"enable.idempotence":       true,
		"linger.ms":                5,
		"message.timeout.ms":       10000,
		"retry.backoff.ms":         500,
		"socket.max.fails":         10,
		"reconnect.backoff.ms":     200,
		"reconnect.backoff.max.ms": 5000,
		"request.timeout.ms":       5000,
	}

	if kc.Username != "" {
		kafkaCfg["sasl.mechanism"] = kc.SaslMechanism
		kafkaCfg["sasl.username"] = kc.Username
		kafkaCfg["sasl.password"] = kc.Password
		kafkaCfg["security.protocol"] = "sasl_ssl"
		if kc.KafkaCaCert != "" {
			ca, err := DecodeCaCert(kc.KafkaCaCert)
			if err != nil {
				return nil, fmt.Errorf("kafka: decode ca cert: %w", err)
			}
			kafkaCfg["ssl.ca.pem"] = ca
		}
	}
	return &kafkaCfg, nil
}
