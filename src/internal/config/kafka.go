package config

import (
	"fmt"

	"kerjabantu-service/src/internal/gateway/messaging"
	kafkaPkgConfluent "kerjabantu-service/src/pkg/kafka/confluent"
	kafkaPkgSarama "kerjabantu-service/src/pkg/kafka/sarama"
	"kerjabantu-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewKafkaConfig(viper *viper.Viper) kafkaPkgConfluent.KafkaConfig {
	configKafka := kafkaPkgConfluent.Cfg{
		KafkaUrl:      viper.GetString("kafka.bootstrap.servers"),
		KafkaUsername: viper.GetString("kafka.username"),
		KafkaPassword: viper.GetString("kafka.password"),
		KafkaCaCert:   viper.GetString("kafka.cacert"),
		AppName:       viper.GetString("kafka.app.name"),
	}
	return kafkaPkgConfluent.InitKafkaConfig(configKafka)
}

func NewSaramaConfig(viper *viper.Viper) kafkaPkgSarama.Cfg {
	return kafkaPkgSarama.Cfg{
		Brokers:  viper.GetString("kafka.bootstrap.servers"),
		Username: viper.GetString("kafka.username"),
		Password: viper.GetString("kafka.password"),
		CaCert:   viper.GetString("kafka.cacert"),
		ClientID: viper.GetString("kafka.app.name"),
	}
}

// NewKafkaPublisher selects the producer driver from kafka.producer.driver.
// A disabled producer yields a nil Publisher, which the message producers
// treat as a no-op. The returned func flushes and closes the driver.
func NewKafkaPublisher(config *viper.Viper, log log.Log) (messaging.Publisher, func(), error) {
	if !config.GetBool("kafka.producer.enabled") {
		log.Info("kafka-config", "Kafka producer is disabled in configuration", "kafka", "")
		return nil, func() {}, nil
	}

	switch driver := config.GetString("kafka.producer.driver"); driver {
	case "", "confluent":
		producerConfig, err := NewKafkaConfig(config).GetProducerConfig()
		if err != nil {
			return nil, nil, err
		}
		kafkaProducer, err := kafkaPkgConfluent.NewProducer(producerConfig, log)
		if err != nil {
			return nil, nil, err
		}
		return messaging.NewConfluentPublisher(kafkaProducer), kafkaProducer.Close, nil
	case "sarama":
		kafkaProducer, err := kafkaPkgSarama.NewProducer(NewSaramaConfig(config))
		if err != nil {
			return nil, nil, err
		}
		return kafkaProducer, func() {
			if err := kafkaProducer.Close(); err != nil {
				log.Error("kafka-config", err.Error(), "sarama", "")
			}
		}, nil
	case "memory":
		return &messaging.RecordingPublisher{}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("config: unknown kafka.producer.driver %q", driver)
	}
}
