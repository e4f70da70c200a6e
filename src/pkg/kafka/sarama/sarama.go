// Package sarama is the pure Go Kafka producer, used when the service is built
// or deployed without librdkafka.
package sarama

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
)

type Cfg struct {
	Brokers  string
	Username string
	Password string
	CaCert   string
	ClientID string
}

type Producer struct {
	producer sarama.SyncProducer
}

// NewConfig builds the sarama settings. A username turns on SASL/PLAIN over
// TLS, trusting CaCert when one is given.
func NewConfig(cfg Cfg) (*sarama.Config, error) {
	sc := sarama.NewConfig()
	if cfg.ClientID != "" {
		sc.ClientID = cfg.ClientID
	}
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = 3
	sc.Producer.Retry.Backoff = 500 * time.Millisecond
	sc.Producer.Return.Successes = true
	sc.Producer.Partitioner = sarama.NewHashPartitioner
	sc.Net.DialTimeout = 5 * time.Second

	if cfg.Username != "" {
		sc.Net.SASL.Enable = true
		sc.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		sc.Net.SASL.User = cfg.Username
		sc.Net.SASL.Password = cfg.Password
		sc.Net.TLS.Enable = true

		tlsConf := &tls.Config{MinVersion: tls.VersionTLS12}
		if cfg.CaCert != "" {
			pem, err := base64.StdEncoding.DecodeString(cfg.CaCert)
			if err != nil {
				return nil, fmt.Errorf("sarama: decode ca cert: %w", err)
			}
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(pem) {
				return nil, fmt.Errorf("sarama: no certificate in ca cert")
			}
			tlsConf.RootCAs = pool
		}
		sc.Net.TLS.Config = tlsConf
	}
	return sc, sc.Validate()
}

func NewProducer(cfg Cfg) (*Producer, error) {
	sc, err := NewConfig(cfg)
	if err != nil {
		return nil, err
	}
	sp, err := sarama.NewSyncProducer(strings.Split(cfg.Brokers, ","), sc)
	if err != nil {
		return nil, fmt.Errorf("sarama: new producer: %w", err)
	}
	return &Producer{producer: sp}, nil
}

func (p *Producer) Publish(topic string, key, value []byte) error {
	_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	return err
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
