package kafka

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProducerConfigPlaintext(t *testing.T) {
	cfg := InitKafkaConfig(Cfg{KafkaUrl: " broker:9092 ", AppName: "kerjabantu-service"})

	configMap, err := cfg.GetProducerConfig()
	require.NoError(t, err)

	servers, err := configMap.Get("bootstrap.servers", "")
	require.NoError(t, err)
	assert.Equal(t, "broker:9092", servers)

	_, ok := (*configMap)["security.protocol"]
	assert.False(t, ok)
	assert.Equal(t, cfg, GetConfig())
}

func TestGetProducerConfigSASL(t *testing.T) {
	pem := "-----BEGIN CERTIFICATE-----\nMIIB\n-----END CERTIFICATE-----\n"
	cfg := InitKafkaConfig(Cfg{
		KafkaUrl:      "broker:9093",
		KafkaUsername: "svc",
		KafkaPassword: "secret",
		KafkaCaCert:   base64.StdEncoding.EncodeToString([]byte(pem)),
	})

	configMap, err := cfg.GetProducerConfig()
	require.NoError(t, err)
	assert.Equal(t, "sasl_ssl", (*configMap)["security.protocol"])
	assert.Equal(t, "PLAIN", (*configMap)["sasl.mechanism"])
	assert.Equal(t, pem, (*configMap)["ssl.ca.pem"])
}

func TestGetProducerConfigErrors(t *testing.T) {
	_, err := InitKafkaConfig(Cfg{}).GetProducerConfig()
	assert.Error(t, err)

	_, err = InitKafkaConfig(Cfg{KafkaUrl: "broker:9093", KafkaUsername: "svc", KafkaCaCert: "%%%"}).GetProducerConfig()
	assert.Error(t, err)
}
