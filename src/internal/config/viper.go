package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "KERJABANTU_SERVICE")
	v.SetDefault("log.level", "DEBUG")
	v.SetDefault("web.port", 8080)
	v.SetDefault("web.prefork", false)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.use_cluster", false)
	v.SetDefault("redis.tls", false)

	v.SetDefault("session.ttl", "720h")
	v.SetDefault("session.idle_timeout", "30m")
	v.SetDefault("session.evict_schedule", "@every 10m")

	v.SetDefault("kafka.producer.enabled", false)
	v.SetDefault("kafka.producer.driver", "confluent")
	v.SetDefault("kafka.app.name", "kerjabantu-service")

	v.SetDefault("asynq.enabled", false)
	v.SetDefault("asynq.concurrency", 5)

	v.SetDefault("catalog.source", "static")
	v.SetDefault("database.mysql.port", 3306)
	v.SetDefault("database.mysql.max_open_conns", 10)
	v.SetDefault("database.mysql.max_idle_conns", 5)
	v.SetDefault("database.mysql.conn_max_lifetime", "5m")

	v.SetDefault("thirdparty.google.region", "id")
	v.SetDefault("thirdparty.google.rate_limit", 10)

	v.SetDefault("ratelimit.wallet.rps", 1)
	v.SetDefault("ratelimit.wallet.burst", 5)
}

// NewViper reads .env, then config.yaml when present, with environment
// variables taking precedence (APP_NAME overrides app.name).
func NewViper() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}
