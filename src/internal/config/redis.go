package config

import (
	"context"
	"time"

	redisModule "kerjabantu-service/src/pkg/redis"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// RedisConfig reads the redis.* keys shared by sessions and asynq.
func RedisConfig(viper *viper.Viper) redisModule.Config {
	cfg := redisModule.DefaultConfig()
	cfg.Cluster = viper.GetBool("redis.use_cluster")
	cfg.TLS = viper.GetBool("redis.tls")
	cfg.Host = viper.GetString("redis.host")
	cfg.Port = viper.GetString("redis.port")
	cfg.DB = viper.GetInt("redis.db")
	cfg.Password = viper.GetString("redis.password")
	cfg.Nodes = redisModule.ParseNodes(viper.GetString("redis.cluster.node"))
	cfg.ClusterPassword = viper.GetString("redis.cluster.password")
	return cfg
}

// NewRedis connects when redis.enabled is set and returns nil otherwise.
func NewRedis(viper *viper.Viper) (redis.UniversalClient, error) {
	if !viper.GetBool("redis.enabled") {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return redisModule.Connect(ctx, RedisConfig(viper))
}
